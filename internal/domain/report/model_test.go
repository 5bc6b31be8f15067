package report_test

import (
	"testing"
	"time"

	"github.com/NBISweden/redmine-spent-time/internal/domain/report"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDefaultRange(t *testing.T) {
	now := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)
	rng := report.DefaultRange(now, 7)
	require.Equal(t, date(2024, 1, 4), rng.From)
	require.Equal(t, date(2024, 1, 10), rng.To)
}

func TestRange_ContainsInclusiveBounds(t *testing.T) {
	rng := report.Range{From: date(2024, 1, 1), To: date(2024, 1, 7)}

	require.True(t, rng.Contains(date(2024, 1, 1)))
	require.True(t, rng.Contains(date(2024, 1, 7)))
	require.True(t, rng.Contains(date(2024, 1, 4)))
	require.False(t, rng.Contains(date(2023, 12, 31)))
	require.False(t, rng.Contains(date(2024, 1, 8)))
}

func TestRange_ExtendOnlyWidens(t *testing.T) {
	rng := report.Range{From: date(2024, 1, 1), To: date(2024, 1, 7)}

	later := rng.Extend(date(2024, 1, 10))
	require.Equal(t, date(2024, 1, 1), later.From)
	require.Equal(t, date(2024, 1, 10), later.To)

	earlier := rng.Extend(date(2023, 12, 30))
	require.Equal(t, date(2023, 12, 30), earlier.From)
	require.Equal(t, date(2024, 1, 7), earlier.To)

	inside := rng.Extend(date(2024, 1, 4))
	require.Equal(t, rng, inside)
}
