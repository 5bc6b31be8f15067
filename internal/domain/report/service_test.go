package report_test

import (
	"context"
	"testing"

	"github.com/NBISweden/redmine-spent-time/internal/domain/project"
	"github.com/NBISweden/redmine-spent-time/internal/domain/report"
	"github.com/NBISweden/redmine-spent-time/internal/domain/timeentry"
	"github.com/NBISweden/redmine-spent-time/internal/domain/user"
	"github.com/NBISweden/redmine-spent-time/internal/repository/mocks"
	"github.com/stretchr/testify/require"
)

func TestAggregate_GroupsPerDayNewestFirst(t *testing.T) {
	ctx := context.Background()
	reportUser := &user.User{ID: 3, Login: "dev"}
	rng := report.Range{From: date(2024, 1, 1), To: date(2024, 1, 7)}

	stored := []timeentry.TimeEntry{
		{ID: 1, UserID: 3, ProjectID: 1, SpentOn: date(2024, 1, 2), Hours: 2},
		{ID: 2, UserID: 3, ProjectID: 1, SpentOn: date(2024, 1, 2), Hours: 1.5},
		{ID: 3, UserID: 3, ProjectID: 2, SpentOn: date(2024, 1, 5), Hours: 4},
	}

	entries := &mocks.TimeEntryRepository{}
	entries.On("ListForUser", ctx, int64(3), rng.From, rng.To, []int64(nil)).Return(stored, nil)

	svc := report.NewService(entries, nil)
	result, err := svc.Aggregate(ctx, reportUser, rng, nil)
	require.NoError(t, err)

	require.Equal(t, int64(3), result.UserID)
	require.Len(t, result.Entries, 3)
	require.Len(t, result.Days, 2)
	require.Equal(t, date(2024, 1, 5), result.Days[0].Date)
	require.InDelta(t, 4, result.Days[0].Hours, 1e-9)
	require.Equal(t, date(2024, 1, 2), result.Days[1].Date)
	require.InDelta(t, 3.5, result.Days[1].Hours, 1e-9)
	require.InDelta(t, 7.5, result.TotalHours, 1e-9)
}

func TestAggregate_ProjectScopeRestrictsQuery(t *testing.T) {
	ctx := context.Background()
	reportUser := &user.User{ID: 3}
	rng := report.Range{From: date(2024, 1, 1), To: date(2024, 1, 7)}
	scope := []project.Project{{ID: 1}, {ID: 4}}

	entries := &mocks.TimeEntryRepository{}
	entries.On("ListForUser", ctx, int64(3), rng.From, rng.To, []int64{1, 4}).Return([]timeentry.TimeEntry{}, nil)

	svc := report.NewService(entries, nil)
	_, err := svc.Aggregate(ctx, reportUser, rng, scope)
	require.NoError(t, err)
	entries.AssertExpectations(t)
}

func TestAggregate_EmptyIsValid(t *testing.T) {
	ctx := context.Background()
	reportUser := &user.User{ID: 3}
	rng := report.Range{From: date(2024, 1, 7), To: date(2024, 1, 1)} // inverted

	entries := &mocks.TimeEntryRepository{}
	entries.On("ListForUser", ctx, int64(3), rng.From, rng.To, []int64(nil)).Return([]timeentry.TimeEntry(nil), nil)

	svc := report.NewService(entries, nil)
	result, err := svc.Aggregate(ctx, reportUser, rng, nil)
	require.NoError(t, err)
	require.Empty(t, result.Entries)
	require.Empty(t, result.Days)
	require.Zero(t, result.TotalHours)
}
