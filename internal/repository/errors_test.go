package repository_test

import (
	"fmt"
	"testing"

	"github.com/NBISweden/redmine-spent-time/internal/repository"
	"github.com/NBISweden/redmine-spent-time/internal/repository/repoerr"
	"github.com/stretchr/testify/require"
)

// The re-exported sentinels must stay the repoerr values themselves, so a
// store returning repository.ErrNotFound matches a domain-side check
// against repoerr.ErrNotFound and vice versa.
func TestSentinelsAreShared(t *testing.T) {
	require.ErrorIs(t, repository.ErrNotFound, repoerr.ErrNotFound)
	require.ErrorIs(t, repository.ErrForeignKeyViolation, repoerr.ErrForeignKeyViolation)

	wrapped := fmt.Errorf("loading project: %w", repository.ErrNotFound)
	require.ErrorIs(t, wrapped, repoerr.ErrNotFound)
}
