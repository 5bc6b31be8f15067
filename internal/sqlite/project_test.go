package sqlite

import (
	"context"
	"testing"

	"github.com/NBISweden/redmine-spent-time/internal/domain/project"
	"github.com/NBISweden/redmine-spent-time/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := seedProject(t, db, "core", "Core Platform")
	require.NotZero(t, p.ID)

	retrieved, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "core", retrieved.Identifier)
	require.True(t, retrieved.AllowsTimeLogging())
}

func TestProjectRepository_GetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)

	_, err := repo.Get(context.Background(), 999)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectRepository_ListActiveExcludesArchived(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	seedProject(t, db, "core", "Core")
	archived := &project.Project{Identifier: "old", Name: "Old", Status: project.StatusArchived, TimeLoggingEnabled: true}
	require.NoError(t, repo.Create(ctx, archived))

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, "core", active[0].Identifier)
}

func TestProjectRepository_ListForUser(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, "dev", "Dana", "Dev")
	core := seedProject(t, db, "core", "Core")
	seedProject(t, db, "docs", "Docs")
	require.NoError(t, repo.AddMember(ctx, core.ID, u.ID))

	got, err := repo.ListForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, core.ID, got[0].ID)
}

func TestProjectRepository_AddMemberUnknownProject(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, "dev", "Dana", "Dev")
	err := repo.AddMember(ctx, 999, u.ID)
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}
