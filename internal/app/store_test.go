package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/NBISweden/redmine-spent-time/internal/app"
	"github.com/NBISweden/redmine-spent-time/internal/domain/auth"
	"github.com/NBISweden/redmine-spent-time/internal/domain/issue"
	"github.com/NBISweden/redmine-spent-time/internal/domain/project"
	"github.com/NBISweden/redmine-spent-time/internal/domain/report"
	"github.com/NBISweden/redmine-spent-time/internal/domain/timeentry"
	"github.com/NBISweden/redmine-spent-time/internal/domain/user"
	"github.com/NBISweden/redmine-spent-time/internal/domain/visibility"
	"github.com/NBISweden/redmine-spent-time/internal/sqlite"
	"github.com/stretchr/testify/require"
)

// storeFixture wires the App over a real in-memory store, the way the
// command layer does, with a seeded user, project, and issue.
type storeFixture struct {
	app     *app.App
	entries *sqlite.TimeEntryRepository
	actor   *user.User
	project *project.Project
	issue   *issue.Issue
}

func newStoreFixture(t *testing.T, now time.Time) *storeFixture {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.RunMigrations())

	users := sqlite.NewUserRepository(db)
	projects := sqlite.NewProjectRepository(db)
	issues := sqlite.NewIssueRepository(db)
	entries := sqlite.NewTimeEntryRepository(db)
	perms := sqlite.NewPermissionRepository(db)

	actor := &user.User{Login: "dev", Firstname: "Dana", Lastname: "Dev", Status: user.StatusActive}
	require.NoError(t, users.Create(ctx, actor))

	proj := &project.Project{Identifier: "core", Name: "Core", Status: project.StatusActive, TimeLoggingEnabled: true}
	require.NoError(t, projects.Create(ctx, proj))
	require.NoError(t, projects.AddMember(ctx, proj.ID, actor.ID))
	require.NoError(t, perms.Grant(ctx, actor.ID, auth.LogTime, nil))

	iss := &issue.Issue{ProjectID: proj.ID, Subject: "Fix timeout"}
	require.NoError(t, issues.Create(ctx, iss))

	authorizer := auth.NewService(perms, nil)
	application := app.New(app.Config{
		Visibility: visibility.NewResolver(users, projects, authorizer, nil),
		Reports:    report.NewService(entries, nil),
		Entries:    timeentry.NewService(entries, projects, issues, authorizer, nil),
		Issues:     issue.NewService(issues, projects, nil),
		Now:        func() time.Time { return now },
	})

	return &storeFixture{app: application, entries: entries, actor: actor, project: proj, issue: iss}
}

func TestCreateEntryPersistsAndWidensRange(t *testing.T) {
	f := newStoreFixture(t, date(2024, 1, 7))
	ctx := context.Background()

	rng := report.Range{From: date(2024, 1, 1), To: date(2024, 1, 7)}
	outcome, err := f.app.CreateEntry(ctx, f.actor, timeentry.CreateRequest{
		ProjectID: f.project.ID,
		IssueID:   f.issue.ID,
		SpentOn:   "2024-01-10",
		Hours:     "2.5",
	}, rng)
	require.NoError(t, err)

	stored, err := f.entries.Get(ctx, outcome.Entry.ID)
	require.NoError(t, err)
	require.Equal(t, f.actor.ID, stored.UserID)
	require.Equal(t, date(2024, 1, 10), stored.SpentOn)

	require.Equal(t, date(2024, 1, 1), outcome.Range.From)
	require.Equal(t, date(2024, 1, 10), outcome.Range.To)
	require.InDelta(t, 2.5, outcome.Report.TotalHours, 1e-9)
	require.Len(t, outcome.Report.Days, 1)
	require.Equal(t, date(2024, 1, 10), outcome.Report.Days[0].Date)
}

func TestCreateEntryNegativeProjectResolvesThroughIssue(t *testing.T) {
	f := newStoreFixture(t, date(2024, 1, 7))
	ctx := context.Background()

	rng := report.Range{From: date(2024, 1, 1), To: date(2024, 1, 7)}
	outcome, err := f.app.CreateEntry(ctx, f.actor, timeentry.CreateRequest{
		ProjectID: -1,
		IssueID:   f.issue.ID,
		SpentOn:   "2024-01-05",
		Hours:     "1",
	}, rng)
	require.NoError(t, err)
	require.Equal(t, f.project.ID, outcome.Entry.ProjectID)
}

func TestCreateEntryMissingIssueNothingPersisted(t *testing.T) {
	f := newStoreFixture(t, date(2024, 1, 7))
	ctx := context.Background()

	rng := report.Range{From: date(2024, 1, 1), To: date(2024, 1, 7)}
	_, err := f.app.CreateEntry(ctx, f.actor, timeentry.CreateRequest{
		ProjectID: f.project.ID,
		IssueID:   0,
		SpentOn:   "2024-01-05",
		Hours:     "1",
	}, rng)
	require.ErrorIs(t, err, timeentry.ErrMissingIssue)

	stored, err := f.entries.ListForUser(ctx, f.actor.ID, date(2024, 1, 1), date(2024, 1, 31), nil)
	require.NoError(t, err)
	require.Empty(t, stored)
}
