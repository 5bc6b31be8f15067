// Package app wires the spent-time services into the operations the request
// layer invokes: initial view, report, entry creation and deletion, and the
// dependent issue-selector refresh.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/NBISweden/redmine-spent-time/internal/domain/issue"
	"github.com/NBISweden/redmine-spent-time/internal/domain/report"
	"github.com/NBISweden/redmine-spent-time/internal/domain/timeentry"
	"github.com/NBISweden/redmine-spent-time/internal/domain/user"
	"github.com/NBISweden/redmine-spent-time/internal/domain/visibility"
)

// DefaultReportDays is the trailing window length used when a range is not
// supplied, unless configuration overrides it.
const DefaultReportDays = 7

// Config collects the collaborators of the App.
type Config struct {
	Visibility *visibility.Resolver
	Reports    *report.Service
	Entries    *timeentry.Service
	Issues     *issue.Service
	// ReportDays is the default report window length; zero means
	// DefaultReportDays.
	ReportDays int
	// Now is the clock; nil means time.Now.
	Now    func() time.Time
	Logger *slog.Logger
}

// App exposes the spent-time operations to the surrounding request layer.
type App struct {
	visibility *visibility.Resolver
	reports    *report.Service
	entries    *timeentry.Service
	issues     *issue.Service
	reportDays int
	now        func() time.Time
	logger     *slog.Logger
}

// New creates a new App.
func New(cfg Config) *App {
	if cfg.ReportDays <= 0 {
		cfg.ReportDays = DefaultReportDays
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &App{
		visibility: cfg.Visibility,
		reports:    cfg.Reports,
		entries:    cfg.Entries,
		issues:     cfg.Issues,
		reportDays: cfg.ReportDays,
		now:        cfg.Now,
		logger:     cfg.Logger,
	}
}

// InitialView is what the form shows when it first opens.
type InitialView struct {
	Scope          visibility.Scope
	Report         report.Result
	Range          report.Range
	AssignedIssues []issue.Issue
	Entry          timeentry.TimeEntry
	SameUser       bool
}

// ReportView is a rendered report for a chosen user and range.
type ReportView struct {
	Report   report.Result
	Range    report.Range
	SameUser bool
}

// EntryOutcome is the refreshed state after a successful create or delete.
type EntryOutcome struct {
	Entry  *timeentry.TimeEntry
	Report report.Result
	Range  report.Range
}

// IssueView is the recomputed issue selector for a project, preserving the
// caller's range.
type IssueView struct {
	Issues []issue.Issue
	Range  report.Range
	Entry  timeentry.TimeEntry
}

// Initial resolves the actor's visibility scope and builds the default
// report over the trailing window, plus the actor's assigned issues.
func (a *App) Initial(ctx context.Context, actor *user.User) (*InitialView, error) {
	log := a.opLogger("initial_view", actor)

	scope, err := a.visibility.Resolve(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("resolving visibility: %w", err)
	}

	rng := report.DefaultRange(a.now(), a.reportDays)
	result, err := a.reports.Aggregate(ctx, actor, rng, nil)
	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}

	assigned, err := a.issues.AssignedTo(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("listing assigned issues: %w", err)
	}

	log.Info("initial view ready", "scope_users", len(scope.Users), "entries", len(result.Entries))
	return &InitialView{
		Scope:          scope,
		Report:         result,
		Range:          rng,
		AssignedIssues: assigned,
		SameUser:       true,
	}, nil
}

// Report builds a report for the target user over the given dates. The
// target must be inside the actor's visibility scope; missing bounds are
// filled from the default window.
func (a *App) Report(ctx context.Context, actor *user.User, targetUserID int64, from, to *time.Time) (*ReportView, error) {
	log := a.opLogger("report", actor)

	scope, err := a.visibility.Resolve(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("resolving visibility: %w", err)
	}

	target, ok := scope.Lookup(targetUserID)
	if !ok {
		log.Warn("report user outside visibility scope", "target_user_id", targetUserID)
		return nil, ErrUserNotVisible
	}

	rng := report.DefaultRange(a.now(), a.reportDays)
	if from != nil {
		rng.From = *from
	}
	if to != nil {
		rng.To = *to
	}

	result, err := a.reports.Aggregate(ctx, &target, rng, scope.Projects)
	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}

	return &ReportView{
		Report:   result,
		Range:    rng,
		SameUser: target.ID == actor.ID,
	}, nil
}

// CreateEntry runs the entry creation pipeline and, on success, widens the
// range to cover the new entry's date and rebuilds the actor's report. Any
// pipeline failure returns without a report refresh.
func (a *App) CreateEntry(ctx context.Context, actor *user.User, req timeentry.CreateRequest, rng report.Range) (*EntryOutcome, error) {
	log := a.opLogger("create_entry", actor)

	entry, err := a.entries.Create(ctx, actor, req)
	if err != nil {
		return nil, err
	}

	rng = rng.Extend(entry.SpentOn)
	result, err := a.reports.Aggregate(ctx, actor, rng, nil)
	if err != nil {
		// The entry is committed; only the refresh went wrong.
		return nil, fmt.Errorf("%w: %v", timeentry.ErrCreationFailed, err)
	}

	log.Info("time entry created", "entry_id", entry.ID, "hours", entry.Hours)
	return &EntryOutcome{Entry: entry, Report: result, Range: rng}, nil
}

// DeleteEntry removes an entry the actor may edit and rebuilds the report
// over the unchanged range. A refresh failure after the delete surfaces as
// ErrReportRefresh so the caller can fall back to the initial view.
func (a *App) DeleteEntry(ctx context.Context, actor *user.User, entryID int64, rng report.Range) (*EntryOutcome, error) {
	log := a.opLogger("delete_entry", actor)

	entry, err := a.entries.Delete(ctx, actor, entryID)
	if err != nil {
		return nil, err
	}

	result, err := a.reports.Aggregate(ctx, actor, rng, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReportRefresh, err)
	}

	log.Info("time entry deleted", "entry_id", entryID)
	return &EntryOutcome{Entry: entry, Report: result, Range: rng}, nil
}

// RefreshIssues recomputes the candidate issue list for the selected project
// and hands back the caller's range untouched.
func (a *App) RefreshIssues(ctx context.Context, projectID int64, rng report.Range) (*IssueView, error) {
	log := a.opLogger("refresh_issues", nil)

	issues, err := a.issues.RefreshForProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("refreshing issues: %w", err)
	}

	log.Info("issue selector refreshed", "project_id", projectID, "issues", len(issues))
	return &IssueView{
		Issues: issues,
		Range:  rng,
		Entry:  timeentry.TimeEntry{ProjectID: projectID},
	}, nil
}

// opLogger tags every log line of one operation with a fresh request_id.
// RefreshIssues has no acting user, hence the nil tolerance.
func (a *App) opLogger(op string, actor *user.User) *slog.Logger {
	log := a.logger.With("op", op, "request_id", uuid.NewString())
	if actor != nil {
		log = log.With("user", actor.Login)
	}
	return log
}
