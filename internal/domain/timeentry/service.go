package timeentry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/NBISweden/redmine-spent-time/internal/domain/auth"
	"github.com/NBISweden/redmine-spent-time/internal/domain/user"
	"github.com/NBISweden/redmine-spent-time/internal/repository/repoerr"
)

// Service handles time entry creation and deletion.
type Service struct {
	entries  Repository
	projects ProjectRepository
	issues   IssueRepository
	auth     auth.Authorizer
	logger   *slog.Logger
}

// NewService creates a new time entry service.
func NewService(entries Repository, projects ProjectRepository, issues IssueRepository, authorizer auth.Authorizer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		entries:  entries,
		projects: projects,
		issues:   issues,
		auth:     authorizer,
		logger:   logger,
	}
}

// CreateRequest carries the raw submitted values for a new entry. SpentOn and
// Hours arrive as strings and are validated here. A negative ProjectID means
// "take the project from the submitted issue".
type CreateRequest struct {
	ProjectID int64
	IssueID   int64
	SpentOn   string
	Hours     string
	Comments  string
	Activity  string
}

// Create validates and persists a new time entry for the actor. Validation
// is a strict ordered chain: the first failing stage aborts the operation
// with its own error kind and nothing is written.
func (s *Service) Create(ctx context.Context, actor *user.User, req CreateRequest) (*TimeEntry, error) {
	projectID := req.ProjectID
	if projectID < 0 {
		iss, err := s.issues.Get(ctx, req.IssueID)
		if err != nil {
			return nil, fmt.Errorf("%w: resolving project from issue %d: %v", ErrCreationFailed, req.IssueID, err)
		}
		projectID = iss.ProjectID
	}

	spentOn, err := ParseSpentOn(req.SpentOn)
	if err != nil {
		return nil, err
	}

	hours, err := ParseHours(req.Hours)
	if err != nil {
		return nil, err
	}

	proj, err := s.projects.Get(ctx, projectID)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("%w: loading project %d: %v", ErrCreationFailed, projectID, err)
	}
	if !proj.AllowsTimeLogging() {
		return nil, ErrProjectNotAllowed
	}

	var issueID *int64
	if req.IssueID > 0 {
		iss, err := s.issues.Get(ctx, req.IssueID)
		if err != nil {
			if errors.Is(err, repoerr.ErrNotFound) {
				return nil, ErrIssueNotFound
			}
			return nil, fmt.Errorf("%w: loading issue %d: %v", ErrCreationFailed, req.IssueID, err)
		}
		if iss.ProjectID != proj.ID {
			return nil, ErrIssueProjectMismatch
		}
		issueID = &iss.ID
	} else {
		return nil, ErrMissingIssue
	}

	allowed, err := s.auth.AllowedTo(ctx, actor, auth.LogTime, proj)
	if err != nil {
		return nil, fmt.Errorf("%w: checking log_time: %v", ErrCreationFailed, err)
	}
	if !allowed {
		return nil, ErrForbidden
	}

	entry := &TimeEntry{
		UserID:    actor.ID,
		AuthorID:  actor.ID,
		ProjectID: proj.ID,
		IssueID:   issueID,
		SpentOn:   spentOn,
		Hours:     hours,
		Comments:  req.Comments,
		Activity:  req.Activity,
		CreatedAt: time.Now(),
	}

	s.logger.Info("saving time entry", "user", actor.Login, "project_id", proj.ID, "spent_on", req.SpentOn, "hours", hours)
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w: saving entry: %v", ErrCreationFailed, err)
	}

	return entry, nil
}

// Delete removes an entry the actor is allowed to edit and returns it.
func (s *Service) Delete(ctx context.Context, actor *user.User, id int64) (*TimeEntry, error) {
	entry, err := s.entries.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading entry: %w", err)
	}

	editable, err := s.EditableBy(ctx, actor, entry)
	if err != nil {
		return nil, err
	}
	if !editable {
		return nil, ErrForbidden
	}

	if err := s.entries.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("deleting entry: %w", err)
	}

	s.logger.Info("deleted time entry", "user", actor.Login, "entry_id", id)
	return entry, nil
}

// EditableBy reports whether the actor may modify the entry: either the
// actor can edit any entry on the project, or it is their own entry and they
// can edit their own.
func (s *Service) EditableBy(ctx context.Context, actor *user.User, entry *TimeEntry) (bool, error) {
	proj, err := s.projects.Get(ctx, entry.ProjectID)
	if err != nil {
		return false, fmt.Errorf("loading entry project: %w", err)
	}

	allowed, err := s.auth.AllowedTo(ctx, actor, auth.EditTimeEntries, proj)
	if err != nil {
		return false, fmt.Errorf("checking edit_time_entries: %w", err)
	}
	if allowed {
		return true, nil
	}

	if entry.UserID != actor.ID {
		return false, nil
	}
	allowed, err = s.auth.AllowedTo(ctx, actor, auth.EditOwnTimeEntries, proj)
	if err != nil {
		return false, fmt.Errorf("checking edit_own_time_entries: %w", err)
	}
	return allowed, nil
}
