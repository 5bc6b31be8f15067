package issue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/NBISweden/redmine-spent-time/internal/domain/user"
	"github.com/NBISweden/redmine-spent-time/internal/repository/repoerr"
)

// Service handles issue projections for the spent-time views.
type Service struct {
	issues   Repository
	projects ProjectRepository
	logger   *slog.Logger
}

// NewService creates a new issue service.
func NewService(issues Repository, projects ProjectRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{issues: issues, projects: projects, logger: logger}
}

// RefreshForProject returns the candidate issues a time entry on the project
// may reference. A project that cannot be resolved yields an empty list
// rather than an error, so the selector degrades to an empty scaffold.
func (s *Service) RefreshForProject(ctx context.Context, projectID int64) ([]Issue, error) {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			s.logger.Debug("issue refresh for unknown project", "project_id", projectID)
			return nil, nil
		}
		return nil, fmt.Errorf("resolving project: %w", err)
	}

	issues, err := s.issues.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing project issues: %w", err)
	}
	return issues, nil
}

// AssignedTo returns the issues currently assigned to the given user,
// regardless of date. Used to populate the assigned-issues panel.
func (s *Service) AssignedTo(ctx context.Context, u *user.User) ([]Issue, error) {
	issues, err := s.issues.ListAssignedTo(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("listing assigned issues: %w", err)
	}
	return issues, nil
}
