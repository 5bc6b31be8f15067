package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NBISweden/redmine-spent-time/internal/domain/project"
	"github.com/NBISweden/redmine-spent-time/internal/domain/user"
)

// GrantStore provides persistence for capability grants. A grant with a nil
// project ID applies globally.
type GrantStore interface {
	HasGrant(ctx context.Context, userID int64, cap Capability, projectID *int64) (bool, error)
}

// Service is the capability oracle backed by stored grants. Administrators
// hold every capability implicitly.
type Service struct {
	grants GrantStore
	logger *slog.Logger
}

// NewService creates a new authorization service.
func NewService(grants GrantStore, logger *slog.Logger) *Service {
	return &Service{grants: grants, logger: logger}
}

// AllowedTo reports whether the actor holds the capability on the given
// scope. A global grant satisfies a project-scoped query.
func (s *Service) AllowedTo(ctx context.Context, actor *user.User, cap Capability, scope *project.Project) (bool, error) {
	if actor.Admin {
		return true, nil
	}

	var projectID *int64
	if scope != nil {
		projectID = &scope.ID
	}

	allowed, err := s.grants.HasGrant(ctx, actor.ID, cap, projectID)
	if err != nil {
		return false, fmt.Errorf("checking grant: %w", err)
	}
	return allowed, nil
}
