package issue

import (
	"context"

	"github.com/NBISweden/redmine-spent-time/internal/domain/project"
)

// Repository provides persistence for issues.
type Repository interface {
	Get(ctx context.Context, id int64) (*Issue, error)
	ListByProject(ctx context.Context, projectID int64) ([]Issue, error)
	ListAssignedTo(ctx context.Context, userID int64) ([]Issue, error)
}

// ProjectRepository resolves project references for the issue selector.
type ProjectRepository interface {
	Get(ctx context.Context, id int64) (*project.Project, error)
}
