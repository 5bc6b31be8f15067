package timeentry

import (
	"context"
	"time"

	"github.com/NBISweden/redmine-spent-time/internal/domain/issue"
	"github.com/NBISweden/redmine-spent-time/internal/domain/project"
)

// Repository provides persistence for time entries.
type Repository interface {
	Create(ctx context.Context, entry *TimeEntry) error
	Get(ctx context.Context, id int64) (*TimeEntry, error)
	Delete(ctx context.Context, id int64) error
	ListForUser(ctx context.Context, userID int64, from, to time.Time, projectIDs []int64) ([]TimeEntry, error)
}

// ProjectRepository resolves project references during validation.
type ProjectRepository interface {
	Get(ctx context.Context, id int64) (*project.Project, error)
}

// IssueRepository resolves issue references during validation.
type IssueRepository interface {
	Get(ctx context.Context, id int64) (*issue.Issue, error)
}
