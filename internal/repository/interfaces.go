package repository

import (
	"context"
	"time"

	"github.com/NBISweden/redmine-spent-time/internal/domain/auth"
	"github.com/NBISweden/redmine-spent-time/internal/domain/issue"
	"github.com/NBISweden/redmine-spent-time/internal/domain/project"
	"github.com/NBISweden/redmine-spent-time/internal/domain/timeentry"
	"github.com/NBISweden/redmine-spent-time/internal/domain/user"
)

// UserRepository manages user persistence
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Get(ctx context.Context, id int64) (*user.User, error)
	GetByLogin(ctx context.Context, login string) (*user.User, error)
	ListActive(ctx context.Context) ([]user.User, error)
	ListByProject(ctx context.Context, projectID int64) ([]user.User, error)
}

// ProjectRepository manages project persistence and memberships
type ProjectRepository interface {
	Create(ctx context.Context, p *project.Project) error
	Get(ctx context.Context, id int64) (*project.Project, error)
	ListActive(ctx context.Context) ([]project.Project, error)
	ListForUser(ctx context.Context, userID int64) ([]project.Project, error)
	AddMember(ctx context.Context, projectID, userID int64) error
}

// IssueRepository manages issue persistence
type IssueRepository interface {
	Create(ctx context.Context, iss *issue.Issue) error
	Get(ctx context.Context, id int64) (*issue.Issue, error)
	ListByProject(ctx context.Context, projectID int64) ([]issue.Issue, error)
	ListAssignedTo(ctx context.Context, userID int64) ([]issue.Issue, error)
}

// TimeEntryRepository manages time entry persistence. ListForUser returns
// entries with spent_on inside [from, to], both bounds included, restricted
// to the given projects when projectIDs is non-nil.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry *timeentry.TimeEntry) error
	Get(ctx context.Context, id int64) (*timeentry.TimeEntry, error)
	Delete(ctx context.Context, id int64) error
	ListForUser(ctx context.Context, userID int64, from, to time.Time, projectIDs []int64) ([]timeentry.TimeEntry, error)
}

// PermissionRepository manages capability grants. A grant with a nil project
// ID is global and satisfies queries for any project.
type PermissionRepository interface {
	Grant(ctx context.Context, userID int64, cap auth.Capability, projectID *int64) error
	HasGrant(ctx context.Context, userID int64, cap auth.Capability, projectID *int64) (bool, error)
}
