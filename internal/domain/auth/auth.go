package auth

import (
	"context"

	"github.com/NBISweden/redmine-spent-time/internal/domain/project"
	"github.com/NBISweden/redmine-spent-time/internal/domain/user"
)

// Capability is a named permission an actor may hold, either globally or
// scoped to a single project.
type Capability string

const (
	// ViewEveryProjectSpentTime grants visibility of all users' time on all projects.
	ViewEveryProjectSpentTime Capability = "view_every_project_spent_time"
	// ViewOthersSpentTime grants visibility of co-workers' time on shared projects.
	ViewOthersSpentTime Capability = "view_others_spent_time"
	// LogTime allows creating time entries on a project.
	LogTime Capability = "log_time"
	// EditTimeEntries allows editing or deleting anyone's entries on a project.
	EditTimeEntries Capability = "edit_time_entries"
	// EditOwnTimeEntries allows editing or deleting the actor's own entries.
	EditOwnTimeEntries Capability = "edit_own_time_entries"
)

// Authorizer answers capability queries. A nil scope asks about a global
// grant; a non-nil scope asks about the given project.
type Authorizer interface {
	AllowedTo(ctx context.Context, actor *user.User, cap Capability, scope *project.Project) (bool, error)
}
