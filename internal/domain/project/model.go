package project

// Project statuses mirror the values stored in the projects table.
// Archived projects never appear in visibility scopes.
const (
	StatusActive   = 1
	StatusArchived = 9
)

// Project is a container for issues and logged time.
type Project struct {
	ID                 int64  `json:"id"`
	Identifier         string `json:"identifier"`
	Name               string `json:"name"`
	Status             int    `json:"status"`
	TimeLoggingEnabled bool   `json:"time_logging_enabled"`
}

// Archived reports whether the project has been archived.
func (p Project) Archived() bool {
	return p.Status == StatusArchived
}

// AllowsTimeLogging reports whether time may be logged against the project.
func (p Project) AllowsTimeLogging() bool {
	return p.TimeLoggingEnabled && !p.Archived()
}
