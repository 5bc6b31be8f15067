package issue

// Issue is a unit of work belonging to exactly one project. Time entries may
// reference an issue of their own project.
type Issue struct {
	ID           int64  `json:"id"`
	ProjectID    int64  `json:"project_id"`
	Subject      string `json:"subject"`
	AssignedToID *int64 `json:"assigned_to_id,omitempty"`
}
