package timeentry

import "time"

// TimeEntry records hours spent by a user on a project, always tied to an
// issue of that project. SpentOn carries a calendar date; the time of day is
// always midnight UTC.
type TimeEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	AuthorID  int64     `json:"author_id"`
	ProjectID int64     `json:"project_id"`
	IssueID   *int64    `json:"issue_id,omitempty"`
	SpentOn   time.Time `json:"spent_on"`
	Hours     float64   `json:"hours"`
	Comments  string    `json:"comments,omitempty"`
	Activity  string    `json:"activity,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
