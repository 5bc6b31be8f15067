package user

// User statuses mirror the values stored in the users table.
const (
	StatusActive = 1
	StatusLocked = 3
)

// User is an account that logs time and appears in reports.
type User struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Admin     bool   `json:"admin"`
	Status    int    `json:"status"`
}

// Name returns the display name used for ordering user lists.
func (u User) Name() string {
	if u.Lastname == "" {
		return u.Firstname
	}
	return u.Firstname + " " + u.Lastname
}

// Active reports whether the account may appear in visibility scopes.
func (u User) Active() bool {
	return u.Status == StatusActive
}
