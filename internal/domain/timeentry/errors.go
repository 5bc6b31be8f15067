package timeentry

import "errors"

var (
	// ErrInvalidDate indicates the spent-on value is not a calendar date.
	ErrInvalidDate = errors.New("invalid spent-on date")
	// ErrInvalidHours indicates the hours value is not a plain decimal number.
	ErrInvalidHours = errors.New("invalid hours value")
	// ErrProjectNotFound indicates the resolved project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrProjectNotAllowed indicates the project doesn't accept time logging.
	ErrProjectNotAllowed = errors.New("project does not allow time logging")
	// ErrIssueNotFound indicates the referenced issue doesn't exist.
	ErrIssueNotFound = errors.New("issue not found")
	// ErrIssueProjectMismatch indicates the issue belongs to another project.
	ErrIssueProjectMismatch = errors.New("issue does not belong to project")
	// ErrMissingIssue indicates no issue was supplied for the new entry.
	ErrMissingIssue = errors.New("no issue specified")
	// ErrForbidden indicates the actor lacks the required capability.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound indicates the time entry doesn't exist.
	ErrNotFound = errors.New("time entry not found")
	// ErrCreationFailed wraps unexpected failures during entry creation.
	ErrCreationFailed = errors.New("time entry creation failed")
)
