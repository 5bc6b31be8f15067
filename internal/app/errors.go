package app

import "errors"

var (
	// ErrUserNotVisible indicates the requested report user is outside the
	// actor's visibility scope.
	ErrUserNotVisible = errors.New("user not in visibility scope")
	// ErrReportRefresh indicates the store mutation succeeded but the report
	// could not be rebuilt; callers fall back to the initial view.
	ErrReportRefresh = errors.New("report refresh failed")
)
