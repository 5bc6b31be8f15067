// Package repoerr holds the storage error sentinels. It imports nothing
// from the rest of the module so both the repository interfaces and the
// domain services that translate storage failures can depend on it.
package repoerr

import "errors"

var (
	// ErrNotFound reports that the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForeignKeyViolation reports that a write referenced a missing row.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)
