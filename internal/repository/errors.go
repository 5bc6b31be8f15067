package repository

import "github.com/NBISweden/redmine-spent-time/internal/repository/repoerr"

// The sentinels live in repoerr, a leaf package, so that domain services
// can match on them without importing the repository interfaces (which
// would close an import cycle through the domain model packages). They are
// re-exported here for the store implementations and their tests.
var (
	ErrNotFound            = repoerr.ErrNotFound
	ErrForeignKeyViolation = repoerr.ErrForeignKeyViolation
)
