package sqlite

import (
	"context"
	"fmt"

	"github.com/NBISweden/redmine-spent-time/internal/domain/auth"
	"github.com/NBISweden/redmine-spent-time/internal/repository"
)

// PermissionRepository implements repository.PermissionRepository for SQLite
type PermissionRepository struct {
	db *DB
}

// NewPermissionRepository creates a new PermissionRepository
func NewPermissionRepository(db *DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

// Grant stores a capability grant. A nil projectID makes the grant global.
func (r *PermissionRepository) Grant(ctx context.Context, userID int64, cap auth.Capability, projectID *int64) error {
	query := `INSERT INTO permission_grants (user_id, project_id, capability) VALUES (?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, userID, projectID, string(cap))
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to store grant: %w", err)
	}
	return nil
}

// HasGrant reports whether the user holds the capability. A query scoped to
// a project is satisfied by either a project grant or a global one; a query
// with nil projectID requires a global grant.
func (r *PermissionRepository) HasGrant(ctx context.Context, userID int64, cap auth.Capability, projectID *int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM permission_grants
			WHERE user_id = ? AND capability = ? AND project_id IS NULL
		)
	`
	args := []interface{}{userID, string(cap)}

	if projectID != nil {
		query = `
			SELECT EXISTS(
				SELECT 1 FROM permission_grants
				WHERE user_id = ? AND capability = ? AND (project_id IS NULL OR project_id = ?)
			)
		`
		args = append(args, *projectID)
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check grant: %w", err)
	}
	return exists, nil
}
