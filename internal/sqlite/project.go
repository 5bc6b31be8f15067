package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/NBISweden/redmine-spent-time/internal/domain/project"
	"github.com/NBISweden/redmine-spent-time/internal/repository"
)

// ProjectRepository implements repository.ProjectRepository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a project and assigns its ID
func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (identifier, name, status, time_logging_enabled)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, p.Identifier, p.Name, p.Status, p.TimeLoggingEnabled)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("identifier %q already taken", p.Identifier)
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	p.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read project id: %w", err)
	}
	return nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, id int64) (*project.Project, error) {
	query := `
		SELECT id, identifier, name, status, time_logging_enabled
		FROM projects
		WHERE id = ?
	`

	var p project.Project
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Identifier,
		&p.Name,
		&p.Status,
		&p.TimeLoggingEnabled,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &p, nil
}

// ListActive returns every project that has not been archived
func (r *ProjectRepository) ListActive(ctx context.Context) ([]project.Project, error) {
	query := `
		SELECT id, identifier, name, status, time_logging_enabled
		FROM projects
		WHERE status != ?
		ORDER BY name, id
	`
	return r.list(ctx, query, project.StatusArchived)
}

// ListForUser returns the projects the user is a member of
func (r *ProjectRepository) ListForUser(ctx context.Context, userID int64) ([]project.Project, error) {
	query := `
		SELECT p.id, p.identifier, p.name, p.status, p.time_logging_enabled
		FROM projects p
		JOIN memberships m ON m.project_id = p.id
		WHERE m.user_id = ?
		ORDER BY p.name, p.id
	`
	return r.list(ctx, query, userID)
}

// AddMember adds a user to a project
func (r *ProjectRepository) AddMember(ctx context.Context, projectID, userID int64) error {
	query := `INSERT INTO memberships (project_id, user_id) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, projectID, userID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

func (r *ProjectRepository) list(ctx context.Context, query string, args ...interface{}) ([]project.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(&p.ID, &p.Identifier, &p.Name, &p.Status, &p.TimeLoggingEnabled); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}
