package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/NBISweden/redmine-spent-time/internal/domain/issue"
	"github.com/NBISweden/redmine-spent-time/internal/repository"
)

// IssueRepository implements repository.IssueRepository for SQLite
type IssueRepository struct {
	db *DB
}

// NewIssueRepository creates a new IssueRepository
func NewIssueRepository(db *DB) *IssueRepository {
	return &IssueRepository{db: db}
}

// Create inserts an issue and assigns its ID
func (r *IssueRepository) Create(ctx context.Context, iss *issue.Issue) error {
	query := `
		INSERT INTO issues (project_id, subject, assigned_to_id)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, iss.ProjectID, iss.Subject, iss.AssignedToID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create issue: %w", err)
	}

	iss.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read issue id: %w", err)
	}
	return nil
}

// Get retrieves an issue by ID
func (r *IssueRepository) Get(ctx context.Context, id int64) (*issue.Issue, error) {
	query := `SELECT id, project_id, subject, assigned_to_id FROM issues WHERE id = ?`

	var iss issue.Issue
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&iss.ID,
		&iss.ProjectID,
		&iss.Subject,
		&iss.AssignedToID,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}
	return &iss, nil
}

// ListByProject returns the issues of a project ordered by ID
func (r *IssueRepository) ListByProject(ctx context.Context, projectID int64) ([]issue.Issue, error) {
	query := `
		SELECT id, project_id, subject, assigned_to_id
		FROM issues
		WHERE project_id = ?
		ORDER BY id
	`
	return r.list(ctx, query, projectID)
}

// ListAssignedTo returns the issues assigned to a user ordered by ID
func (r *IssueRepository) ListAssignedTo(ctx context.Context, userID int64) ([]issue.Issue, error) {
	query := `
		SELECT id, project_id, subject, assigned_to_id
		FROM issues
		WHERE assigned_to_id = ?
		ORDER BY id
	`
	return r.list(ctx, query, userID)
}

func (r *IssueRepository) list(ctx context.Context, query string, args ...interface{}) ([]issue.Issue, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	defer rows.Close()

	var issues []issue.Issue
	for rows.Next() {
		var iss issue.Issue
		if err := rows.Scan(&iss.ID, &iss.ProjectID, &iss.Subject, &iss.AssignedToID); err != nil {
			return nil, fmt.Errorf("failed to scan issue: %w", err)
		}
		issues = append(issues, iss)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating issue rows: %w", err)
	}

	return issues, nil
}
