package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/NBISweden/redmine-spent-time/internal/domain/timeentry"
	"github.com/NBISweden/redmine-spent-time/internal/repository"
)

// TimeEntryRepository implements repository.TimeEntryRepository for SQLite
type TimeEntryRepository struct {
	db *DB
}

// NewTimeEntryRepository creates a new TimeEntryRepository
func NewTimeEntryRepository(db *DB) *TimeEntryRepository {
	return &TimeEntryRepository{db: db}
}

// Create inserts a time entry and assigns its ID
func (r *TimeEntryRepository) Create(ctx context.Context, entry *timeentry.TimeEntry) error {
	query := `
		INSERT INTO time_entries (user_id, author_id, project_id, issue_id, spent_on, hours, comments, activity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.UserID,
		entry.AuthorID,
		entry.ProjectID,
		entry.IssueID,
		entry.SpentOn.Format(timeentry.DateLayout),
		entry.Hours,
		entry.Comments,
		entry.Activity,
		entry.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create time entry: %w", err)
	}

	entry.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read time entry id: %w", err)
	}
	return nil
}

// Get retrieves a time entry by ID
func (r *TimeEntryRepository) Get(ctx context.Context, id int64) (*timeentry.TimeEntry, error) {
	query := `
		SELECT id, user_id, author_id, project_id, issue_id, spent_on, hours, comments, activity, created_at
		FROM time_entries
		WHERE id = ?
	`

	var entry timeentry.TimeEntry
	var spentOn string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.AuthorID,
		&entry.ProjectID,
		&entry.IssueID,
		&spentOn,
		&entry.Hours,
		&entry.Comments,
		&entry.Activity,
		&entry.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get time entry: %w", err)
	}

	entry.SpentOn, err = time.Parse(timeentry.DateLayout, spentOn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse spent_on %q: %w", spentOn, err)
	}
	return &entry, nil
}

// Delete removes a time entry
func (r *TimeEntryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM time_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ListForUser returns the user's entries with spent_on inside [from, to],
// both bounds included, restricted to projectIDs when non-nil. Entries are
// ordered by date then ID so aggregation output is deterministic.
func (r *TimeEntryRepository) ListForUser(ctx context.Context, userID int64, from, to time.Time, projectIDs []int64) ([]timeentry.TimeEntry, error) {
	query := `
		SELECT id, user_id, author_id, project_id, issue_id, spent_on, hours, comments, activity, created_at
		FROM time_entries
		WHERE user_id = ? AND spent_on >= ? AND spent_on <= ?
	`

	args := []interface{}{
		userID,
		from.Format(timeentry.DateLayout),
		to.Format(timeentry.DateLayout),
	}

	if projectIDs != nil {
		if len(projectIDs) == 0 {
			return nil, nil
		}
		placeholders := make([]string, len(projectIDs))
		for i, pid := range projectIDs {
			placeholders[i] = "?"
			args = append(args, pid)
		}
		query += fmt.Sprintf(" AND project_id IN (%s)", strings.Join(placeholders, ","))
	}

	query += " ORDER BY spent_on, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		var entry timeentry.TimeEntry
		var spentOn string
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.AuthorID,
			&entry.ProjectID,
			&entry.IssueID,
			&spentOn,
			&entry.Hours,
			&entry.Comments,
			&entry.Activity,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}

		entry.SpentOn, err = time.Parse(timeentry.DateLayout, spentOn)
		if err != nil {
			return nil, fmt.Errorf("failed to parse spent_on %q: %w", spentOn, err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating time entry rows: %w", err)
	}

	return entries, nil
}
