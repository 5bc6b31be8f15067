package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/NBISweden/redmine-spent-time/internal/domain/user"
	"github.com/NBISweden/redmine-spent-time/internal/repository"
)

// UserRepository implements repository.UserRepository for SQLite
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user and assigns its ID
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (login, firstname, lastname, admin, status)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, u.Login, u.Firstname, u.Lastname, u.Admin, u.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("login %q already taken", u.Login)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	return nil
}

// Get retrieves a user by ID
func (r *UserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	return r.getBy(ctx, "id = ?", id)
}

// GetByLogin retrieves a user by login
func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*user.User, error) {
	return r.getBy(ctx, "login = ?", login)
}

func (r *UserRepository) getBy(ctx context.Context, where string, arg interface{}) (*user.User, error) {
	query := `SELECT id, login, firstname, lastname, admin, status FROM users WHERE ` + where

	var u user.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID,
		&u.Login,
		&u.Firstname,
		&u.Lastname,
		&u.Admin,
		&u.Status,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// ListActive returns all active users ordered by first name
func (r *UserRepository) ListActive(ctx context.Context) ([]user.User, error) {
	query := `
		SELECT id, login, firstname, lastname, admin, status
		FROM users
		WHERE status = ?
		ORDER BY firstname, lastname, id
	`
	return r.list(ctx, query, user.StatusActive)
}

// ListByProject returns the members of a project ordered by first name
func (r *UserRepository) ListByProject(ctx context.Context, projectID int64) ([]user.User, error) {
	query := `
		SELECT u.id, u.login, u.firstname, u.lastname, u.admin, u.status
		FROM users u
		JOIN memberships m ON m.user_id = u.id
		WHERE m.project_id = ?
		ORDER BY u.firstname, u.lastname, u.id
	`
	return r.list(ctx, query, projectID)
}

func (r *UserRepository) list(ctx context.Context, query string, args ...interface{}) ([]user.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Login, &u.Firstname, &u.Lastname, &u.Admin, &u.Status); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}
