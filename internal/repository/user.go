package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/taskboard/taskboard-go/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

const userColumns = `id, first_name, last_name, email, password_hash, date_of_birth, is_admin, created_at, updated_at`

// UserRepository handles user persistence operations. Email uniqueness is
// enforced by the unique index on users.email; the duplicate-entry error
// from a write is the authoritative conflict signal.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and re-reads the stored row so generated ID and
// timestamps are populated on the user struct.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (first_name, last_name, email, password_hash, date_of_birth)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		user.FirstName, user.LastName, user.Email, user.PasswordHash, user.DateOfBirth,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	stored, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	*user = *stored
	return nil
}

// GetByEmail retrieves a user by their email address (exact match).
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// Update overwrites the mutable profile fields of a user. The password hash
// and id are never touched. Existence is checked by the caller; a duplicate
// email surfaces as ErrDuplicateEmail.
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	query := `UPDATE users SET first_name = ?, last_name = ?, email = ?, date_of_birth = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		user.FirstName, user.LastName, user.Email, user.DateOfBirth, user.ID,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	stored, err := r.GetByID(ctx, user.ID)
	if err != nil {
		return err
	}
	*user = *stored
	return nil
}

// Delete permanently removes a user. Owned tasks are removed by the
// ON DELETE CASCADE constraint on tasks.user_id.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// List retrieves every user, ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	return r.scanMany(ctx, query)
}

// SearchByName retrieves users whose first or last name contains the given
// fragment, case-insensitively.
func (r *UserRepository) SearchByName(ctx context.Context, fragment string) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?
		ORDER BY id`

	pattern := "%" + strings.ToLower(fragment) + "%"
	return r.scanMany(ctx, query, pattern, pattern)
}

func (r *UserRepository) scanOne(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash,
		&user.DateOfBirth, &user.IsAdmin, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) scanMany(ctx context.Context, query string, args ...any) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
			&u.DateOfBirth, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// isDuplicateEntryError checks if a MySQL error is a duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
