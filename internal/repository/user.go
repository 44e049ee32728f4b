package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/notesstudio/notes-go/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// BeginTx starts a new database transaction.
func (r *UserRepository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return r.db.BeginTx(ctx, nil)
}

const insertUserQuery = `INSERT INTO users (email, password_hash, full_name, created_at) VALUES (?, ?, ?, ?)`

// Create inserts a new user and sets the generated ID on the user struct.
// The unique index on email rejects duplicates atomically; there is no
// check-then-insert window.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.create(ctx, r.db, user)
}

// CreateTx inserts a new user within the provided transaction.
func (r *UserRepository) CreateTx(ctx context.Context, tx *sql.Tx, user *model.User) error {
	return r.create(ctx, tx, user)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *UserRepository) create(ctx context.Context, ex execer, user *model.User) error {
	result, err := ex.ExecContext(ctx, insertUserQuery,
		user.Email, user.PasswordHash, nullableString(user.FullName), user.CreatedAt)
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

	user.ID = id
	return nil
}

// GetByEmail retrieves a user by their email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, email, password_hash, full_name, created_at FROM users WHERE email = ?`

	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT id, email, password_hash, full_name, created_at FROM users WHERE id = ?`

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	var fullName sql.NullString
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &fullName, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.FullName = fullName.String

	return user, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// isDuplicateEntryError checks whether err is a unique-constraint violation.
// MySQL reports "Duplicate entry" (error 1062), sqlite "UNIQUE constraint failed".
func isDuplicateEntryError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
