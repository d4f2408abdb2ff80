package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bannerhub/bannerhub/internal/platform/db"
	"github.com/bannerhub/bannerhub/internal/shared"
)

// Repository defines persistence operations for the credential store.
type Repository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (int64, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	db db.DBTX
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(conn db.DBTX) *PGRepository {
	return &PGRepository{db: conn}
}

const insertUser = `INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id`

// CreateUser inserts a user and returns the generated id.
func (r *PGRepository) CreateUser(ctx context.Context, username, passwordHash string) (int64, error) {
	var id int64
	if err := r.db.QueryRow(ctx, insertUser, username, passwordHash).Scan(&id); err != nil {
		if db.IsUniqueViolation(err) {
			return 0, fmt.Errorf("username %q: %w", username, shared.ErrConflict)
		}
		return 0, fmt.Errorf("auth: insert user: %w", err)
	}
	return id, nil
}

const selectUserByUsername = `SELECT id, username, password_hash, created_at FROM users WHERE username = $1`

// FindByUsername fetches a user by username.
func (r *PGRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := r.db.QueryRow(ctx, selectUserByUsername, username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("auth: find user: %w", err)
	}
	return &user, nil
}

var _ Repository = (*PGRepository)(nil)
