// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/agenda-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agenda-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const userColumns = `id, email, username, password_hash, public_key, protected_private_key,
    protected_symmetric_key, role, is_active, created_at, updated_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByUsernameSQL = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

const getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

// GetByUsername returns a user by exact username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, getByUsernameSQL, username))
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}
	return u, nil
}

// GetByEmail returns a user by email, case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", "")
	}
	return u, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO users (id, email, username, password_hash, public_key, protected_private_key,
                   protected_symmetric_key, role, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
RETURNING ` + userColumns

const setActiveSQL = `
UPDATE users SET is_active = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const setRoleSQL = `
UPDATE users SET role = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

// Create inserts a new user and returns the persisted row.
// Duplicate email or username yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	role := u.Role
	if role == "" {
		role = domain.UserRoleUser
	}
	now := time.Now().UTC().Truncate(time.Microsecond)

	created, err := scanUser(q.QueryRow(ctx, createSQL,
		id, strings.ToLower(u.Email), u.Username, u.PasswordHash, u.PublicKey,
		u.ProtectedPrivateKey, u.ProtectedSymmetricKey, string(role), u.IsActive, now,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}
	return created, nil
}

// SetActive flips the account's active flag and returns the updated row.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, setActiveSQL, id, active))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

// SetRole changes the account's role. An unknown role violates the CHECK
// constraint and yields domain.ErrValidation.
func (r *Repo) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, setRoleSQL, id, string(role)))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.PublicKey, &u.ProtectedPrivateKey,
		&u.ProtectedSymmetricKey, &role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}
