// Package contact implements contact-list and contact-request persistence
// using PostgreSQL. The member table is the contact set; symmetry between
// two lists is maintained by the caller inside one transaction.
package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/agenda-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agenda-backend/internal/domain"
)

// Repo provides contact graph persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new contact repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Contact lists
// ---------------------------------------------------------------------------

const ensureListSQL = `INSERT INTO contact_lists (owner_id) VALUES ($1) ON CONFLICT (owner_id) DO NOTHING`

const listExistsSQL = `SELECT EXISTS (SELECT 1 FROM contact_lists WHERE owner_id = $1)`

const addMemberSQL = `
INSERT INTO contact_list_members (owner_id, contact_id)
VALUES ($1, $2)
ON CONFLICT (owner_id, contact_id) DO NOTHING`

const removeMemberSQL = `DELETE FROM contact_list_members WHERE owner_id = $1 AND contact_id = $2`

const isMemberSQL = `SELECT EXISTS (SELECT 1 FROM contact_list_members WHERE owner_id = $1 AND contact_id = $2)`

const lockMembershipSQL = `
SELECT 1 FROM contact_list_members
WHERE owner_id = $1 AND contact_id = $2
FOR SHARE`

const getListSQL = `SELECT contact_id FROM contact_list_members WHERE owner_id = $1 ORDER BY added_at, contact_id`

const listProfilesSQL = `
SELECT u.id, u.username, u.public_key
FROM contact_list_members m
JOIN users u ON u.id = m.contact_id
WHERE m.owner_id = $1
ORDER BY u.username`

// EnsureList creates the owner's contact list if it does not exist yet.
// Concurrent callers cannot produce two rows.
func (r *Repo) EnsureList(ctx context.Context, ownerID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, ensureListSQL, ownerID); err != nil {
		return postgres.MapError(err, "contact list", ownerID.String())
	}
	return nil
}

// ListExists reports whether ownerID has a contact list row.
func (r *Repo) ListExists(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, listExistsSQL, ownerID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "contact list", ownerID.String())
	}
	return exists, nil
}

// AddMember puts contactID into ownerID's list. Adding an existing member is a no-op.
// The list must exist.
func (r *Repo) AddMember(ctx context.Context, ownerID, contactID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, addMemberSQL, ownerID, contactID); err != nil {
		return postgres.MapError(err, "contact list", ownerID.String())
	}
	return nil
}

// RemoveMember deletes contactID from ownerID's list and reports whether a row was removed.
func (r *Repo) RemoveMember(ctx context.Context, ownerID, contactID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, removeMemberSQL, ownerID, contactID)
	if err != nil {
		return false, postgres.MapError(err, "contact list", ownerID.String())
	}
	return tag.RowsAffected() > 0, nil
}

// IsMember reports whether contactID is in ownerID's contact set.
func (r *Repo) IsMember(ctx context.Context, ownerID, contactID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var ok bool
	if err := q.QueryRow(ctx, isMemberSQL, ownerID, contactID).Scan(&ok); err != nil {
		return false, postgres.MapError(err, "contact list", ownerID.String())
	}
	return ok, nil
}

// LockMembership reports whether contactID is in ownerID's contact set and,
// inside a transaction, share-locks that row until commit. A concurrent
// RemoveMember on the row waits; one that committed first makes this report
// false.
func (r *Repo) LockMembership(ctx context.Context, ownerID, contactID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var one int
	err := q.QueryRow(ctx, lockMembershipSQL, ownerID, contactID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, postgres.MapError(err, "contact list", ownerID.String())
	}
	return true, nil
}

// GetList returns the owner's contact set. A missing list yields an empty set.
func (r *Repo) GetList(ctx context.Context, ownerID uuid.UUID) (*domain.ContactList, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ids := make([]uuid.UUID, 0)
	if err := pgxscan.Select(ctx, q, &ids, getListSQL, ownerID); err != nil {
		return nil, postgres.MapError(err, "contact list", ownerID.String())
	}
	return &domain.ContactList{OwnerID: ownerID, Contacts: ids}, nil
}

type profileRow struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	PublicKey string    `db:"public_key"`
}

// ListProfiles returns the public profiles of the owner's contacts, ordered by username.
func (r *Repo) ListProfiles(ctx context.Context, ownerID uuid.UUID) ([]domain.PublicProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []profileRow
	if err := pgxscan.Select(ctx, q, &rows, listProfilesSQL, ownerID); err != nil {
		return nil, fmt.Errorf("list contact profiles: %w", postgres.MapError(err, "contact list", ownerID.String()))
	}

	out := make([]domain.PublicProfile, len(rows))
	for i, row := range rows {
		out[i] = domain.PublicProfile{ID: row.ID, Username: row.Username, PublicKey: row.PublicKey}
	}
	return out, nil
}
