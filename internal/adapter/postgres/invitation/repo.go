// Package invitation implements the Invitation repository using PostgreSQL.
package invitation

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/agenda-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agenda-backend/internal/domain"
)

// Unique constraints on the invitations table. Either one firing means the
// invitee already holds a grant for the event.
const (
	ProtectedEventInviteeKey = "ux_invitations_protected_event_invitee"
	EventInviteeKey          = "ux_invitations_event_invitee"
)

// Repo provides invitation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new invitation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const projection = `
SELECT i.id, i.event_id, i.invited_user_id, u.username AS invited_username, i.protected_event_id,
       i.protected_event_key, i.status, i.created_at, i.responded_at
FROM i
JOIN users u ON u.id = i.invited_user_id`

const createSQL = `
WITH i AS (
    INSERT INTO invitations (id, event_id, invited_user_id, protected_event_id, protected_event_key, status, created_at)
    VALUES ($1, $2, $3, $4, $5, 'PENDING', $6)
    RETURNING *
)` + projection

const existsSQL = `
SELECT EXISTS (
    SELECT 1 FROM invitations
    WHERE (protected_event_id = $1 OR event_id = $2) AND invited_user_id = $3
)`

const getByIDSQL = `
WITH i AS (SELECT * FROM invitations WHERE id = $1)` + projection

// Only a PENDING invitation held by the invitee can be answered.
const respondSQL = `
WITH i AS (
    UPDATE invitations SET status = $3, responded_at = $4
    WHERE id = $1 AND invited_user_id = $2 AND status = 'PENDING'
    RETURNING *
)` + projection

const listByInviteeSQL = `
WITH i AS (SELECT * FROM invitations WHERE invited_user_id = $1)` + projection + `
ORDER BY i.created_at DESC, i.id`

const listByEventSQL = `
WITH i AS (SELECT * FROM invitations WHERE event_id = $1)` + projection + `
ORDER BY i.created_at, i.id`

type invitationRow struct {
	ID                uuid.UUID  `db:"id"`
	EventID           uuid.UUID  `db:"event_id"`
	InvitedUserID     uuid.UUID  `db:"invited_user_id"`
	InvitedUsername   string     `db:"invited_username"`
	ProtectedEventID  string     `db:"protected_event_id"`
	ProtectedEventKey string     `db:"protected_event_key"`
	Status            string     `db:"status"`
	CreatedAt         time.Time  `db:"created_at"`
	RespondedAt       *time.Time `db:"responded_at"`
}

func (row invitationRow) toDomain() *domain.Invitation {
	return &domain.Invitation{
		ID:                row.ID,
		EventID:           row.EventID,
		InvitedUserID:     row.InvitedUserID,
		InvitedUsername:   row.InvitedUsername,
		ProtectedEventID:  row.ProtectedEventID,
		ProtectedEventKey: row.ProtectedEventKey,
		Status:            domain.InvitationStatus(row.Status),
		CreatedAt:         row.CreatedAt,
		RespondedAt:       row.RespondedAt,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create persists a PENDING invitation. A duplicate grant yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, inv *domain.Invitation) (*domain.Invitation, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := inv.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := time.Now().UTC().Truncate(time.Microsecond)

	var row invitationRow
	err := pgxscan.Get(ctx, q, &row, createSQL,
		id, inv.EventID, inv.InvitedUserID, inv.ProtectedEventID, inv.ProtectedEventKey, now)
	if err != nil {
		return nil, postgres.MapError(err, "invitation", "")
	}
	return row.toDomain(), nil
}

// Respond records the invitee's answer. It returns domain.ErrNotFound when
// no PENDING invitation with that id is held by inviteeID.
func (r *Repo) Respond(ctx context.Context, id, inviteeID uuid.UUID, status domain.InvitationStatus) (*domain.Invitation, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC().Truncate(time.Microsecond)

	var row invitationRow
	if err := pgxscan.Get(ctx, q, &row, respondSQL, id, inviteeID, string(status), now); err != nil {
		return nil, postgres.MapError(err, "invitation", id.String())
	}
	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Exists reports whether inviteeID already holds an invitation for the event,
// matched either by the opaque protected id or by the server-side event id.
func (r *Repo) Exists(ctx context.Context, protectedEventID string, eventID, inviteeID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var ok bool
	if err := q.QueryRow(ctx, existsSQL, protectedEventID, eventID, inviteeID).Scan(&ok); err != nil {
		return false, postgres.MapError(err, "invitation", "")
	}
	return ok, nil
}

// GetByID returns an invitation by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invitation, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row invitationRow
	if err := pgxscan.Get(ctx, q, &row, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "invitation", id.String())
	}
	return row.toDomain(), nil
}

// ListByInvitee returns every invitation held by inviteeID, newest first.
func (r *Repo) ListByInvitee(ctx context.Context, inviteeID uuid.UUID) ([]domain.Invitation, error) {
	return r.list(ctx, listByInviteeSQL, inviteeID)
}

// ListByEvent returns the invitations granted for eventID in creation order.
func (r *Repo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Invitation, error) {
	return r.list(ctx, listByEventSQL, eventID)
}

func (r *Repo) list(ctx context.Context, sql string, id uuid.UUID) ([]domain.Invitation, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []invitationRow
	if err := pgxscan.Select(ctx, q, &rows, sql, id); err != nil {
		return nil, fmt.Errorf("list invitations: %w", postgres.MapError(err, "invitation", ""))
	}

	out := make([]domain.Invitation, len(rows))
	for i, row := range rows {
		out[i] = *row.toDomain()
	}
	return out, nil
}
