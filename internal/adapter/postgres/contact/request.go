package contact

import (
	"context"
	"errors"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/agenda-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agenda-backend/internal/domain"
)

// ActivePairIndex is the partial unique index that allows one active
// request per pair of users, whichever of them sent it.
const ActivePairIndex = "ux_contact_requests_active_pair"

// requestProjection joins sender and receiver usernames onto a request row
// held in the CTE named "r".
const requestProjection = `
SELECT r.id, r.sender_id, s.username AS sender_username, r.receiver_id,
       rc.username AS receiver_username, r.is_active, r.outcome, r.created_at, r.resolved_at
FROM r
JOIN users s  ON s.id = r.sender_id
JOIN users rc ON rc.id = r.receiver_id`

const createRequestSQL = `
WITH r AS (
    INSERT INTO contact_requests (id, sender_id, receiver_id, is_active, outcome, created_at)
    VALUES ($1, $2, $3, TRUE, 'PENDING', $4)
    RETURNING *
)` + requestProjection

const hasActiveBetweenSQL = `
SELECT EXISTS (
    SELECT 1 FROM contact_requests
    WHERE is_active
      AND ((sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1))
)`

// The WHERE is_active guard makes two concurrent resolutions race on the
// row lock; the loser sees no row.
const resolveActiveSQL = `
WITH r AS (
    UPDATE contact_requests
    SET is_active = FALSE, outcome = $3, resolved_at = $4
    WHERE sender_id = $1 AND receiver_id = $2 AND is_active
    RETURNING *
)` + requestProjection

const listReceivedSQL = `
WITH r AS (
    SELECT * FROM contact_requests WHERE receiver_id = $1 AND is_active
)` + requestProjection + `
ORDER BY r.created_at DESC, r.id`

const listSentSQL = `
WITH r AS (
    SELECT * FROM contact_requests WHERE sender_id = $1 AND is_active
)` + requestProjection + `
ORDER BY r.created_at DESC, r.id`

type requestRow struct {
	ID               uuid.UUID  `db:"id"`
	SenderID         uuid.UUID  `db:"sender_id"`
	SenderUsername   string     `db:"sender_username"`
	ReceiverID       uuid.UUID  `db:"receiver_id"`
	ReceiverUsername string     `db:"receiver_username"`
	IsActive         bool       `db:"is_active"`
	Outcome          string     `db:"outcome"`
	CreatedAt        time.Time  `db:"created_at"`
	ResolvedAt       *time.Time `db:"resolved_at"`
}

func (row requestRow) toDomain() *domain.ContactRequest {
	return &domain.ContactRequest{
		ID:               row.ID,
		SenderID:         row.SenderID,
		SenderUsername:   row.SenderUsername,
		ReceiverID:       row.ReceiverID,
		ReceiverUsername: row.ReceiverUsername,
		IsActive:         row.IsActive,
		Outcome:          domain.RequestOutcome(row.Outcome),
		CreatedAt:        row.CreatedAt,
		ResolvedAt:       row.ResolvedAt,
	}
}

// CreateRequest inserts a new active request from senderID to receiverID.
// A second active request for the same ordered pair yields domain.ErrAlreadyExists.
func (r *Repo) CreateRequest(ctx context.Context, senderID, receiverID uuid.UUID) (*domain.ContactRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC().Truncate(time.Microsecond)

	var row requestRow
	if err := pgxscan.Get(ctx, q, &row, createRequestSQL, uuid.New(), senderID, receiverID, now); err != nil {
		return nil, postgres.MapError(err, "contact request", "")
	}
	return row.toDomain(), nil
}

// HasActiveBetween reports whether an active request exists between a and b
// in either direction.
func (r *Repo) HasActiveBetween(ctx context.Context, a, b uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var ok bool
	if err := q.QueryRow(ctx, hasActiveBetweenSQL, a, b).Scan(&ok); err != nil {
		return false, postgres.MapError(err, "contact request", "")
	}
	return ok, nil
}

// ResolveActive moves the active request from senderID to receiverID into
// a terminal outcome. It returns domain.ErrNotFound if no active request exists.
func (r *Repo) ResolveActive(ctx context.Context, senderID, receiverID uuid.UUID, outcome domain.RequestOutcome) (*domain.ContactRequest, error) {
	if !outcome.IsTerminal() {
		return nil, errors.New("contact request: resolve: outcome must be terminal")
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC().Truncate(time.Microsecond)

	var row requestRow
	if err := pgxscan.Get(ctx, q, &row, resolveActiveSQL, senderID, receiverID, string(outcome), now); err != nil {
		return nil, postgres.MapError(err, "contact request", "")
	}
	return row.toDomain(), nil
}

// ListActiveReceived returns active requests addressed to receiverID, newest first.
func (r *Repo) ListActiveReceived(ctx context.Context, receiverID uuid.UUID) ([]domain.ContactRequest, error) {
	return r.listRequests(ctx, listReceivedSQL, receiverID)
}

// ListActiveSent returns active requests sent by senderID, newest first.
func (r *Repo) ListActiveSent(ctx context.Context, senderID uuid.UUID) ([]domain.ContactRequest, error) {
	return r.listRequests(ctx, listSentSQL, senderID)
}

func (r *Repo) listRequests(ctx context.Context, sql string, userID uuid.UUID) ([]domain.ContactRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []requestRow
	if err := pgxscan.Select(ctx, q, &rows, sql, userID); err != nil {
		return nil, postgres.MapError(err, "contact request", "")
	}

	out := make([]domain.ContactRequest, len(rows))
	for i, row := range rows {
		out[i] = *row.toDomain()
	}
	return out, nil
}
