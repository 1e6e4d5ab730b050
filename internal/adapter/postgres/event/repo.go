// Package event implements the Event repository using PostgreSQL.
// Partial updates and the visibility filter are built with squirrel.
package event

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/agenda-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agenda-backend/internal/domain"
)

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// builder emits $N placeholders for pgx.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// creatorUsername resolves the owner's username without a join so it can be
// used in RETURNING clauses.
const creatorUsername = `(SELECT u.username FROM users u WHERE u.id = e.creator_id) AS creator_username`

var eventColumns = []string{
	"e.id", "e.creator_id", creatorUsername, "e.protected_event_key", "e.title", "e.start_date",
	"e.end_date", "e.description", "e.location", "e.participants", "e.created_at", "e.updated_at",
}

// visibleByInvitation matches events the user holds a live invitation to.
// DECLINED invitations do not grant visibility.
const visibleByInvitation = `EXISTS (
    SELECT 1 FROM invitations i
    WHERE i.event_id = e.id AND i.invited_user_id = ? AND i.status IN ('PENDING', 'ACCEPTED')
)`

type eventRow struct {
	ID                uuid.UUID `db:"id"`
	CreatorID         uuid.UUID `db:"creator_id"`
	CreatorUsername   string    `db:"creator_username"`
	ProtectedEventKey string    `db:"protected_event_key"`
	Title             string    `db:"title"`
	StartDate         string    `db:"start_date"`
	EndDate           *string   `db:"end_date"`
	Description       *string   `db:"description"`
	Location          *string   `db:"location"`
	Participants      *string   `db:"participants"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (row eventRow) toDomain() *domain.Event {
	return &domain.Event{
		ID:                row.ID,
		CreatorID:         row.CreatorID,
		CreatorUsername:   row.CreatorUsername,
		ProtectedEventKey: row.ProtectedEventKey,
		Title:             row.Title,
		StartDate:         row.StartDate,
		EndDate:           row.EndDate,
		Description:       row.Description,
		Location:          row.Location,
		Participants:      row.Participants,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}

func toDomainList(rows []eventRow) []domain.Event {
	out := make([]domain.Event, len(rows))
	for i, row := range rows {
		out[i] = *row.toDomain()
	}
	return out
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create persists a new event and returns the stored row.
func (r *Repo) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := e.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := time.Now().UTC().Truncate(time.Microsecond)

	sql, args, err := builder.
		Insert("events AS e").
		Columns("id", "creator_id", "protected_event_key", "title", "start_date",
			"end_date", "description", "location", "participants", "created_at", "updated_at").
		Values(id, e.CreatorID, e.ProtectedEventKey, e.Title, e.StartDate,
			e.EndDate, e.Description, e.Location, e.Participants, now, now).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert event: %w", err)
	}

	var row eventRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "event", id.String())
	}
	return row.toDomain(), nil
}

// Update applies the non-nil fields of params and returns the updated row.
// An empty params only refreshes updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	upd := builder.Update("events AS e")
	upd = setIfPresent(upd, "protected_event_key", params.ProtectedEventKey)
	upd = setIfPresent(upd, "title", params.Title)
	upd = setIfPresent(upd, "start_date", params.StartDate)
	upd = setIfPresent(upd, "end_date", params.EndDate)
	upd = setIfPresent(upd, "description", params.Description)
	upd = setIfPresent(upd, "location", params.Location)
	upd = setIfPresent(upd, "participants", params.Participants)

	sql, args, err := upd.
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"e.id": id}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update event: %w", err)
	}

	var row eventRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "event", id.String())
	}
	return row.toDomain(), nil
}

// SetParticipants replaces the opaque participants blob.
func (r *Repo) SetParticipants(ctx context.Context, id uuid.UUID, participants string) error {
	_, err := r.Update(ctx, id, domain.EventUpdateParams{Participants: &participants})
	return err
}

// Delete removes the event. Its invitations go with it via ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := builder.Delete("events").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete event: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "event", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an event regardless of who is asking.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := selectEvents().Where(squirrel.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get event: %w", err)
	}

	var row eventRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "event", id.String())
	}
	return row.toDomain(), nil
}

// GetVisible returns the event if viewerID may see it. all skips the
// visibility filter. An invisible event is reported as not found.
func (r *Repo) GetVisible(ctx context.Context, id, viewerID uuid.UUID, all bool) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := visibleTo(viewerID, all).Where(squirrel.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get visible event: %w", err)
	}

	var row eventRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "event", id.String())
	}
	return row.toDomain(), nil
}

// ListVisibleTo returns the events viewerID created or holds a live
// invitation to, newest first. all returns every event.
func (r *Repo) ListVisibleTo(ctx context.Context, viewerID uuid.UUID, all bool) ([]domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := visibleTo(viewerID, all).OrderBy("e.created_at DESC", "e.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list visible events: %w", err)
	}

	var rows []eventRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "events", "")
	}
	return toDomainList(rows), nil
}

// ListByCreator returns creatorID's own events, newest first.
func (r *Repo) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := selectEvents().
		Where(squirrel.Eq{"e.creator_id": creatorID}).
		OrderBy("e.created_at DESC", "e.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events by creator: %w", err)
	}

	var rows []eventRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "events", "")
	}
	return toDomainList(rows), nil
}

// ---------------------------------------------------------------------------
// Query builders
// ---------------------------------------------------------------------------

func selectEvents() squirrel.SelectBuilder {
	return builder.Select(eventColumns...).From("events e")
}

func visibleTo(viewerID uuid.UUID, all bool) squirrel.SelectBuilder {
	sb := selectEvents()
	if all {
		return sb
	}
	return sb.Where(squirrel.Or{
		squirrel.Eq{"e.creator_id": viewerID},
		squirrel.Expr(visibleByInvitation, viewerID),
	})
}

func setIfPresent(b squirrel.UpdateBuilder, column string, v *string) squirrel.UpdateBuilder {
	if v == nil {
		return b
	}
	return b.Set(column, *v)
}

func joinColumns() string {
	return strings.Join(eventColumns, ", ")
}
