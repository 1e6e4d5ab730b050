package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/agenda-backend/internal/domain"
)

// Envelope is a syntactically valid ciphertext envelope for seeding.
const Envelope = "2.AAAAAAAAAAAAAAAA|Y2lwaGVydGV4dA=="

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user with placeholder key material.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWithRole(t, pool, domain.UserRoleUser)
}

// SeedUserWithRole creates an active user with the given role.
func SeedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:                    uuid.New(),
		Email:                 "user-" + suffix + "@example.com",
		Username:              "user_" + suffix,
		PasswordHash:          "$2a$04$placeholderplaceholderplaceholderplaceholderpla",
		PublicKey:             "pk-" + suffix,
		ProtectedPrivateKey:   Envelope,
		ProtectedSymmetricKey: Envelope,
		Role:                  role,
		IsActive:              true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, public_key, protected_private_key,
		                    protected_symmetric_key, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.PublicKey, user.ProtectedPrivateKey,
		user.ProtectedSymmetricKey, string(user.Role), user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedContacts makes a and b mutual contacts, creating both lists if needed.
func SeedContacts(t *testing.T, pool *pgxpool.Pool, a, b uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	for _, pair := range [][2]uuid.UUID{{a, b}, {b, a}} {
		if _, err := pool.Exec(ctx,
			`INSERT INTO contact_lists (owner_id) VALUES ($1) ON CONFLICT (owner_id) DO NOTHING`, pair[0]); err != nil {
			t.Fatalf("testhelper: SeedContacts list: %v", err)
		}
		if _, err := pool.Exec(ctx,
			`INSERT INTO contact_list_members (owner_id, contact_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			pair[0], pair[1]); err != nil {
			t.Fatalf("testhelper: SeedContacts member: %v", err)
		}
	}
}

// SeedEvent creates an event owned by creatorID with envelope fields.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, creatorID uuid.UUID) domain.Event {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	e := domain.Event{
		ID:                uuid.New(),
		CreatorID:         creatorID,
		ProtectedEventKey: Envelope,
		Title:             Envelope,
		StartDate:         Envelope,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO events (id, creator_id, protected_event_key, title, start_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.CreatorID, e.ProtectedEventKey, e.Title, e.StartDate, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent: %v", err)
	}

	return e
}

// SeedInvitation invites inviteeID to eventID with the given status.
func SeedInvitation(t *testing.T, pool *pgxpool.Pool, eventID, inviteeID uuid.UUID, status domain.InvitationStatus) domain.Invitation {
	t.Helper()
	ctx := context.Background()

	inv := domain.Invitation{
		ID:                uuid.New(),
		EventID:           eventID,
		InvitedUserID:     inviteeID,
		ProtectedEventID:  "2." + uniqueSuffix() + "|AAAA",
		ProtectedEventKey: Envelope,
		Status:            status,
		CreatedAt:         time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO invitations (id, event_id, invited_user_id, protected_event_id, protected_event_key, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		inv.ID, inv.EventID, inv.InvitedUserID, inv.ProtectedEventID, inv.ProtectedEventKey, string(inv.Status), inv.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedInvitation: %v", err)
	}

	return inv
}
