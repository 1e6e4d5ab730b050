package contact

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agenda-backend/internal/domain"
)

// memGraph backs the generated mocks with an in-memory contact graph so
// tests can assert on graph state instead of call sequences.
type memGraph struct {
	mu       sync.Mutex
	users    map[string]*domain.User
	lists    map[uuid.UUID]map[uuid.UUID]bool
	requests []*domain.ContactRequest
}

func newMemGraph(users ...*domain.User) *memGraph {
	g := &memGraph{
		users: make(map[string]*domain.User),
		lists: make(map[uuid.UUID]map[uuid.UUID]bool),
	}
	for _, u := range users {
		g.users[u.Username] = u
	}
	return g
}

func (g *memGraph) usernameOf(id uuid.UUID) string {
	for _, u := range g.users {
		if u.ID == id {
			return u.Username
		}
	}
	return ""
}

func (g *memGraph) activeCount(sender, receiver uuid.UUID) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, r := range g.requests {
		if r.IsActive && r.SenderID == sender && r.ReceiverID == receiver {
			n++
		}
	}
	return n
}

func (g *memGraph) has(owner, other uuid.UUID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lists[owner][other]
}

func (g *memGraph) userRepo() *userRepoMock {
	return &userRepoMock{
		GetByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			g.mu.Lock()
			defer g.mu.Unlock()
			if u, ok := g.users[username]; ok {
				return u, nil
			}
			return nil, domain.ErrNotFound
		},
	}
}

// txMock snapshots the graph and restores it when fn fails.
func (g *memGraph) txMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			g.mu.Lock()
			lists := make(map[uuid.UUID]map[uuid.UUID]bool, len(g.lists))
			for k, v := range g.lists {
				lists[k] = maps.Clone(v)
			}
			reqs := make([]*domain.ContactRequest, len(g.requests))
			for i, r := range g.requests {
				cp := *r
				reqs[i] = &cp
			}
			g.mu.Unlock()

			err := fn(ctx)
			if err != nil {
				g.mu.Lock()
				g.lists, g.requests = lists, reqs
				g.mu.Unlock()
			}
			return err
		},
	}
}

func (g *memGraph) contactRepo() *contactRepoMock {
	return &contactRepoMock{
		EnsureListFunc: func(ctx context.Context, ownerID uuid.UUID) error {
			g.mu.Lock()
			defer g.mu.Unlock()
			if g.lists[ownerID] == nil {
				g.lists[ownerID] = make(map[uuid.UUID]bool)
			}
			return nil
		},
		ListExistsFunc: func(ctx context.Context, ownerID uuid.UUID) (bool, error) {
			g.mu.Lock()
			defer g.mu.Unlock()
			_, ok := g.lists[ownerID]
			return ok, nil
		},
		AddMemberFunc: func(ctx context.Context, ownerID, contactID uuid.UUID) error {
			g.mu.Lock()
			defer g.mu.Unlock()
			l, ok := g.lists[ownerID]
			if !ok {
				return domain.ErrNotFound
			}
			l[contactID] = true
			return nil
		},
		RemoveMemberFunc: func(ctx context.Context, ownerID, contactID uuid.UUID) (bool, error) {
			g.mu.Lock()
			defer g.mu.Unlock()
			if !g.lists[ownerID][contactID] {
				return false, nil
			}
			delete(g.lists[ownerID], contactID)
			return true, nil
		},
		GetListFunc: func(ctx context.Context, ownerID uuid.UUID) (*domain.ContactList, error) {
			g.mu.Lock()
			defer g.mu.Unlock()
			list := &domain.ContactList{OwnerID: ownerID, Contacts: []uuid.UUID{}}
			for id, ok := range g.lists[ownerID] {
				if ok {
					list.Contacts = append(list.Contacts, id)
				}
			}
			return list, nil
		},
		IsMemberFunc: func(ctx context.Context, ownerID, contactID uuid.UUID) (bool, error) {
			g.mu.Lock()
			defer g.mu.Unlock()
			return g.lists[ownerID][contactID], nil
		},
		ListProfilesFunc: func(ctx context.Context, ownerID uuid.UUID) ([]domain.PublicProfile, error) {
			g.mu.Lock()
			defer g.mu.Unlock()
			var out []domain.PublicProfile
			for _, u := range g.users {
				if g.lists[ownerID][u.ID] {
					out = append(out, u.PublicProfile())
				}
			}
			return out, nil
		},
		CreateRequestFunc: func(ctx context.Context, senderID, receiverID uuid.UUID) (*domain.ContactRequest, error) {
			g.mu.Lock()
			defer g.mu.Unlock()
			// Mirrors the unordered-pair unique index.
			for _, r := range g.requests {
				if r.IsActive && ((r.SenderID == senderID && r.ReceiverID == receiverID) ||
					(r.SenderID == receiverID && r.ReceiverID == senderID)) {
					return nil, domain.ErrAlreadyExists
				}
			}
			r := &domain.ContactRequest{
				ID:               uuid.New(),
				SenderID:         senderID,
				SenderUsername:   g.usernameOf(senderID),
				ReceiverID:       receiverID,
				ReceiverUsername: g.usernameOf(receiverID),
				IsActive:         true,
				Outcome:          domain.RequestOutcomePending,
				CreatedAt:        time.Now(),
			}
			g.requests = append(g.requests, r)
			cp := *r
			return &cp, nil
		},
		HasActiveBetweenFunc: func(ctx context.Context, a, b uuid.UUID) (bool, error) {
			g.mu.Lock()
			defer g.mu.Unlock()
			for _, r := range g.requests {
				if r.IsActive && ((r.SenderID == a && r.ReceiverID == b) || (r.SenderID == b && r.ReceiverID == a)) {
					return true, nil
				}
			}
			return false, nil
		},
		ResolveActiveFunc: func(ctx context.Context, senderID, receiverID uuid.UUID, outcome domain.RequestOutcome) (*domain.ContactRequest, error) {
			g.mu.Lock()
			defer g.mu.Unlock()
			for _, r := range g.requests {
				if r.IsActive && r.SenderID == senderID && r.ReceiverID == receiverID {
					now := time.Now()
					r.IsActive, r.Outcome, r.ResolvedAt = false, outcome, &now
					cp := *r
					return &cp, nil
				}
			}
			return nil, domain.ErrNotFound
		},
		ListActiveReceivedFunc: func(ctx context.Context, receiverID uuid.UUID) ([]domain.ContactRequest, error) {
			g.mu.Lock()
			defer g.mu.Unlock()
			var out []domain.ContactRequest
			for _, r := range g.requests {
				if r.IsActive && r.ReceiverID == receiverID {
					out = append(out, *r)
				}
			}
			return out, nil
		},
		ListActiveSentFunc: func(ctx context.Context, senderID uuid.UUID) ([]domain.ContactRequest, error) {
			g.mu.Lock()
			defer g.mu.Unlock()
			var out []domain.ContactRequest
			for _, r := range g.requests {
				if r.IsActive && r.SenderID == senderID {
					out = append(out, *r)
				}
			}
			return out, nil
		},
	}
}
