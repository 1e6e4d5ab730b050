package invitation

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/agenda-backend/internal/domain"
	"sync"
)

var _ invitationRepo = &invitationRepoMock{}

type invitationRepoMock struct {
	CreateFunc        func(ctx context.Context, inv *domain.Invitation) (*domain.Invitation, error)
	ExistsFunc        func(ctx context.Context, protectedEventID string, eventID uuid.UUID, inviteeID uuid.UUID) (bool, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Invitation, error)
	ListByEventFunc   func(ctx context.Context, eventID uuid.UUID) ([]domain.Invitation, error)
	ListByInviteeFunc func(ctx context.Context, inviteeID uuid.UUID) ([]domain.Invitation, error)
	RespondFunc       func(ctx context.Context, id uuid.UUID, inviteeID uuid.UUID, status domain.InvitationStatus) (*domain.Invitation, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Inv *domain.Invitation
		}
		Exists []struct {
			Ctx              context.Context
			ProtectedEventID string
			EventID          uuid.UUID
			InviteeID        uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListByEvent []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
		ListByInvitee []struct {
			Ctx       context.Context
			InviteeID uuid.UUID
		}
		Respond []struct {
			Ctx       context.Context
			Id        uuid.UUID
			InviteeID uuid.UUID
			Status    domain.InvitationStatus
		}
	}
	lockCreate        sync.RWMutex
	lockExists        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockListByEvent   sync.RWMutex
	lockListByInvitee sync.RWMutex
	lockRespond       sync.RWMutex
}

func (mock *invitationRepoMock) Create(ctx context.Context, inv *domain.Invitation) (*domain.Invitation, error) {
	if mock.CreateFunc == nil {
		panic("invitationRepoMock.CreateFunc: method is nil but invitationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Inv *domain.Invitation
	}{
		Ctx: ctx,
		Inv: inv,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, inv)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *invitationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Inv *domain.Invitation
} {
	var calls []struct {
		Ctx context.Context
		Inv *domain.Invitation
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *invitationRepoMock) Exists(ctx context.Context, protectedEventID string, eventID uuid.UUID, inviteeID uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("invitationRepoMock.ExistsFunc: method is nil but invitationRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx              context.Context
		ProtectedEventID string
		EventID          uuid.UUID
		InviteeID        uuid.UUID
	}{
		Ctx:              ctx,
		ProtectedEventID: protectedEventID,
		EventID:          eventID,
		InviteeID:        inviteeID,
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, protectedEventID, eventID, inviteeID)
}

// ExistsCalls gets all the calls that were made to Exists.
func (mock *invitationRepoMock) ExistsCalls() []struct {
	Ctx              context.Context
	ProtectedEventID string
	EventID          uuid.UUID
	InviteeID        uuid.UUID
} {
	var calls []struct {
		Ctx              context.Context
		ProtectedEventID string
		EventID          uuid.UUID
		InviteeID        uuid.UUID
	}
	mock.lockExists.RLock()
	calls = mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *invitationRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invitation, error) {
	if mock.GetByIDFunc == nil {
		panic("invitationRepoMock.GetByIDFunc: method is nil but invitationRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

// GetByIDCalls gets all the calls that were made to GetByID.
func (mock *invitationRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *invitationRepoMock) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Invitation, error) {
	if mock.ListByEventFunc == nil {
		panic("invitationRepoMock.ListByEventFunc: method is nil but invitationRepo.ListByEvent was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
	}{
		Ctx:     ctx,
		EventID: eventID,
	}
	mock.lockListByEvent.Lock()
	mock.calls.ListByEvent = append(mock.calls.ListByEvent, callInfo)
	mock.lockListByEvent.Unlock()
	return mock.ListByEventFunc(ctx, eventID)
}

// ListByEventCalls gets all the calls that were made to ListByEvent.
func (mock *invitationRepoMock) ListByEventCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		EventID uuid.UUID
	}
	mock.lockListByEvent.RLock()
	calls = mock.calls.ListByEvent
	mock.lockListByEvent.RUnlock()
	return calls
}

func (mock *invitationRepoMock) ListByInvitee(ctx context.Context, inviteeID uuid.UUID) ([]domain.Invitation, error) {
	if mock.ListByInviteeFunc == nil {
		panic("invitationRepoMock.ListByInviteeFunc: method is nil but invitationRepo.ListByInvitee was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		InviteeID uuid.UUID
	}{
		Ctx:       ctx,
		InviteeID: inviteeID,
	}
	mock.lockListByInvitee.Lock()
	mock.calls.ListByInvitee = append(mock.calls.ListByInvitee, callInfo)
	mock.lockListByInvitee.Unlock()
	return mock.ListByInviteeFunc(ctx, inviteeID)
}

// ListByInviteeCalls gets all the calls that were made to ListByInvitee.
func (mock *invitationRepoMock) ListByInviteeCalls() []struct {
	Ctx       context.Context
	InviteeID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		InviteeID uuid.UUID
	}
	mock.lockListByInvitee.RLock()
	calls = mock.calls.ListByInvitee
	mock.lockListByInvitee.RUnlock()
	return calls
}

func (mock *invitationRepoMock) Respond(ctx context.Context, id uuid.UUID, inviteeID uuid.UUID, status domain.InvitationStatus) (*domain.Invitation, error) {
	if mock.RespondFunc == nil {
		panic("invitationRepoMock.RespondFunc: method is nil but invitationRepo.Respond was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Id        uuid.UUID
		InviteeID uuid.UUID
		Status    domain.InvitationStatus
	}{
		Ctx:       ctx,
		Id:        id,
		InviteeID: inviteeID,
		Status:    status,
	}
	mock.lockRespond.Lock()
	mock.calls.Respond = append(mock.calls.Respond, callInfo)
	mock.lockRespond.Unlock()
	return mock.RespondFunc(ctx, id, inviteeID, status)
}

// RespondCalls gets all the calls that were made to Respond.
func (mock *invitationRepoMock) RespondCalls() []struct {
	Ctx       context.Context
	Id        uuid.UUID
	InviteeID uuid.UUID
	Status    domain.InvitationStatus
} {
	var calls []struct {
		Ctx       context.Context
		Id        uuid.UUID
		InviteeID uuid.UUID
		Status    domain.InvitationStatus
	}
	mock.lockRespond.RLock()
	calls = mock.calls.Respond
	mock.lockRespond.RUnlock()
	return calls
}
