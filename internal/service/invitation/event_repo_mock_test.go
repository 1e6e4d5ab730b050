package invitation

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/agenda-backend/internal/domain"
	"sync"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	SetParticipantsFunc func(ctx context.Context, id uuid.UUID, participants string) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		SetParticipants []struct {
			Ctx          context.Context
			Id           uuid.UUID
			Participants string
		}
	}
	lockGetByID         sync.RWMutex
	lockSetParticipants sync.RWMutex
}

func (mock *eventRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if mock.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc: method is nil but eventRepo.GetByID was just called")
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
func (mock *eventRepoMock) GetByIDCalls() []struct {
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

func (mock *eventRepoMock) SetParticipants(ctx context.Context, id uuid.UUID, participants string) error {
	if mock.SetParticipantsFunc == nil {
		panic("eventRepoMock.SetParticipantsFunc: method is nil but eventRepo.SetParticipants was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		Id           uuid.UUID
		Participants string
	}{
		Ctx:          ctx,
		Id:           id,
		Participants: participants,
	}
	mock.lockSetParticipants.Lock()
	mock.calls.SetParticipants = append(mock.calls.SetParticipants, callInfo)
	mock.lockSetParticipants.Unlock()
	return mock.SetParticipantsFunc(ctx, id, participants)
}

// SetParticipantsCalls gets all the calls that were made to SetParticipants.
func (mock *eventRepoMock) SetParticipantsCalls() []struct {
	Ctx          context.Context
	Id           uuid.UUID
	Participants string
} {
	var calls []struct {
		Ctx          context.Context
		Id           uuid.UUID
		Participants string
	}
	mock.lockSetParticipants.RLock()
	calls = mock.calls.SetParticipants
	mock.lockSetParticipants.RUnlock()
	return calls
}
