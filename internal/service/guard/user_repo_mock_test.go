package guard

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/agenda-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	SetActiveFunc func(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error)

	calls struct {
		SetActive []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Active bool
		}
	}
	lockSetActive sync.RWMutex
}

func (mock *userRepoMock) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error) {
	if mock.SetActiveFunc == nil {
		panic("userRepoMock.SetActiveFunc: method is nil but userRepo.SetActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Active bool
	}{
		Ctx:    ctx,
		Id:     id,
		Active: active,
	}
	mock.lockSetActive.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, callInfo)
	mock.lockSetActive.Unlock()
	return mock.SetActiveFunc(ctx, id, active)
}

// SetActiveCalls gets all the calls that were made to SetActive.
func (mock *userRepoMock) SetActiveCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Active bool
} {
	var calls []struct {
		Ctx    context.Context
		Id     uuid.UUID
		Active bool
	}
	mock.lockSetActive.RLock()
	calls = mock.calls.SetActive
	mock.lockSetActive.RUnlock()
	return calls
}
