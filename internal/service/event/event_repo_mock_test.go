package event

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/agenda-backend/internal/domain"
	"sync"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CreateFunc        func(ctx context.Context, e *domain.Event) (*domain.Event, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	GetVisibleFunc    func(ctx context.Context, id uuid.UUID, viewerID uuid.UUID, all bool) (*domain.Event, error)
	ListByCreatorFunc func(ctx context.Context, creatorID uuid.UUID) ([]domain.Event, error)
	ListVisibleToFunc func(ctx context.Context, viewerID uuid.UUID, all bool) ([]domain.Event, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.Event
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetVisible []struct {
			Ctx      context.Context
			Id       uuid.UUID
			ViewerID uuid.UUID
			All      bool
		}
		ListByCreator []struct {
			Ctx       context.Context
			CreatorID uuid.UUID
		}
		ListVisibleTo []struct {
			Ctx      context.Context
			ViewerID uuid.UUID
			All      bool
		}
		Update []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Params domain.EventUpdateParams
		}
	}
	lockCreate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockGetVisible    sync.RWMutex
	lockListByCreator sync.RWMutex
	lockListVisibleTo sync.RWMutex
	lockUpdate        sync.RWMutex
}

func (mock *eventRepoMock) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Event
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *eventRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.Event
} {
	var calls []struct {
		Ctx context.Context
		E   *domain.Event
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *eventRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("eventRepoMock.DeleteFunc: method is nil but eventRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

// DeleteCalls gets all the calls that were made to Delete.
func (mock *eventRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
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

func (mock *eventRepoMock) GetVisible(ctx context.Context, id uuid.UUID, viewerID uuid.UUID, all bool) (*domain.Event, error) {
	if mock.GetVisibleFunc == nil {
		panic("eventRepoMock.GetVisibleFunc: method is nil but eventRepo.GetVisible was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		ViewerID uuid.UUID
		All      bool
	}{
		Ctx:      ctx,
		Id:       id,
		ViewerID: viewerID,
		All:      all,
	}
	mock.lockGetVisible.Lock()
	mock.calls.GetVisible = append(mock.calls.GetVisible, callInfo)
	mock.lockGetVisible.Unlock()
	return mock.GetVisibleFunc(ctx, id, viewerID, all)
}

// GetVisibleCalls gets all the calls that were made to GetVisible.
func (mock *eventRepoMock) GetVisibleCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	ViewerID uuid.UUID
	All      bool
} {
	var calls []struct {
		Ctx      context.Context
		Id       uuid.UUID
		ViewerID uuid.UUID
		All      bool
	}
	mock.lockGetVisible.RLock()
	calls = mock.calls.GetVisible
	mock.lockGetVisible.RUnlock()
	return calls
}

func (mock *eventRepoMock) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Event, error) {
	if mock.ListByCreatorFunc == nil {
		panic("eventRepoMock.ListByCreatorFunc: method is nil but eventRepo.ListByCreator was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CreatorID uuid.UUID
	}{
		Ctx:       ctx,
		CreatorID: creatorID,
	}
	mock.lockListByCreator.Lock()
	mock.calls.ListByCreator = append(mock.calls.ListByCreator, callInfo)
	mock.lockListByCreator.Unlock()
	return mock.ListByCreatorFunc(ctx, creatorID)
}

// ListByCreatorCalls gets all the calls that were made to ListByCreator.
func (mock *eventRepoMock) ListByCreatorCalls() []struct {
	Ctx       context.Context
	CreatorID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		CreatorID uuid.UUID
	}
	mock.lockListByCreator.RLock()
	calls = mock.calls.ListByCreator
	mock.lockListByCreator.RUnlock()
	return calls
}

func (mock *eventRepoMock) ListVisibleTo(ctx context.Context, viewerID uuid.UUID, all bool) ([]domain.Event, error) {
	if mock.ListVisibleToFunc == nil {
		panic("eventRepoMock.ListVisibleToFunc: method is nil but eventRepo.ListVisibleTo was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ViewerID uuid.UUID
		All      bool
	}{
		Ctx:      ctx,
		ViewerID: viewerID,
		All:      all,
	}
	mock.lockListVisibleTo.Lock()
	mock.calls.ListVisibleTo = append(mock.calls.ListVisibleTo, callInfo)
	mock.lockListVisibleTo.Unlock()
	return mock.ListVisibleToFunc(ctx, viewerID, all)
}

// ListVisibleToCalls gets all the calls that were made to ListVisibleTo.
func (mock *eventRepoMock) ListVisibleToCalls() []struct {
	Ctx      context.Context
	ViewerID uuid.UUID
	All      bool
} {
	var calls []struct {
		Ctx      context.Context
		ViewerID uuid.UUID
		All      bool
	}
	mock.lockListVisibleTo.RLock()
	calls = mock.calls.ListVisibleTo
	mock.lockListVisibleTo.RUnlock()
	return calls
}

func (mock *eventRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error) {
	if mock.UpdateFunc == nil {
		panic("eventRepoMock.UpdateFunc: method is nil but eventRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Params domain.EventUpdateParams
	}{
		Ctx:    ctx,
		Id:     id,
		Params: params,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

// UpdateCalls gets all the calls that were made to Update.
func (mock *eventRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Params domain.EventUpdateParams
} {
	var calls []struct {
		Ctx    context.Context
		Id     uuid.UUID
		Params domain.EventUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
