package contact

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/agenda-backend/internal/domain"
	"sync"
)

var _ contactRepo = &contactRepoMock{}

type contactRepoMock struct {
	AddMemberFunc          func(ctx context.Context, ownerID uuid.UUID, contactID uuid.UUID) error
	CreateRequestFunc      func(ctx context.Context, senderID uuid.UUID, receiverID uuid.UUID) (*domain.ContactRequest, error)
	EnsureListFunc         func(ctx context.Context, ownerID uuid.UUID) error
	GetListFunc            func(ctx context.Context, ownerID uuid.UUID) (*domain.ContactList, error)
	HasActiveBetweenFunc   func(ctx context.Context, a uuid.UUID, b uuid.UUID) (bool, error)
	IsMemberFunc           func(ctx context.Context, ownerID uuid.UUID, contactID uuid.UUID) (bool, error)
	ListActiveReceivedFunc func(ctx context.Context, receiverID uuid.UUID) ([]domain.ContactRequest, error)
	ListActiveSentFunc     func(ctx context.Context, senderID uuid.UUID) ([]domain.ContactRequest, error)
	ListExistsFunc         func(ctx context.Context, ownerID uuid.UUID) (bool, error)
	ListProfilesFunc       func(ctx context.Context, ownerID uuid.UUID) ([]domain.PublicProfile, error)
	RemoveMemberFunc       func(ctx context.Context, ownerID uuid.UUID, contactID uuid.UUID) (bool, error)
	ResolveActiveFunc      func(ctx context.Context, senderID uuid.UUID, receiverID uuid.UUID, outcome domain.RequestOutcome) (*domain.ContactRequest, error)

	calls struct {
		AddMember []struct {
			Ctx       context.Context
			OwnerID   uuid.UUID
			ContactID uuid.UUID
		}
		CreateRequest []struct {
			Ctx        context.Context
			SenderID   uuid.UUID
			ReceiverID uuid.UUID
		}
		EnsureList []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		GetList []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		HasActiveBetween []struct {
			Ctx context.Context
			A   uuid.UUID
			B   uuid.UUID
		}
		IsMember []struct {
			Ctx       context.Context
			OwnerID   uuid.UUID
			ContactID uuid.UUID
		}
		ListActiveReceived []struct {
			Ctx        context.Context
			ReceiverID uuid.UUID
		}
		ListActiveSent []struct {
			Ctx      context.Context
			SenderID uuid.UUID
		}
		ListExists []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		ListProfiles []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		RemoveMember []struct {
			Ctx       context.Context
			OwnerID   uuid.UUID
			ContactID uuid.UUID
		}
		ResolveActive []struct {
			Ctx        context.Context
			SenderID   uuid.UUID
			ReceiverID uuid.UUID
			Outcome    domain.RequestOutcome
		}
	}
	lockAddMember          sync.RWMutex
	lockCreateRequest      sync.RWMutex
	lockEnsureList         sync.RWMutex
	lockGetList            sync.RWMutex
	lockHasActiveBetween   sync.RWMutex
	lockIsMember           sync.RWMutex
	lockListActiveReceived sync.RWMutex
	lockListActiveSent     sync.RWMutex
	lockListExists         sync.RWMutex
	lockListProfiles       sync.RWMutex
	lockRemoveMember       sync.RWMutex
	lockResolveActive      sync.RWMutex
}

func (mock *contactRepoMock) AddMember(ctx context.Context, ownerID uuid.UUID, contactID uuid.UUID) error {
	if mock.AddMemberFunc == nil {
		panic("contactRepoMock.AddMemberFunc: method is nil but contactRepo.AddMember was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		ContactID uuid.UUID
	}{
		Ctx:       ctx,
		OwnerID:   ownerID,
		ContactID: contactID,
	}
	mock.lockAddMember.Lock()
	mock.calls.AddMember = append(mock.calls.AddMember, callInfo)
	mock.lockAddMember.Unlock()
	return mock.AddMemberFunc(ctx, ownerID, contactID)
}

// AddMemberCalls gets all the calls that were made to AddMember.
func (mock *contactRepoMock) AddMemberCalls() []struct {
	Ctx       context.Context
	OwnerID   uuid.UUID
	ContactID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		ContactID uuid.UUID
	}
	mock.lockAddMember.RLock()
	calls = mock.calls.AddMember
	mock.lockAddMember.RUnlock()
	return calls
}

func (mock *contactRepoMock) CreateRequest(ctx context.Context, senderID uuid.UUID, receiverID uuid.UUID) (*domain.ContactRequest, error) {
	if mock.CreateRequestFunc == nil {
		panic("contactRepoMock.CreateRequestFunc: method is nil but contactRepo.CreateRequest was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		SenderID   uuid.UUID
		ReceiverID uuid.UUID
	}{
		Ctx:        ctx,
		SenderID:   senderID,
		ReceiverID: receiverID,
	}
	mock.lockCreateRequest.Lock()
	mock.calls.CreateRequest = append(mock.calls.CreateRequest, callInfo)
	mock.lockCreateRequest.Unlock()
	return mock.CreateRequestFunc(ctx, senderID, receiverID)
}

// CreateRequestCalls gets all the calls that were made to CreateRequest.
func (mock *contactRepoMock) CreateRequestCalls() []struct {
	Ctx        context.Context
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		SenderID   uuid.UUID
		ReceiverID uuid.UUID
	}
	mock.lockCreateRequest.RLock()
	calls = mock.calls.CreateRequest
	mock.lockCreateRequest.RUnlock()
	return calls
}

func (mock *contactRepoMock) EnsureList(ctx context.Context, ownerID uuid.UUID) error {
	if mock.EnsureListFunc == nil {
		panic("contactRepoMock.EnsureListFunc: method is nil but contactRepo.EnsureList was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
	}
	mock.lockEnsureList.Lock()
	mock.calls.EnsureList = append(mock.calls.EnsureList, callInfo)
	mock.lockEnsureList.Unlock()
	return mock.EnsureListFunc(ctx, ownerID)
}

// EnsureListCalls gets all the calls that were made to EnsureList.
func (mock *contactRepoMock) EnsureListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}
	mock.lockEnsureList.RLock()
	calls = mock.calls.EnsureList
	mock.lockEnsureList.RUnlock()
	return calls
}

// GetList calls GetListFunc.
func (mock *contactRepoMock) GetList(ctx context.Context, ownerID uuid.UUID) (*domain.ContactList, error) {
	if mock.GetListFunc == nil {
		panic("contactRepoMock.GetListFunc: method is nil but contactRepo.GetList was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
	}
	mock.lockGetList.Lock()
	mock.calls.GetList = append(mock.calls.GetList, callInfo)
	mock.lockGetList.Unlock()
	return mock.GetListFunc(ctx, ownerID)
}

// GetListCalls gets all the calls that were made to GetList.
func (mock *contactRepoMock) GetListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}
	mock.lockGetList.RLock()
	calls = mock.calls.GetList
	mock.lockGetList.RUnlock()
	return calls
}

func (mock *contactRepoMock) HasActiveBetween(ctx context.Context, a uuid.UUID, b uuid.UUID) (bool, error) {
	if mock.HasActiveBetweenFunc == nil {
		panic("contactRepoMock.HasActiveBetweenFunc: method is nil but contactRepo.HasActiveBetween was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   uuid.UUID
		B   uuid.UUID
	}{
		Ctx: ctx,
		A:   a,
		B:   b,
	}
	mock.lockHasActiveBetween.Lock()
	mock.calls.HasActiveBetween = append(mock.calls.HasActiveBetween, callInfo)
	mock.lockHasActiveBetween.Unlock()
	return mock.HasActiveBetweenFunc(ctx, a, b)
}

// HasActiveBetweenCalls gets all the calls that were made to HasActiveBetween.
func (mock *contactRepoMock) HasActiveBetweenCalls() []struct {
	Ctx context.Context
	A   uuid.UUID
	B   uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		A   uuid.UUID
		B   uuid.UUID
	}
	mock.lockHasActiveBetween.RLock()
	calls = mock.calls.HasActiveBetween
	mock.lockHasActiveBetween.RUnlock()
	return calls
}

func (mock *contactRepoMock) IsMember(ctx context.Context, ownerID uuid.UUID, contactID uuid.UUID) (bool, error) {
	if mock.IsMemberFunc == nil {
		panic("contactRepoMock.IsMemberFunc: method is nil but contactRepo.IsMember was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		ContactID uuid.UUID
	}{
		Ctx:       ctx,
		OwnerID:   ownerID,
		ContactID: contactID,
	}
	mock.lockIsMember.Lock()
	mock.calls.IsMember = append(mock.calls.IsMember, callInfo)
	mock.lockIsMember.Unlock()
	return mock.IsMemberFunc(ctx, ownerID, contactID)
}

// IsMemberCalls gets all the calls that were made to IsMember.
func (mock *contactRepoMock) IsMemberCalls() []struct {
	Ctx       context.Context
	OwnerID   uuid.UUID
	ContactID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		ContactID uuid.UUID
	}
	mock.lockIsMember.RLock()
	calls = mock.calls.IsMember
	mock.lockIsMember.RUnlock()
	return calls
}

func (mock *contactRepoMock) ListActiveReceived(ctx context.Context, receiverID uuid.UUID) ([]domain.ContactRequest, error) {
	if mock.ListActiveReceivedFunc == nil {
		panic("contactRepoMock.ListActiveReceivedFunc: method is nil but contactRepo.ListActiveReceived was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ReceiverID uuid.UUID
	}{
		Ctx:        ctx,
		ReceiverID: receiverID,
	}
	mock.lockListActiveReceived.Lock()
	mock.calls.ListActiveReceived = append(mock.calls.ListActiveReceived, callInfo)
	mock.lockListActiveReceived.Unlock()
	return mock.ListActiveReceivedFunc(ctx, receiverID)
}

// ListActiveReceivedCalls gets all the calls that were made to ListActiveReceived.
func (mock *contactRepoMock) ListActiveReceivedCalls() []struct {
	Ctx        context.Context
	ReceiverID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		ReceiverID uuid.UUID
	}
	mock.lockListActiveReceived.RLock()
	calls = mock.calls.ListActiveReceived
	mock.lockListActiveReceived.RUnlock()
	return calls
}

func (mock *contactRepoMock) ListActiveSent(ctx context.Context, senderID uuid.UUID) ([]domain.ContactRequest, error) {
	if mock.ListActiveSentFunc == nil {
		panic("contactRepoMock.ListActiveSentFunc: method is nil but contactRepo.ListActiveSent was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SenderID uuid.UUID
	}{
		Ctx:      ctx,
		SenderID: senderID,
	}
	mock.lockListActiveSent.Lock()
	mock.calls.ListActiveSent = append(mock.calls.ListActiveSent, callInfo)
	mock.lockListActiveSent.Unlock()
	return mock.ListActiveSentFunc(ctx, senderID)
}

// ListActiveSentCalls gets all the calls that were made to ListActiveSent.
func (mock *contactRepoMock) ListActiveSentCalls() []struct {
	Ctx      context.Context
	SenderID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		SenderID uuid.UUID
	}
	mock.lockListActiveSent.RLock()
	calls = mock.calls.ListActiveSent
	mock.lockListActiveSent.RUnlock()
	return calls
}

func (mock *contactRepoMock) ListExists(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	if mock.ListExistsFunc == nil {
		panic("contactRepoMock.ListExistsFunc: method is nil but contactRepo.ListExists was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
	}
	mock.lockListExists.Lock()
	mock.calls.ListExists = append(mock.calls.ListExists, callInfo)
	mock.lockListExists.Unlock()
	return mock.ListExistsFunc(ctx, ownerID)
}

// ListExistsCalls gets all the calls that were made to ListExists.
func (mock *contactRepoMock) ListExistsCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}
	mock.lockListExists.RLock()
	calls = mock.calls.ListExists
	mock.lockListExists.RUnlock()
	return calls
}

func (mock *contactRepoMock) ListProfiles(ctx context.Context, ownerID uuid.UUID) ([]domain.PublicProfile, error) {
	if mock.ListProfilesFunc == nil {
		panic("contactRepoMock.ListProfilesFunc: method is nil but contactRepo.ListProfiles was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
	}
	mock.lockListProfiles.Lock()
	mock.calls.ListProfiles = append(mock.calls.ListProfiles, callInfo)
	mock.lockListProfiles.Unlock()
	return mock.ListProfilesFunc(ctx, ownerID)
}

// ListProfilesCalls gets all the calls that were made to ListProfiles.
func (mock *contactRepoMock) ListProfilesCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}
	mock.lockListProfiles.RLock()
	calls = mock.calls.ListProfiles
	mock.lockListProfiles.RUnlock()
	return calls
}

func (mock *contactRepoMock) RemoveMember(ctx context.Context, ownerID uuid.UUID, contactID uuid.UUID) (bool, error) {
	if mock.RemoveMemberFunc == nil {
		panic("contactRepoMock.RemoveMemberFunc: method is nil but contactRepo.RemoveMember was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		ContactID uuid.UUID
	}{
		Ctx:       ctx,
		OwnerID:   ownerID,
		ContactID: contactID,
	}
	mock.lockRemoveMember.Lock()
	mock.calls.RemoveMember = append(mock.calls.RemoveMember, callInfo)
	mock.lockRemoveMember.Unlock()
	return mock.RemoveMemberFunc(ctx, ownerID, contactID)
}

// RemoveMemberCalls gets all the calls that were made to RemoveMember.
func (mock *contactRepoMock) RemoveMemberCalls() []struct {
	Ctx       context.Context
	OwnerID   uuid.UUID
	ContactID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		ContactID uuid.UUID
	}
	mock.lockRemoveMember.RLock()
	calls = mock.calls.RemoveMember
	mock.lockRemoveMember.RUnlock()
	return calls
}

func (mock *contactRepoMock) ResolveActive(ctx context.Context, senderID uuid.UUID, receiverID uuid.UUID, outcome domain.RequestOutcome) (*domain.ContactRequest, error) {
	if mock.ResolveActiveFunc == nil {
		panic("contactRepoMock.ResolveActiveFunc: method is nil but contactRepo.ResolveActive was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		SenderID   uuid.UUID
		ReceiverID uuid.UUID
		Outcome    domain.RequestOutcome
	}{
		Ctx:        ctx,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Outcome:    outcome,
	}
	mock.lockResolveActive.Lock()
	mock.calls.ResolveActive = append(mock.calls.ResolveActive, callInfo)
	mock.lockResolveActive.Unlock()
	return mock.ResolveActiveFunc(ctx, senderID, receiverID, outcome)
}

// ResolveActiveCalls gets all the calls that were made to ResolveActive.
func (mock *contactRepoMock) ResolveActiveCalls() []struct {
	Ctx        context.Context
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Outcome    domain.RequestOutcome
} {
	var calls []struct {
		Ctx        context.Context
		SenderID   uuid.UUID
		ReceiverID uuid.UUID
		Outcome    domain.RequestOutcome
	}
	mock.lockResolveActive.RLock()
	calls = mock.calls.ResolveActive
	mock.lockResolveActive.RUnlock()
	return calls
}
