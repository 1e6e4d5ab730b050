package user

import (
	"context"
	"github.com/heartmarshall/agenda-backend/internal/domain"
	"sync"
)

var _ inboxReader = &inboxReaderMock{}

type inboxReaderMock struct {
	InboxFunc func(ctx context.Context, recipient string, limit int64) ([]domain.Notification, error)

	calls struct {
		Inbox []struct {
			Ctx       context.Context
			Recipient string
			Limit     int64
		}
	}
	lockInbox sync.RWMutex
}

func (mock *inboxReaderMock) Inbox(ctx context.Context, recipient string, limit int64) ([]domain.Notification, error) {
	if mock.InboxFunc == nil {
		panic("inboxReaderMock.InboxFunc: method is nil but inboxReader.Inbox was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Recipient string
		Limit     int64
	}{
		Ctx:       ctx,
		Recipient: recipient,
		Limit:     limit,
	}
	mock.lockInbox.Lock()
	mock.calls.Inbox = append(mock.calls.Inbox, callInfo)
	mock.lockInbox.Unlock()
	return mock.InboxFunc(ctx, recipient, limit)
}

// InboxCalls gets all the calls that were made to Inbox.
func (mock *inboxReaderMock) InboxCalls() []struct {
	Ctx       context.Context
	Recipient string
	Limit     int64
} {
	var calls []struct {
		Ctx       context.Context
		Recipient string
		Limit     int64
	}
	mock.lockInbox.RLock()
	calls = mock.calls.Inbox
	mock.lockInbox.RUnlock()
	return calls
}
