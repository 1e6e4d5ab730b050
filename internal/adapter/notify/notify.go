// Package notify delivers domain notifications after the owning transaction
// has committed. Delivery is best effort: failures are logged and never
// propagate to the operation that produced the notification.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/pkg/ctxutil"
)

// Sink is a delivery backend.
type Sink interface {
	Deliver(ctx context.Context, n domain.Notification) error
}

// InboxReader is implemented by sinks that retain recent notifications.
type InboxReader interface {
	Inbox(ctx context.Context, recipient string, limit int64) ([]domain.Notification, error)
}

// Dispatcher stamps notifications with request metadata and hands them to a Sink.
type Dispatcher struct {
	sink    Sink
	timeout time.Duration
	log     *slog.Logger
}

// NewDispatcher creates a Dispatcher. A non-positive timeout disables the deadline.
func NewDispatcher(sink Sink, timeout time.Duration, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		sink:    sink,
		timeout: timeout,
		log:     log.With("component", "notify"),
	}
}

// Notify delivers n. The caller's cancellation is detached so a client
// disconnecting after commit does not drop the notification.
func (d *Dispatcher) Notify(ctx context.Context, n domain.Notification) {
	if n.RequestID == "" {
		n.RequestID = ctxutil.RequestIDFromCtx(ctx)
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	dctx := context.WithoutCancel(ctx)
	if d.timeout > 0 {
		var cancel context.CancelFunc
		dctx, cancel = context.WithTimeout(dctx, d.timeout)
		defer cancel()
	}

	if err := d.sink.Deliver(dctx, n); err != nil {
		d.log.ErrorContext(ctx, "notification delivery failed",
			slog.String("kind", n.Kind.String()),
			slog.String("recipient", n.Recipient()),
			slog.String("request_id", n.RequestID),
			slog.String("error", err.Error()),
		)
		return
	}

	d.log.DebugContext(ctx, "notification delivered",
		slog.String("kind", n.Kind.String()),
		slog.String("recipient", n.Recipient()),
	)
}

// Inbox returns the recent notifications kept for recipient, newest first.
// Sinks without retention return an empty slice.
func (d *Dispatcher) Inbox(ctx context.Context, recipient string, limit int64) ([]domain.Notification, error) {
	r, ok := d.sink.(InboxReader)
	if !ok {
		return []domain.Notification{}, nil
	}
	return r.Inbox(ctx, recipient, limit)
}
