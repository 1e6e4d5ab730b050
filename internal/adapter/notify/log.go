package notify

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/agenda-backend/internal/domain"
)

// LogSink writes notifications to the structured log. It is used when no
// broker is configured.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log.With("sink", "log")}
}

// Deliver logs n. Bodies are included; they never carry ciphertext.
func (s *LogSink) Deliver(ctx context.Context, n domain.Notification) error {
	level := slog.LevelInfo
	switch n.Kind {
	case domain.NotificationSecurityAlert, domain.NotificationAccountLocked:
		level = slog.LevelWarn
	case domain.NotificationIntegrityAlert:
		level = slog.LevelError
	}

	attrs := []slog.Attr{
		slog.String("kind", n.Kind.String()),
		slog.String("recipient", n.Recipient()),
		slog.String("subject", n.Subject),
		slog.String("body", n.Body),
		slog.String("request_id", n.RequestID),
	}
	for k, v := range n.Context {
		attrs = append(attrs, slog.String("ctx."+k, v))
	}

	s.log.LogAttrs(ctx, level, "notification", attrs...)
	return nil
}
