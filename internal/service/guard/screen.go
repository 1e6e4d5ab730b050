package guard

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/internal/envelope"
)

// Screen checks every field against the envelope grammar. If any field is
// rejected the actor is locked, the administrator and the actor are
// notified, and a *domain.ValidationError naming the offending fields is
// returned. Field values never leave this function.
//
// Screen must run before the caller writes anything.
func (s *Service) Screen(ctx context.Context, actorID uuid.UUID, operation string, fields ...envelope.Field) error {
	violations := envelope.Violations(fields...)
	if len(violations) == 0 {
		return nil
	}

	verr := domain.NewValidationErrors(violations)
	names := strings.Join(verr.Fields(), ",")

	s.log.WarnContext(ctx, "non-envelope payload rejected",
		slog.String("user_id", actorID.String()),
		slog.String("operation", operation),
		slog.String("fields", names),
	)

	// The request fails with the validation error whether or not the lock
	// itself succeeded.
	if _, err := s.Lock(ctx, actorID); err != nil {
		s.log.ErrorContext(ctx, "lock after rejected payload failed",
			slog.String("user_id", actorID.String()),
			slog.String("error", err.Error()),
		)
		return verr
	}

	s.notifier.Notify(ctx, domain.Notification{
		Kind:    domain.NotificationSecurityAlert,
		Address: s.adminAddress,
		Subject: "Account locked after non-envelope payload",
		Body:    "User " + actorID.String() + " submitted unencrypted data to " + operation + " (fields: " + names + ").",
		Context: map[string]string{
			"user_id":   actorID.String(),
			"operation": operation,
			"fields":    names,
		},
	})
	s.notifier.Notify(ctx, domain.Notification{
		Kind:        domain.NotificationAccountLocked,
		RecipientID: actorID,
		Subject:     "Your account has been locked",
		Body:        "We received data that was not encrypted. Your account is locked until an administrator reviews it.",
		Context: map[string]string{
			"operation": operation,
		},
	})

	return verr
}
