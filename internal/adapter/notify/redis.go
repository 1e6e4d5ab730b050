package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/agenda-backend/internal/config"
	"github.com/heartmarshall/agenda-backend/internal/domain"
)

// RedisSink publishes each notification on a per-recipient channel and keeps
// a capped inbox list so clients that were offline can catch up.
//
// Keys:
//
//	<prefix>:<recipient>        pub/sub channel
//	<prefix>:inbox:<recipient>  list, newest first, trimmed to InboxSize
type RedisSink struct {
	rdb       redis.UniversalClient
	prefix    string
	inboxSize int64
	inboxTTL  time.Duration
}

// NewRedisSink creates a RedisSink.
func NewRedisSink(rdb redis.UniversalClient, cfg config.RedisConfig) *RedisSink {
	return &RedisSink{
		rdb:       rdb,
		prefix:    cfg.ChannelPrefix,
		inboxSize: cfg.InboxSize,
		inboxTTL:  cfg.InboxTTL,
	}
}

// NewRedisClient opens a client from config and verifies the connection.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

type message struct {
	Kind      string            `json:"kind"`
	Recipient string            `json:"recipient"`
	Subject   string            `json:"subject,omitempty"`
	Body      string            `json:"body,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Context   map[string]string `json:"context,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// ChannelKey returns the pub/sub channel for recipient.
func (s *RedisSink) ChannelKey(recipient string) string {
	return s.prefix + ":" + recipient
}

// InboxKey returns the inbox list key for recipient.
func (s *RedisSink) InboxKey(recipient string) string {
	return s.prefix + ":inbox:" + recipient
}

// Deliver publishes n and appends it to the recipient's inbox in one
// MULTI/EXEC round trip.
func (s *RedisSink) Deliver(ctx context.Context, n domain.Notification) error {
	recipient := n.Recipient()
	data, err := json.Marshal(message{
		Kind:      n.Kind.String(),
		Recipient: recipient,
		Subject:   n.Subject,
		Body:      n.Body,
		RequestID: n.RequestID,
		Context:   n.Context,
		CreatedAt: n.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if s.inboxSize > 0 {
			key := s.InboxKey(recipient)
			pipe.LPush(ctx, key, data)
			pipe.LTrim(ctx, key, 0, s.inboxSize-1)
			if s.inboxTTL > 0 {
				pipe.Expire(ctx, key, s.inboxTTL)
			}
		}
		pipe.Publish(ctx, s.ChannelKey(recipient), data)
		return nil
	})
	if err != nil {
		return fmt.Errorf("deliver %s to %s: %w", n.Kind, recipient, err)
	}
	return nil
}

// Inbox returns up to limit retained notifications for recipient, newest first.
// Malformed entries are skipped.
func (s *RedisSink) Inbox(ctx context.Context, recipient string, limit int64) ([]domain.Notification, error) {
	if limit <= 0 || limit > s.inboxSize {
		limit = s.inboxSize
	}
	if limit <= 0 {
		return []domain.Notification{}, nil
	}

	raw, err := s.rdb.LRange(ctx, s.InboxKey(recipient), 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read inbox: %w", err)
	}

	out := make([]domain.Notification, 0, len(raw))
	for _, item := range raw {
		var m message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			continue
		}
		n := domain.Notification{
			Kind:      domain.NotificationKind(m.Kind),
			Subject:   m.Subject,
			Body:      m.Body,
			RequestID: m.RequestID,
			Context:   m.Context,
			CreatedAt: m.CreatedAt,
		}
		if id, err := uuid.Parse(m.Recipient); err == nil {
			n.RecipientID = id
		} else {
			n.Address = m.Recipient
		}
		out = append(out, n)
	}
	return out, nil
}
