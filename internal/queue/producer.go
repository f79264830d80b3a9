package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// ActivityMessage announces a newly recorded activity to stream consumers.
type ActivityMessage struct {
	ActivityID     int64
	OrganizationID int64
	Action         string
	ToolSlug       *string
	RequestID      *string
}

// Fields renders the message as Redis stream values. IDs are strings so
// JavaScript consumers do not lose precision.
func (m ActivityMessage) Fields() map[string]any {
	fields := map[string]any{
		"activity_id":     strconv.FormatInt(m.ActivityID, 10),
		"organization_id": strconv.FormatInt(m.OrganizationID, 10),
		"action":          m.Action,
	}
	if m.ToolSlug != nil && *m.ToolSlug != "" {
		fields["tool_slug"] = *m.ToolSlug
	}
	if m.RequestID != nil && *m.RequestID != "" {
		fields["request_id"] = *m.RequestID
	}
	return fields
}

type Producer interface {
	Publish(ctx context.Context, msg ActivityMessage) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	maxLen int64
	logger *slog.Logger
}

// NewRedisProducer publishes to stream, trimming it to roughly maxLen entries.
func NewRedisProducer(client *redis.Client, stream string, maxLen int64, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		maxLen: maxLen,
		logger: logger,
	}
}

func (p *redisProducer) Publish(ctx context.Context, msg ActivityMessage) error {
	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: msg.Fields(),
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	id, err := p.client.XAdd(ctx, args).Result()
	if err != nil {
		return fmt.Errorf("publish activity: %w", err)
	}

	p.logger.DebugContext(ctx, "published activity",
		"stream", p.stream,
		"message_id", id,
		"activity_id", msg.ActivityID,
		"action", msg.Action)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
