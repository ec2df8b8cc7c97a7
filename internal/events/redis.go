package events

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/soomtochukwu/XLMate/internal/model"
)

// DefaultStream is the Redis stream commit notifications are appended to.
const DefaultStream = keyPrefix + ":events:" + model.TopicGameFinalized

const keyPrefix = "xlmate"

// Publisher appends commit notifications to a Redis stream. Stream entries
// are durable until trimmed, so indexers that fall behind can catch up
// with XREAD from their last seen ID.
type Publisher struct {
	client *redis.Client
	stream string
}

// NewPublisher creates a Publisher writing to the given stream
func NewPublisher(client *redis.Client, stream string) *Publisher {
	if stream == "" {
		stream = DefaultStream
	}
	return &Publisher{
		client: client,
		stream: stream,
	}
}

// Ensure Publisher implements Sink
var _ Sink = (*Publisher)(nil)

func (p *Publisher) Publish(ctx context.Context, event model.GameFinalized) error {
	err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"game_id":     string(event.GameID),
			"winner":      string(event.Winner),
			"white":       string(event.White),
			"black":       string(event.Black),
			"timestamp":   event.Timestamp.UTC().Format(time.RFC3339),
			"recorded_at": event.RecordedAt.UTC().Format(time.RFC3339),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("publish to %s: %w", p.stream, err)
	}
	return nil
}
