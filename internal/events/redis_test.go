package events

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soomtochukwu/XLMate/internal/model"
)

func newTestPublisher(t *testing.T) (*Publisher, *redis.Client) {
	t.Helper()

	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewPublisher(client, ""), client
}

func TestPublishAppendsStructuredEntry(t *testing.T) {
	pub, client := newTestPublisher(t)
	ctx := context.Background()

	event := model.GameFinalized{
		GameID:     "g1",
		Winner:     "GALICE",
		White:      "GALICE",
		Black:      "GBOB",
		Timestamp:  time.Date(2025, 2, 28, 20, 30, 0, 0, time.UTC),
		RecordedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, pub.Publish(ctx, event))

	msgs, err := client.XRange(ctx, DefaultStream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	values := msgs[0].Values
	assert.Equal(t, "g1", values["game_id"])
	assert.Equal(t, "GALICE", values["winner"])
	assert.Equal(t, "GALICE", values["white"])
	assert.Equal(t, "GBOB", values["black"])
	assert.Equal(t, "2025-02-28T20:30:00Z", values["timestamp"])
	assert.Equal(t, "2025-03-01T12:00:00Z", values["recorded_at"])
}

func TestPublishDrawUsesEmptyWinner(t *testing.T) {
	pub, client := newTestPublisher(t)
	ctx := context.Background()

	event := model.GameFinalized{
		GameID:     "g2",
		White:      "GALICE",
		Black:      "GBOB",
		Timestamp:  time.Date(2025, 2, 28, 20, 30, 0, 0, time.UTC),
		RecordedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, pub.Publish(ctx, event))

	msgs, err := client.XRange(ctx, DefaultStream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "", msgs[0].Values["winner"])
}

func TestPublishPreservesOrder(t *testing.T) {
	pub, client := newTestPublisher(t)
	ctx := context.Background()

	for _, id := range []model.GameID{"g1", "g2", "g3"} {
		event := model.GameFinalized{
			GameID:     id,
			Winner:     "GALICE",
			White:      "GALICE",
			Black:      "GBOB",
			Timestamp:  time.Now().UTC(),
			RecordedAt: time.Now().UTC(),
		}
		require.NoError(t, pub.Publish(ctx, event))
	}

	msgs, err := client.XRange(ctx, DefaultStream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "g1", msgs[0].Values["game_id"])
	assert.Equal(t, "g2", msgs[1].Values["game_id"])
	assert.Equal(t, "g3", msgs[2].Values["game_id"])
}
