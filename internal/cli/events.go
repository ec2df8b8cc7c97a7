package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/soomtochukwu/XLMate/internal/events"
)

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Consume the commit event stream",
	}

	cmd.AddCommand(newEventsTailCmd())

	return cmd
}

// newEventsTailCmd follows the game_finalized stream the way an indexer
// would: XREAD from a cursor, print each entry, repeat. It connects to
// Redis directly rather than going through the HTTP API.
func newEventsTailCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Tail commit events from the Redis stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := redis.ParseURL(cfg.RedisURL)
			if err != nil {
				return fmt.Errorf("invalid redis URL: %w", err)
			}

			client := redis.NewClient(opts)
			defer func() { _ = client.Close() }()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			cursor := from
			for {
				streams, err := client.XRead(ctx, &redis.XReadArgs{
					Streams: []string{events.DefaultStream, cursor},
					Block:   5 * time.Second,
				}).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						return nil
					}
					if errors.Is(err, redis.Nil) {
						continue // block timed out, poll again
					}
					return err
				}

				for _, stream := range streams {
					for _, msg := range stream.Messages {
						printStreamEntry(msg)
						cursor = msg.ID
					}
				}
			}
		},
	}

	cmd.Flags().StringVar(&from, "from", "$", "Stream ID to start from ($ = only new events, 0 = full history)")
	cmd.Flags().StringVar(&cfg.RedisURL, "redis", cfg.RedisURL, "Redis URL (env: REGCTL_REDIS_URL)")

	return cmd
}

func printStreamEntry(msg redis.XMessage) {
	winner, _ := msg.Values["winner"].(string)
	if winner == "" {
		winner = "(draw)"
	}
	fmt.Printf("%s  game=%v winner=%s white=%v black=%v timestamp=%v\n",
		msg.ID,
		msg.Values["game_id"],
		winner,
		msg.Values["white"],
		msg.Values["black"],
		msg.Values["timestamp"],
	)
}
