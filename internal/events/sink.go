// Package events carries commit notifications to external indexers.
package events

import (
	"context"

	"github.com/soomtochukwu/XLMate/internal/model"
)

// Sink receives one notification per successful commit. The registry
// publishes at most once per commit and never on a failure path.
type Sink interface {
	Publish(ctx context.Context, event model.GameFinalized) error
}

// NopSink discards all events
type NopSink struct{}

// Ensure NopSink implements Sink
var _ Sink = NopSink{}

func (NopSink) Publish(ctx context.Context, event model.GameFinalized) error {
	return nil
}
