package events

import (
	"context"
	"sync"

	"github.com/soomtochukwu/XLMate/internal/model"
)

// Recorder is an in-memory sink that captures published events so tests
// can assert exactly which notifications fired for which calls.
type Recorder struct {
	mu     sync.Mutex
	events []model.GameFinalized
}

// NewRecorder creates a new Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Ensure Recorder implements Sink
var _ Sink = (*Recorder)(nil)

func (r *Recorder) Publish(ctx context.Context, event model.GameFinalized) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// Events returns a copy of all captured events in publish order
func (r *Recorder) Events() []model.GameFinalized {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.GameFinalized, len(r.events))
	copy(out, r.events)
	return out
}

// Reset discards all captured events
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
