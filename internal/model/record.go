package model

import (
	"fmt"
	"time"
)

// GameID uniquely identifies a finalized match. IDs are chosen by the
// caller and are unique for the lifetime of the registry.
type GameID string

// Identity is an opaque caller identity (a Stellar account ID in
// production deployments).
type Identity string

// GameRecord is the immutable outcome of a completed match. Once a record
// is committed under a GameID it is never altered or overwritten; the only
// way a record disappears is retention eviction by the storage substrate,
// which is indistinguishable from the record never having existed.
type GameRecord struct {
	// Winner is the identity of the winning participant. An empty
	// Winner means the game was a draw.
	Winner Identity `json:"winner"`
	White  Identity `json:"white"`
	Black  Identity `json:"black"`

	// Timestamp is the match completion time as reported by the caller.
	Timestamp time.Time `json:"timestamp"`

	// RecordedAt is stamped by the registry at commit time.
	RecordedAt time.Time `json:"recorded_at"`
}

// IsDraw reports whether the record represents a drawn game.
func (r *GameRecord) IsDraw() bool {
	return r.Winner == ""
}

// Validate checks the participant identities of a record before commit.
func (r *GameRecord) Validate() error {
	if r.White == "" || r.Black == "" {
		return fmt.Errorf("%w: white and black are required", ErrInvalidRecord)
	}
	if r.White == r.Black {
		return fmt.Errorf("%w: white and black must be distinct", ErrInvalidRecord)
	}
	if !r.IsDraw() && r.Winner != r.White && r.Winner != r.Black {
		return fmt.Errorf("%w: winner must be a participant or empty for a draw", ErrInvalidRecord)
	}
	if r.Timestamp.IsZero() {
		return fmt.Errorf("%w: timestamp is required", ErrInvalidRecord)
	}
	return nil
}
