package storage

import (
	"context"

	"github.com/soomtochukwu/XLMate/internal/model"
)

// Storage defines the interface for registry persistence. Two logical
// regions exist: the singleton role record and the keyed collection of
// immutable game records.
type Storage interface {
	// Role state operations

	// InitRoles creates the role record. It fails with
	// model.ErrAlreadyInitialized if the record already exists.
	InitRoles(ctx context.Context, roles *model.RoleState) error

	// GetRoles returns the role record, or model.ErrNotInitialized if it
	// has never been created.
	GetRoles(ctx context.Context) (*model.RoleState, error)

	// SaveRoles overwrites the existing role record.
	SaveRoles(ctx context.Context, roles *model.RoleState) error

	// Game record operations

	// CreateGame stores a record under id and starts its retention
	// window. It fails with model.ErrDuplicateGame if a record already
	// exists under id; the stored record is never overwritten.
	CreateGame(ctx context.Context, id model.GameID, record *model.GameRecord) error

	// GetGame returns the record stored under id, or
	// model.ErrGameNotFound. Reads do not refresh the retention window.
	GetGame(ctx context.Context, id model.GameID) (*model.GameRecord, error)

	// TouchGame resets the retention window of an existing record
	// without changing its content. It fails with model.ErrGameNotFound
	// if no record exists under id.
	TouchGame(ctx context.Context, id model.GameID) error
}
