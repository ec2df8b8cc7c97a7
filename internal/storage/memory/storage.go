package memory

import (
	"context"
	"sync"

	"github.com/soomtochukwu/XLMate/internal/model"
	"github.com/soomtochukwu/XLMate/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Retention windows are not enforced; TouchGame only verifies existence.
type Storage struct {
	mu sync.RWMutex

	roles *model.RoleState
	games map[model.GameID]*model.GameRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games: make(map[model.GameID]*model.GameRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Role state operations

func (s *Storage) InitRoles(ctx context.Context, roles *model.RoleState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.roles != nil {
		return model.ErrAlreadyInitialized
	}
	r := *roles
	s.roles = &r
	return nil
}

func (s *Storage) GetRoles(ctx context.Context) (*model.RoleState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.roles == nil {
		return nil, model.ErrNotInitialized
	}
	r := *s.roles
	return &r, nil
}

func (s *Storage) SaveRoles(ctx context.Context, roles *model.RoleState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := *roles
	s.roles = &r
	return nil
}

// Game record operations

func (s *Storage) CreateGame(ctx context.Context, id model.GameID, record *model.GameRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; ok {
		return model.ErrDuplicateGame
	}
	rec := *record
	s.games[id] = &rec
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	rec := *record
	return &rec, nil
}

func (s *Storage) TouchGame(ctx context.Context, id model.GameID) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.games[id]; !ok {
		return model.ErrGameNotFound
	}
	return nil
}
