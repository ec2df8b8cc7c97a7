// Package registry implements the game registry: an append-only,
// authorization-gated store of final match outcomes.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/soomtochukwu/XLMate/internal/dependencies/clock"
	"github.com/soomtochukwu/XLMate/internal/events"
	"github.com/soomtochukwu/XLMate/internal/model"
	"github.com/soomtochukwu/XLMate/internal/storage"
)

// Service owns the role state and the game record collection. All
// mutating operations run under one mutex, so each operation observes and
// mutates state as a single atomic unit; reads need no coordination
// because committed records are immutable.
type Service struct {
	storage storage.Storage
	sink    events.Sink
	clock   clock.Clock
	logger  *slog.Logger

	mu sync.Mutex
}

// New creates a new registry service
func New(storage storage.Storage, sink events.Sink, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		sink:    sink,
		clock:   clock,
		logger:  logger,
	}
}

// Initialize sets both role slots exactly once. It is deliberately not
// idempotent: any call after a successful one fails with
// model.ErrAlreadyInitialized, even from the admin itself, so the roles
// cannot be hijacked after legitimate setup. Whoever calls first wins;
// deployment tooling must initialize in the same step that brings the
// registry up.
func (s *Service) Initialize(ctx context.Context, admin, server model.Identity) error {
	if admin == "" || server == "" {
		return fmt.Errorf("%w: admin and server identities are required", model.ErrInvalidRecord)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	roles := &model.RoleState{Admin: admin, Server: server}
	if err := s.storage.InitRoles(ctx, roles); err != nil {
		return err
	}

	s.logger.Info("registry initialized",
		slog.String("admin", string(admin)),
		slog.String("server", string(server)),
	)
	return nil
}

// SetServer replaces the server slot. Only the current admin may call it.
func (s *Service) SetServer(ctx context.Context, caller, newServer model.Identity) error {
	if newServer == "" {
		return fmt.Errorf("%w: server identity is required", model.ErrInvalidRecord)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	roles, err := s.storage.GetRoles(ctx)
	if err != nil {
		return err
	}
	if !Authorized(caller, roles.Admin) {
		return model.ErrUnauthorized
	}

	roles.Server = newServer
	if err := s.storage.SaveRoles(ctx, roles); err != nil {
		return err
	}

	s.logger.Info("server role reassigned", slog.String("server", string(newServer)))
	return nil
}

// SetAdmin replaces the admin slot. Only the current admin may call it;
// after it succeeds the previous admin immediately loses governance.
func (s *Service) SetAdmin(ctx context.Context, caller, newAdmin model.Identity) error {
	if newAdmin == "" {
		return fmt.Errorf("%w: admin identity is required", model.ErrInvalidRecord)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	roles, err := s.storage.GetRoles(ctx)
	if err != nil {
		return err
	}
	if !Authorized(caller, roles.Admin) {
		return model.ErrUnauthorized
	}

	roles.Admin = newAdmin
	if err := s.storage.SaveRoles(ctx, roles); err != nil {
		return err
	}

	s.logger.Info("admin role reassigned", slog.String("admin", string(newAdmin)))
	return nil
}

// Roles returns the current role slots
func (s *Service) Roles(ctx context.Context) (*model.RoleState, error) {
	return s.storage.GetRoles(ctx)
}

// RecordGame commits the final outcome of a match. Only the current
// server may call it; authorization is checked before the duplicate
// check. On success the record's retention window starts and exactly one
// GameFinalized notification is published.
func (s *Service) RecordGame(ctx context.Context, caller model.Identity, id model.GameID, record model.GameRecord) (*model.GameRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roles, err := s.storage.GetRoles(ctx)
	if err != nil {
		return nil, err
	}
	if !Authorized(caller, roles.Server) {
		return nil, model.ErrUnauthorized
	}

	if id == "" {
		return nil, fmt.Errorf("%w: game id is required", model.ErrInvalidRecord)
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	record.RecordedAt = s.clock.Now().UTC()

	if err := s.storage.CreateGame(ctx, id, &record); err != nil {
		return nil, err
	}

	event := model.GameFinalized{
		GameID:     id,
		Winner:     record.Winner,
		White:      record.White,
		Black:      record.Black,
		Timestamp:  record.Timestamp,
		RecordedAt: record.RecordedAt,
	}
	if err := s.sink.Publish(ctx, event); err != nil {
		// The commit is already durable; indexers recover missed
		// entries by reading the stream from their last seen ID or by
		// re-fetching the record.
		s.logger.Error("failed to publish commit event",
			slog.String("game_id", string(id)),
			slog.String("error", err.Error()),
		)
	}

	s.logger.Info("game recorded",
		slog.String("game_id", string(id)),
		slog.String("winner", string(record.Winner)),
		slog.String("white", string(record.White)),
		slog.String("black", string(record.Black)),
	)

	return &record, nil
}

// GetGame returns the committed record for id. No authorization is
// required; reads do not refresh the retention window. A record evicted
// by retention is indistinguishable from one that never existed.
func (s *Service) GetGame(ctx context.Context, id model.GameID) (*model.GameRecord, error) {
	return s.storage.GetGame(ctx, id)
}

// TouchGame resets the retention window of an existing record. Anyone may
// call it; the record content is untouched.
func (s *Service) TouchGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.TouchGame(ctx, id); err != nil {
		return err
	}

	s.logger.Info("game retention extended", slog.String("game_id", string(id)))
	return nil
}
