package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/soomtochukwu/XLMate/internal/model"
	"github.com/soomtochukwu/XLMate/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Commit-once and initialize-once semantics are enforced with SETNX, so
// they hold even across multiple registry processes sharing one Redis.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Client returns the underlying Redis client, shared with the event
// publisher so both regions live on one connection pool.
func (s *Storage) Client() *redis.Client {
	return s.client
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Role state operations

func (s *Storage) InitRoles(ctx context.Context, roles *model.RoleState) error {
	data, err := json.Marshal(roles)
	if err != nil {
		return err
	}

	// SETNX closes the bootstrap race: only the first writer ever wins.
	ok, err := s.client.SetNX(ctx, rolesKey(), data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrAlreadyInitialized
	}
	return nil
}

func (s *Storage) GetRoles(ctx context.Context) (*model.RoleState, error) {
	data, err := s.client.Get(ctx, rolesKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrNotInitialized
		}
		return nil, err
	}

	var roles model.RoleState
	if err := json.Unmarshal(data, &roles); err != nil {
		return nil, err
	}
	return &roles, nil
}

func (s *Storage) SaveRoles(ctx context.Context, roles *model.RoleState) error {
	data, err := json.Marshal(roles)
	if err != nil {
		return err
	}

	// The role record never expires
	return s.client.Set(ctx, rolesKey(), data, 0).Err()
}

// Game record operations

func (s *Storage) CreateGame(ctx context.Context, id model.GameID, record *model.GameRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	ok, err := s.client.SetNX(ctx, gameKey(id), data, s.cfg.RecordTTL).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrDuplicateGame
	}
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.GameRecord, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var record model.GameRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Storage) TouchGame(ctx context.Context, id model.GameID) error {
	ok, err := s.client.Expire(ctx, gameKey(id), s.cfg.RecordTTL).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrGameNotFound
	}
	return nil
}
