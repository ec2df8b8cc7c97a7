package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/soomtochukwu/XLMate/internal/dependencies/clock"
	"github.com/soomtochukwu/XLMate/internal/events"
	"github.com/soomtochukwu/XLMate/internal/services/keyauth"
	"github.com/soomtochukwu/XLMate/internal/services/registry"
	"github.com/soomtochukwu/XLMate/internal/storage"
	"github.com/soomtochukwu/XLMate/internal/storage/memory"
	redisstorage "github.com/soomtochukwu/XLMate/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock
	Sink  events.Sink

	// Services
	KeyAuth  *keyauth.Service
	Registry *registry.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// KeysFile is the path to the API keys file (optional)
	// If empty, no caller can authenticate
	KeysFile string
	// Sink overrides the event sink (optional). With Redis storage the
	// default is a stream publisher on the same connection; with memory
	// storage events are discarded unless a sink is provided.
	Sink events.Sink
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	sink := cfg.Sink

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
		if sink == nil {
			sink = events.NopSink{}
		}
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		if sink == nil {
			sink = events.NewPublisher(redisStore.Client(), events.DefaultStream)
		}
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Load API keys
	var keyAuth *keyauth.Service
	if cfg.KeysFile != "" {
		ka, err := keyauth.LoadFile(cfg.KeysFile)
		if err != nil {
			return nil, err
		}
		keyAuth = ka
	} else {
		logger.Warn("no keys file configured, all authenticated calls will be rejected")
		keyAuth = keyauth.New(nil)
	}

	clk := clock.New()
	registryService := registry.New(store, sink, clk, logger)

	return &App{
		Storage:  store,
		Clock:    clk,
		Sink:     sink,
		KeyAuth:  keyAuth,
		Registry: registryService,
	}, nil
}
