package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soomtochukwu/XLMate/internal/events"
	"github.com/soomtochukwu/XLMate/internal/storage/memory"
)

func TestNewDefaultsToMemory(t *testing.T) {
	app, err := New(Config{})
	require.NoError(t, err)

	assert.IsType(t, &memory.Storage{}, app.Storage)
	assert.IsType(t, events.NopSink{}, app.Sink)
	assert.NotNil(t, app.Registry)
	assert.NotNil(t, app.KeyAuth)
}

func TestNewWithSinkOverride(t *testing.T) {
	recorder := events.NewRecorder()

	app, err := New(Config{Sink: recorder})
	require.NoError(t, err)
	assert.Same(t, recorder, app.Sink)
}

func TestNewRejectsUnknownStorageType(t *testing.T) {
	_, err := New(Config{StorageType: "flatfile"})
	assert.Error(t, err)
}

func TestNewRedisRequiresConfig(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	assert.Error(t, err)
}
