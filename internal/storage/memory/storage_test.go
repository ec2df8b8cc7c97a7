package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soomtochukwu/XLMate/internal/model"
)

func testRecord() *model.GameRecord {
	return &model.GameRecord{
		Winner:     "GALICE",
		White:      "GALICE",
		Black:      "GBOB",
		Timestamp:  time.Date(2025, 2, 28, 20, 30, 0, 0, time.UTC),
		RecordedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestInitRolesOnce(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.GetRoles(ctx)
	assert.ErrorIs(t, err, model.ErrNotInitialized)

	require.NoError(t, s.InitRoles(ctx, &model.RoleState{Admin: "GADMIN", Server: "GSERVER"}))

	err = s.InitRoles(ctx, &model.RoleState{Admin: "GOTHER", Server: "GTHIRD"})
	assert.ErrorIs(t, err, model.ErrAlreadyInitialized)

	roles, err := s.GetRoles(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Identity("GADMIN"), roles.Admin)
	assert.Equal(t, model.Identity("GSERVER"), roles.Server)
}

func TestSaveRolesOverwrites(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.InitRoles(ctx, &model.RoleState{Admin: "GADMIN", Server: "GSERVER"}))
	require.NoError(t, s.SaveRoles(ctx, &model.RoleState{Admin: "GADMIN", Server: "GSERVER2"}))

	roles, err := s.GetRoles(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Identity("GSERVER2"), roles.Server)
}

func TestCreateGameOnce(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateGame(ctx, "g1", testRecord()))

	other := testRecord()
	other.Winner = "GBOB"
	err := s.CreateGame(ctx, "g1", other)
	assert.ErrorIs(t, err, model.ErrDuplicateGame)

	got, err := s.GetGame(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, model.Identity("GALICE"), got.Winner)
}

func TestGetGameNotFound(t *testing.T) {
	s := New()

	_, err := s.GetGame(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrGameNotFound)
}

func TestGetGameReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateGame(ctx, "g1", testRecord()))

	got, err := s.GetGame(ctx, "g1")
	require.NoError(t, err)
	got.Winner = "GBOB"

	again, err := s.GetGame(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, model.Identity("GALICE"), again.Winner)
}

func TestTouchGame(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateGame(ctx, "g1", testRecord()))

	assert.NoError(t, s.TouchGame(ctx, "g1"))
	assert.ErrorIs(t, s.TouchGame(ctx, "missing"), model.ErrGameNotFound)
}
