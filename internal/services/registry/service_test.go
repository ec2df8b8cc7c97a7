package registry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/soomtochukwu/XLMate/internal/dependencies/mocks"
	"github.com/soomtochukwu/XLMate/internal/events"
	"github.com/soomtochukwu/XLMate/internal/model"
	"github.com/soomtochukwu/XLMate/internal/storage/memory"
	"github.com/soomtochukwu/XLMate/internal/testutil"
)

const (
	admin  = model.Identity("GADMIN")
	server = model.Identity("GSERVER")
	alice  = model.Identity("GALICE")
	bob    = model.Identity("GBOB")
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	sink    *events.Recorder
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.sink = events.NewRecorder()
	s.clock = mocks.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.sink, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) initialize() {
	s.Require().NoError(s.service.Initialize(s.ctx, admin, server))
}

func (s *ServiceSuite) validRecord() model.GameRecord {
	return model.GameRecord{
		Winner:    alice,
		White:     alice,
		Black:     bob,
		Timestamp: time.Date(2025, 2, 28, 20, 30, 0, 0, time.UTC),
	}
}

// Initialize tests

func (s *ServiceSuite) TestInitializeSucceedsOnce() {
	s.initialize()

	roles, err := s.service.Roles(s.ctx)
	s.Require().NoError(err)
	s.Equal(admin, roles.Admin)
	s.Equal(server, roles.Server)
}

func (s *ServiceSuite) TestSecondInitializeFails() {
	s.initialize()

	err := s.service.Initialize(s.ctx, "GOTHER", "GTHIRD")
	s.ErrorIs(err, model.ErrAlreadyInitialized)

	// The first assignment is untouched
	roles, err := s.service.Roles(s.ctx)
	s.Require().NoError(err)
	s.Equal(admin, roles.Admin)
	s.Equal(server, roles.Server)
}

func (s *ServiceSuite) TestSecondInitializeFailsEvenForAdmin() {
	s.initialize()

	err := s.service.Initialize(s.ctx, admin, server)
	s.ErrorIs(err, model.ErrAlreadyInitialized)
}

func (s *ServiceSuite) TestInitializeRejectsEmptyIdentities() {
	s.ErrorIs(s.service.Initialize(s.ctx, "", server), model.ErrInvalidRecord)
	s.ErrorIs(s.service.Initialize(s.ctx, admin, ""), model.ErrInvalidRecord)

	// Neither failed call may have set the slots
	_, err := s.service.Roles(s.ctx)
	s.ErrorIs(err, model.ErrNotInitialized)
}

// RecordGame tests

func (s *ServiceSuite) TestRecordGameSucceeds() {
	s.initialize()

	record := s.validRecord()
	stored, err := s.service.RecordGame(s.ctx, server, "g1", record)
	s.Require().NoError(err)

	s.Equal(record.Winner, stored.Winner)
	s.Equal(record.White, stored.White)
	s.Equal(record.Black, stored.Black)
	s.Equal(record.Timestamp, stored.Timestamp)
	s.Equal(s.clock.CurrentTime, stored.RecordedAt)
}

func (s *ServiceSuite) TestRecordGameEmitsOneEvent() {
	s.initialize()

	record := s.validRecord()
	_, err := s.service.RecordGame(s.ctx, server, "g1", record)
	s.Require().NoError(err)

	emitted := s.sink.Events()
	s.Require().Len(emitted, 1)
	s.Equal(model.GameID("g1"), emitted[0].GameID)
	s.Equal(record.Winner, emitted[0].Winner)
	s.Equal(record.White, emitted[0].White)
	s.Equal(record.Black, emitted[0].Black)
	s.Equal(record.Timestamp, emitted[0].Timestamp)
	s.Equal(s.clock.CurrentTime, emitted[0].RecordedAt)
}

func (s *ServiceSuite) TestRecordGameRoundTrip() {
	s.initialize()

	stored, err := s.service.RecordGame(s.ctx, server, "g1", s.validRecord())
	s.Require().NoError(err)

	got, err := s.service.GetGame(s.ctx, "g1")
	s.Require().NoError(err)
	s.Equal(stored, got)
}

func (s *ServiceSuite) TestDuplicateGameRejected() {
	s.initialize()

	_, err := s.service.RecordGame(s.ctx, server, "g1", s.validRecord())
	s.Require().NoError(err)

	// Same id with different content still fails
	other := s.validRecord()
	other.Winner = bob
	_, err = s.service.RecordGame(s.ctx, server, "g1", other)
	s.ErrorIs(err, model.ErrDuplicateGame)

	// Stored record is unchanged and no second event fired
	got, err := s.service.GetGame(s.ctx, "g1")
	s.Require().NoError(err)
	s.Equal(alice, got.Winner)
	s.Len(s.sink.Events(), 1)
}

func (s *ServiceSuite) TestUnauthorizedCallerRejected() {
	s.initialize()

	_, err := s.service.RecordGame(s.ctx, alice, "g2", s.validRecord())
	s.ErrorIs(err, model.ErrUnauthorized)

	// Nothing was stored and nothing was emitted
	_, err = s.service.GetGame(s.ctx, "g2")
	s.ErrorIs(err, model.ErrGameNotFound)
	s.Empty(s.sink.Events())
}

func (s *ServiceSuite) TestAuthorizationPrecedesDuplicateCheck() {
	s.initialize()

	_, err := s.service.RecordGame(s.ctx, server, "g1", s.validRecord())
	s.Require().NoError(err)

	// An unauthorized caller hitting an existing id must not learn that
	// the id exists
	_, err = s.service.RecordGame(s.ctx, alice, "g1", s.validRecord())
	s.ErrorIs(err, model.ErrUnauthorized)
	s.NotErrorIs(err, model.ErrDuplicateGame)
}

func (s *ServiceSuite) TestRecordGameBeforeInitialize() {
	_, err := s.service.RecordGame(s.ctx, server, "g1", s.validRecord())
	s.ErrorIs(err, model.ErrNotInitialized)
	s.Empty(s.sink.Events())
}

func (s *ServiceSuite) TestRecordGameRejectsEmptyGameID() {
	s.initialize()

	_, err := s.service.RecordGame(s.ctx, server, "", s.validRecord())
	s.ErrorIs(err, model.ErrInvalidRecord)
}

func (s *ServiceSuite) TestRecordGameRejectsIdenticalParticipants() {
	s.initialize()

	record := s.validRecord()
	record.Black = record.White
	_, err := s.service.RecordGame(s.ctx, server, "g1", record)
	s.ErrorIs(err, model.ErrInvalidRecord)
	s.Empty(s.sink.Events())
}

func (s *ServiceSuite) TestRecordGameRejectsMissingParticipant() {
	s.initialize()

	record := s.validRecord()
	record.White = ""
	record.Winner = ""
	_, err := s.service.RecordGame(s.ctx, server, "g1", record)
	s.ErrorIs(err, model.ErrInvalidRecord)
}

func (s *ServiceSuite) TestRecordGameRejectsNonParticipantWinner() {
	s.initialize()

	record := s.validRecord()
	record.Winner = "GSTRANGER"
	_, err := s.service.RecordGame(s.ctx, server, "g1", record)
	s.ErrorIs(err, model.ErrInvalidRecord)
}

func (s *ServiceSuite) TestRecordGameAcceptsDraw() {
	s.initialize()

	record := s.validRecord()
	record.Winner = ""
	stored, err := s.service.RecordGame(s.ctx, server, "g1", record)
	s.Require().NoError(err)
	s.True(stored.IsDraw())

	emitted := s.sink.Events()
	s.Require().Len(emitted, 1)
	s.Equal(model.Identity(""), emitted[0].Winner)
}

// Governance tests

func (s *ServiceSuite) TestSetServerRotation() {
	s.initialize()
	newServer := model.Identity("GSERVER2")

	s.Require().NoError(s.service.SetServer(s.ctx, admin, newServer))

	// The old server can no longer commit
	_, err := s.service.RecordGame(s.ctx, server, "g3", s.validRecord())
	s.ErrorIs(err, model.ErrUnauthorized)

	// The new server can
	_, err = s.service.RecordGame(s.ctx, newServer, "g3", s.validRecord())
	s.NoError(err)
}

func (s *ServiceSuite) TestSetServerRequiresAdmin() {
	s.initialize()

	s.ErrorIs(s.service.SetServer(s.ctx, server, "GSERVER2"), model.ErrUnauthorized)
	s.ErrorIs(s.service.SetServer(s.ctx, alice, "GSERVER2"), model.ErrUnauthorized)
}

func (s *ServiceSuite) TestSetAdminHandsOverGovernance() {
	s.initialize()
	newAdmin := model.Identity("GADMIN2")

	s.Require().NoError(s.service.SetAdmin(s.ctx, admin, newAdmin))

	// The previous admin immediately loses governance
	s.ErrorIs(s.service.SetServer(s.ctx, admin, "GSERVER2"), model.ErrUnauthorized)
	s.ErrorIs(s.service.SetAdmin(s.ctx, admin, admin), model.ErrUnauthorized)

	// The new admin holds it
	s.NoError(s.service.SetServer(s.ctx, newAdmin, "GSERVER2"))
}

func (s *ServiceSuite) TestGovernanceBeforeInitialize() {
	s.ErrorIs(s.service.SetServer(s.ctx, admin, "GSERVER2"), model.ErrNotInitialized)
	s.ErrorIs(s.service.SetAdmin(s.ctx, admin, "GADMIN2"), model.ErrNotInitialized)
}

func (s *ServiceSuite) TestGovernanceRejectsEmptyIdentity() {
	s.initialize()

	s.ErrorIs(s.service.SetServer(s.ctx, admin, ""), model.ErrInvalidRecord)
	s.ErrorIs(s.service.SetAdmin(s.ctx, admin, ""), model.ErrInvalidRecord)
}

// Read and touch tests

func (s *ServiceSuite) TestGetGameNotFound() {
	s.initialize()

	_, err := s.service.GetGame(s.ctx, "g1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ServiceSuite) TestGetGameNeedsNoInitialization() {
	// Public reads work even before bootstrap; they just find nothing
	_, err := s.service.GetGame(s.ctx, "g1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ServiceSuite) TestTouchGame() {
	s.initialize()

	_, err := s.service.RecordGame(s.ctx, server, "g1", s.validRecord())
	s.Require().NoError(err)

	s.NoError(s.service.TouchGame(s.ctx, "g1"))
	s.ErrorIs(s.service.TouchGame(s.ctx, "missing"), model.ErrGameNotFound)
}
