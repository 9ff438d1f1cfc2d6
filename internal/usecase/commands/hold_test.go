//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "venue-booking-api/internal/handler/dto/request"
	"venue-booking-api/internal/infra"
	"venue-booking-api/internal/pkg/clock"
	"venue-booking-api/internal/usecase/commands"
	"venue-booking-api/tests/common/builder"
	repositorymock "venue-booking-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HoldCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockHoldRepo    *repositorymock.MockHoldRepository
	mockBoothRepo   *repositorymock.MockBoothRepository
	mockBookingRepo *repositorymock.MockBookingRepository
	clock           *clock.MockClock
	commands        commands.HoldCommands
}

func (s *HoldCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockHoldRepo = repositorymock.NewMockHoldRepository(s.mockCtrl)
	s.mockBoothRepo = repositorymock.NewMockBoothRepository(s.mockCtrl)
	s.mockBookingRepo = repositorymock.NewMockBookingRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC))
	// Transactional paths (Create past validation) run against a real database
	// in the e2e suite; the nil pool is never reached by the cases below.
	s.commands = commands.NewHoldCommands(s.mockHoldRepo, s.mockBoothRepo, s.mockBookingRepo, nil, s.clock)
}

func (s *HoldCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHoldCommandsSuite(t *testing.T) {
	suite.Run(t, new(HoldCommandsTestSuite))
}

func (s *HoldCommandsTestSuite) TestCreateValidation() {
	cases := []struct {
		name   string
		mutate func(*builder.HoldBuilder)
	}{
		{name: "bad date", mutate: func(b *builder.HoldBuilder) { b.BookingDate = "15-09-2026" }},
		{name: "bad start time", mutate: func(b *builder.HoldBuilder) { b.StartTime = "6pm" }},
		{name: "start not before end", mutate: func(b *builder.HoldBuilder) { b.StartTime = "20:00"; b.EndTime = "18:00" }},
		{name: "empty session id", mutate: func(b *builder.HoldBuilder) { b.SessionID = "" }},
		{name: "empty venue", mutate: func(b *builder.HoldBuilder) { b.Venue = "" }},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			req := builder.NewHoldBuilder().With(c.mutate).BuildDTO()

			entity, err := s.commands.Create(context.Background(), req)

			s.Nil(entity)
			s.ErrorIs(err, commands.ErrInvalidHoldInput)
		})
	}
}

func (s *HoldCommandsTestSuite) TestExtend() {
	holdID := uuid.New()
	sessionID := "session-abc123"

	extendReq := func(ttl int) reqdto.ExtendHoldRequest {
		return reqdto.ExtendHoldRequest{HoldID: holdID, SessionID: sessionID, TTLMinutes: ttl}
	}

	s.Run("success resets expiry from now", func() {
		now := s.clock.Now()
		returned, err := builder.NewHoldBuilder().BuildDomain()
		s.Require().NoError(err)

		s.mockHoldRepo.EXPECT().
			Extend(gomock.Any(), gomock.Any(), holdID, sessionID, now.Add(30*time.Minute), now).
			Return(returned, nil)

		entity, err := s.commands.Extend(context.Background(), extendReq(30))

		s.NoError(err)
		s.Equal(returned, entity)
	})

	s.Run("ttl above max is clamped before hitting the repository", func() {
		now := s.clock.Now()
		returned, err := builder.NewHoldBuilder().BuildDomain()
		s.Require().NoError(err)

		s.mockHoldRepo.EXPECT().
			Extend(gomock.Any(), gomock.Any(), holdID, sessionID, now.Add(60*time.Minute), now).
			Return(returned, nil)

		_, err = s.commands.Extend(context.Background(), extendReq(240))
		s.NoError(err)
	})

	s.Run("zero ttl falls back to the default", func() {
		now := s.clock.Now()
		returned, err := builder.NewHoldBuilder().BuildDomain()
		s.Require().NoError(err)

		s.mockHoldRepo.EXPECT().
			Extend(gomock.Any(), gomock.Any(), holdID, sessionID, now.Add(10*time.Minute), now).
			Return(returned, nil)

		_, err = s.commands.Extend(context.Background(), extendReq(0))
		s.NoError(err)
	})

	s.Run("stale write maps to not extendable", func() {
		s.mockHoldRepo.EXPECT().
			Extend(gomock.Any(), gomock.Any(), holdID, sessionID, gomock.Any(), gomock.Any()).
			Return(nil, infra.NewRepoErr(infra.KindStaleWrite, "hold not extendable"))

		entity, err := s.commands.Extend(context.Background(), extendReq(10))

		s.Nil(entity)
		s.ErrorIs(err, commands.ErrHoldNotExtendable)
	})

	s.Run("db failure maps to database error", func() {
		s.mockHoldRepo.EXPECT().
			Extend(gomock.Any(), gomock.Any(), holdID, sessionID, gomock.Any(), gomock.Any()).
			Return(nil, infra.NewRepoErr(infra.KindDBFailure, "boom"))

		entity, err := s.commands.Extend(context.Background(), extendReq(10))

		s.Nil(entity)
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}

func (s *HoldCommandsTestSuite) TestRelease() {
	holdID := uuid.New()

	releaseReq := func(sessionID string) reqdto.ReleaseHoldRequest {
		return reqdto.ReleaseHoldRequest{HoldID: holdID, SessionID: sessionID}
	}

	s.Run("success", func() {
		returned, err := builder.NewHoldBuilder().BuildDomain()
		s.Require().NoError(err)

		s.mockHoldRepo.EXPECT().
			Release(gomock.Any(), gomock.Any(), holdID, "session-abc123").
			Return(returned, nil)

		entity, err := s.commands.Release(context.Background(), releaseReq("session-abc123"))

		s.NoError(err)
		s.Equal(returned, entity)
	})

	s.Run("stale write maps to not releasable", func() {
		s.mockHoldRepo.EXPECT().
			Release(gomock.Any(), gomock.Any(), holdID, "wrong-session").
			Return(nil, infra.NewRepoErr(infra.KindStaleWrite, "hold not releasable"))

		entity, err := s.commands.Release(context.Background(), releaseReq("wrong-session"))

		s.Nil(entity)
		s.ErrorIs(err, commands.ErrHoldNotReleasable)
	})
}

func (s *HoldCommandsTestSuite) TestForceRelease() {
	holdID := uuid.New()

	s.Run("success without session check", func() {
		returned, err := builder.NewHoldBuilder().BuildDomain()
		s.Require().NoError(err)

		s.mockHoldRepo.EXPECT().
			ForceRelease(gomock.Any(), gomock.Any(), holdID).
			Return(returned, nil)

		entity, err := s.commands.ForceRelease(context.Background(), holdID)

		s.NoError(err)
		s.Equal(returned, entity)
	})

	s.Run("inactive hold maps to not releasable", func() {
		s.mockHoldRepo.EXPECT().
			ForceRelease(gomock.Any(), gomock.Any(), holdID).
			Return(nil, infra.NewRepoErr(infra.KindStaleWrite, "hold not releasable"))

		entity, err := s.commands.ForceRelease(context.Background(), holdID)

		s.Nil(entity)
		s.ErrorIs(err, commands.ErrHoldNotReleasable)
	})
}
