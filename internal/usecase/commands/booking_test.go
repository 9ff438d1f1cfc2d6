//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"venue-booking-api/internal/domain/booth"
	"venue-booking-api/internal/domain/hold"
	"venue-booking-api/internal/infra"
	"venue-booking-api/internal/pkg/clock"
	"venue-booking-api/internal/usecase/commands"
	"venue-booking-api/tests/common/builder"
	repositorymock "venue-booking-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockHoldRepo    *repositorymock.MockHoldRepository
	mockBoothRepo   *repositorymock.MockBoothRepository
	mockBookingRepo *repositorymock.MockBookingRepository
	clock           *clock.MockClock
	commands        commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockHoldRepo = repositorymock.NewMockHoldRepository(s.mockCtrl)
	s.mockBoothRepo = repositorymock.NewMockBoothRepository(s.mockCtrl)
	s.mockBookingRepo = repositorymock.NewMockBookingRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC))
	// The guarded insert needs a live transaction and is covered by the e2e
	// suite; these cases all fail before the pool is touched.
	s.commands = commands.NewBookingCommands(s.mockHoldRepo, s.mockBoothRepo, s.mockBookingRepo, nil, s.clock)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) activeHold(boothID uuid.UUID) *hold.Hold {
	now := s.clock.Now()
	date, err := hold.NewBookingDate("2026-09-15")
	s.Require().NoError(err)
	slot, err := hold.NewTimeSlot("18:00", "20:00")
	s.Require().NoError(err)

	return hold.ReconstructHold(
		uuid.New(), boothID, "downtown", date, slot,
		"session-abc123", nil, hold.StatusActive, now.Add(5*time.Minute), nil, now, now,
	)
}

func (s *BookingCommandsTestSuite) TestFinalizeErrors() {
	req := builder.NewFinalizeBuilder().BuildDTO()

	s.Run("hold not found", func() {
		s.mockHoldRepo.EXPECT().
			FindByIDAndSession(gomock.Any(), gomock.Any(), req.HoldID, req.SessionID).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "hold not found"))

		result, err := s.commands.Finalize(context.Background(), req)

		s.Nil(result)
		s.ErrorIs(err, commands.ErrHoldNotFound)
	})

	s.Run("wrong session is indistinguishable from missing", func() {
		s.mockHoldRepo.EXPECT().
			FindByIDAndSession(gomock.Any(), gomock.Any(), req.HoldID, req.SessionID).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "hold not found"))

		result, err := s.commands.Finalize(context.Background(), req)

		s.Nil(result)
		s.ErrorIs(err, commands.ErrHoldNotFound)
	})

	s.Run("lookup failure maps to database error", func() {
		s.mockHoldRepo.EXPECT().
			FindByIDAndSession(gomock.Any(), gomock.Any(), req.HoldID, req.SessionID).
			Return(nil, infra.NewRepoErr(infra.KindDBFailure, "boom"))

		result, err := s.commands.Finalize(context.Background(), req)

		s.Nil(result)
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})

	s.Run("expired hold is rejected", func() {
		now := s.clock.Now()
		date, err := hold.NewBookingDate("2026-09-15")
		s.Require().NoError(err)
		slot, err := hold.NewTimeSlot("18:00", "20:00")
		s.Require().NoError(err)
		expired := hold.ReconstructHold(
			req.HoldID, uuid.New(), "downtown", date, slot,
			req.SessionID, nil, hold.StatusActive, now.Add(-time.Second), nil, now, now,
		)

		s.mockHoldRepo.EXPECT().
			FindByIDAndSession(gomock.Any(), gomock.Any(), req.HoldID, req.SessionID).
			Return(expired, nil)

		result, err := s.commands.Finalize(context.Background(), req)

		s.Nil(result)
		s.ErrorIs(err, commands.ErrHoldNotActive)
	})

	s.Run("released hold is rejected", func() {
		now := s.clock.Now()
		date, err := hold.NewBookingDate("2026-09-15")
		s.Require().NoError(err)
		slot, err := hold.NewTimeSlot("18:00", "20:00")
		s.Require().NoError(err)
		released := hold.ReconstructHold(
			req.HoldID, uuid.New(), "downtown", date, slot,
			req.SessionID, nil, hold.StatusReleased, now.Add(time.Hour), nil, now, now,
		)

		s.mockHoldRepo.EXPECT().
			FindByIDAndSession(gomock.Any(), gomock.Any(), req.HoldID, req.SessionID).
			Return(released, nil)

		result, err := s.commands.Finalize(context.Background(), req)

		s.Nil(result)
		s.ErrorIs(err, commands.ErrHoldNotActive)
	})

	s.Run("missing booth maps to integrity error", func() {
		boothID := uuid.New()
		held := s.activeHold(boothID)

		s.mockHoldRepo.EXPECT().
			FindByIDAndSession(gomock.Any(), gomock.Any(), req.HoldID, req.SessionID).
			Return(held, nil)
		s.mockBoothRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), boothID).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "booth not found"))

		result, err := s.commands.Finalize(context.Background(), req)

		s.Nil(result)
		s.ErrorIs(err, commands.ErrBoothIntegrity)
	})

	s.Run("empty customer name maps to invalid customer", func() {
		boothID := uuid.New()
		held := s.activeHold(boothID)
		boothEntity, err := booth.NewBooth(boothID, "downtown", "Booth A", 10000)
		s.Require().NoError(err)

		badReq := builder.NewFinalizeBuilder().With(func(b *builder.FinalizeBuilder) {
			b.CustomerName = ""
		}).BuildDTO()
		badReq.HoldID = req.HoldID
		badReq.SessionID = req.SessionID

		s.mockHoldRepo.EXPECT().
			FindByIDAndSession(gomock.Any(), gomock.Any(), req.HoldID, req.SessionID).
			Return(held, nil)
		s.mockBoothRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any(), boothID).
			Return(boothEntity, nil)

		result, err := s.commands.Finalize(context.Background(), badReq)

		s.Nil(result)
		s.ErrorIs(err, commands.ErrInvalidCustomer)
	})
}
