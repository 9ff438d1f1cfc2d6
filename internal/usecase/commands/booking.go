package commands

import (
	"context"
	"errors"
	"log/slog"

	"venue-booking-api/internal/domain/booking"
	reqdto "venue-booking-api/internal/handler/dto/request"
	"venue-booking-api/internal/infra"
	"venue-booking-api/internal/pkg/clock"
	"venue-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrHoldNotFound    = errs.New("hold not found")
	ErrHoldNotActive   = errs.New("hold expired or inactive")
	ErrBoothIntegrity  = errs.New("booth referenced by hold does not exist")
	ErrBookingConflict = errs.New("booking conflict")
	ErrInvalidCustomer = errs.New("invalid customer input")
)

type FinalizeResult struct {
	BookingID uuid.UUID
	Success   bool
}

type BookingCommands interface {
	Finalize(ctx context.Context, req reqdto.FinalizeBookingRequest) (*FinalizeResult, error)
}

type bookingCommandsImpl struct {
	holdRepo    HoldRepository
	boothRepo   BoothRepository
	bookingRepo BookingRepository
	db          *pgxpool.Pool
	clock       clock.Clock
}

func NewBookingCommands(
	holdRepo HoldRepository,
	boothRepo BoothRepository,
	bookingRepo BookingRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		holdRepo:    holdRepo,
		boothRepo:   boothRepo,
		bookingRepo: bookingRepo,
		db:          db,
		clock:       clock,
	}
}

// Finalize converts an active, unexpired hold into a confirmed booking.
//
// The booking insert commits in its own transaction; the hold is flipped to
// consumed afterwards. If that last update fails the booking still stands.
// The hold stops blocking on its own once expires_at passes, so the partial
// state is self-healing and is only logged.
func (b *bookingCommandsImpl) Finalize(ctx context.Context, req reqdto.FinalizeBookingRequest) (*FinalizeResult, error) {
	now := b.clock.Now()

	heldEntity, err := b.holdRepo.FindByIDAndSession(ctx, b.db, req.HoldID, req.SessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHoldNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !heldEntity.IsBlocking(now) {
		return nil, ErrHoldNotActive
	}

	boothEntity, err := b.boothRepo.FindByID(ctx, b.db, heldEntity.BoothID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBoothIntegrity
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	bookingEntity, err := booking.NewFromHold(
		heldEntity,
		req.CustomerName,
		req.CustomerEmail,
		req.CustomerPhone,
		req.GuestCountOrDefault(),
		boothEntity.HourlyRateCents(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCustomer)
	}

	if err := b.insertBookingGuarded(ctx, heldEntity.ID(), bookingEntity); err != nil {
		return nil, err
	}

	// Bookkeeping only past this point: the booking is the record of truth.
	if err := b.holdRepo.Consume(ctx, b.db, heldEntity.ID(), req.SessionID, bookingEntity.ID()); err != nil {
		slog.Warn("booking created but hold was not marked consumed",
			"hold_id", heldEntity.ID(),
			"booking_id", bookingEntity.ID(),
			"error", err.Error())
	}

	return &FinalizeResult{BookingID: bookingEntity.ID(), Success: true}, nil
}

func (b *bookingCommandsImpl) insertBookingGuarded(ctx context.Context, holdID uuid.UUID, bookingEntity *booking.Booking) error {
	tx, err := b.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := b.boothRepo.LockRow(ctx, tx, bookingEntity.BoothID()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBoothIntegrity
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Defensive re-check: the active hold already reserved the slot, but the
	// holds and bookings tables can diverge; guard the insert anyway.
	booked, err := b.bookingRepo.HasConfirmedOverlap(ctx, tx, bookingEntity.BoothID(), bookingEntity.Date(), bookingEntity.Slot())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if booked {
		return errs.Mark(infra.NewRepoErrDetail(infra.KindConflict,
			"booking conflict", "a confirmed booking overlaps the requested window"), ErrBookingConflict)
	}

	excludeID := holdID
	blocked, err := b.holdRepo.HasBlockingOverlap(ctx, tx, bookingEntity.BoothID(), bookingEntity.Date(), bookingEntity.Slot(), b.clock.Now(), &excludeID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if blocked {
		return errs.Mark(infra.NewRepoErrDetail(infra.KindConflict,
			"booking conflict", "another active hold overlaps the requested window"), ErrBookingConflict)
	}

	if err := b.bookingRepo.Create(ctx, tx, bookingEntity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, ErrBookingConflict)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
