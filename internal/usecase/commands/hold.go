package commands

import (
	"context"
	"errors"
	"log/slog"

	"venue-booking-api/internal/domain/hold"
	reqdto "venue-booking-api/internal/handler/dto/request"
	"venue-booking-api/internal/infra"
	"venue-booking-api/internal/pkg/clock"
	"venue-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalidHoldInput        = errs.New("invalid hold input")
	ErrSlotConflict            = errs.New("slot unavailable")
	ErrBoothNotFound           = errs.New("booth not found")
	ErrHoldNotExtendable       = errs.New("hold not extendable")
	ErrHoldNotReleasable       = errs.New("hold not releasable")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type HoldCommands interface {
	Create(ctx context.Context, req reqdto.CreateHoldRequest) (*hold.Hold, error)
	Extend(ctx context.Context, req reqdto.ExtendHoldRequest) (*hold.Hold, error)
	Release(ctx context.Context, req reqdto.ReleaseHoldRequest) (*hold.Hold, error)
	ForceRelease(ctx context.Context, holdID uuid.UUID) (*hold.Hold, error)
}

type holdCommandsImpl struct {
	holdRepo    HoldRepository
	boothRepo   BoothRepository
	bookingRepo BookingRepository
	db          *pgxpool.Pool
	clock       clock.Clock
}

func NewHoldCommands(
	holdRepo HoldRepository,
	boothRepo BoothRepository,
	bookingRepo BookingRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
) HoldCommands {
	return &holdCommandsImpl{
		holdRepo:    holdRepo,
		boothRepo:   boothRepo,
		bookingRepo: bookingRepo,
		db:          db,
		clock:       clock,
	}
}

// Create inserts a new active hold. The booth row lock taken inside the
// transaction serializes the overlap check and the insert, so two concurrent
// creates for intersecting windows cannot both succeed.
func (h *holdCommandsImpl) Create(ctx context.Context, req reqdto.CreateHoldRequest) (*hold.Hold, error) {
	date, err := hold.NewBookingDate(req.BookingDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidHoldInput)
	}
	slot, err := hold.NewTimeSlot(req.StartTime, req.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidHoldInput)
	}

	now := h.clock.Now()
	entity, err := hold.NewHold(req.BoothID, req.Venue, date, slot, req.SessionID, req.CustomerEmail, req.TTLMinutes, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidHoldInput)
	}

	tx, err := h.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := h.boothRepo.LockRow(ctx, tx, req.BoothID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBoothNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	blocked, err := h.holdRepo.HasBlockingOverlap(ctx, tx, req.BoothID, date, slot, now, nil)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if blocked {
		return nil, errs.Mark(infra.NewRepoErrDetail(infra.KindConflict,
			"slot unavailable", "an active hold overlaps the requested window"), ErrSlotConflict)
	}

	booked, err := h.bookingRepo.HasConfirmedOverlap(ctx, tx, req.BoothID, date, slot)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if booked {
		return nil, errs.Mark(infra.NewRepoErrDetail(infra.KindConflict,
			"slot unavailable", "a confirmed booking overlaps the requested window"), ErrSlotConflict)
	}

	if err := h.holdRepo.Create(ctx, tx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrSlotConflict)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return entity, nil
}

// Extend and Release are single conditional updates; no transaction is needed
// because the WHERE clause re-checks ownership and state atomically.
func (h *holdCommandsImpl) Extend(ctx context.Context, req reqdto.ExtendHoldRequest) (*hold.Hold, error) {
	now := h.clock.Now()
	newExpiry := now.Add(hold.ClampTTL(req.TTLMinutes))

	entity, err := h.holdRepo.Extend(ctx, h.db, req.HoldID, req.SessionID, newExpiry, now)
	if err != nil {
		if infra.IsKind(err, infra.KindStaleWrite) {
			return nil, ErrHoldNotExtendable
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (h *holdCommandsImpl) Release(ctx context.Context, req reqdto.ReleaseHoldRequest) (*hold.Hold, error) {
	entity, err := h.holdRepo.Release(ctx, h.db, req.HoldID, req.SessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindStaleWrite) {
			return nil, ErrHoldNotReleasable
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (h *holdCommandsImpl) ForceRelease(ctx context.Context, holdID uuid.UUID) (*hold.Hold, error) {
	entity, err := h.holdRepo.ForceRelease(ctx, h.db, holdID)
	if err != nil {
		if infra.IsKind(err, infra.KindStaleWrite) {
			return nil, ErrHoldNotReleasable
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}
