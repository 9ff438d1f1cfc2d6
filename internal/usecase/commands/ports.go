package commands

import (
	"context"
	"time"

	"venue-booking-api/internal/domain/booking"
	"venue-booking-api/internal/domain/booth"
	"venue-booking-api/internal/domain/hold"
	"venue-booking-api/internal/domain/user"
	"venue-booking-api/internal/infra/repository"

	"github.com/google/uuid"
)

type HoldRepository interface {
	HasBlockingOverlap(ctx context.Context, db repository.DBTX, boothID uuid.UUID, date hold.BookingDate, slot hold.TimeSlot, now time.Time, excludeID *uuid.UUID) (bool, error)
	Create(ctx context.Context, db repository.DBTX, h *hold.Hold) error
	FindByIDAndSession(ctx context.Context, db repository.DBTX, id uuid.UUID, sessionID string) (*hold.Hold, error)
	Extend(ctx context.Context, db repository.DBTX, id uuid.UUID, sessionID string, newExpiry, now time.Time) (*hold.Hold, error)
	Release(ctx context.Context, db repository.DBTX, id uuid.UUID, sessionID string) (*hold.Hold, error)
	ForceRelease(ctx context.Context, db repository.DBTX, id uuid.UUID) (*hold.Hold, error)
	Consume(ctx context.Context, db repository.DBTX, id uuid.UUID, sessionID string, bookingID uuid.UUID) error
}

type BoothRepository interface {
	FindByID(ctx context.Context, db repository.DBTX, id uuid.UUID) (*booth.Booth, error)
	LockRow(ctx context.Context, db repository.DBTX, id uuid.UUID) error
}

type BookingRepository interface {
	HasConfirmedOverlap(ctx context.Context, db repository.DBTX, boothID uuid.UUID, date hold.BookingDate, slot hold.TimeSlot) (bool, error)
	Create(ctx context.Context, db repository.DBTX, b *booking.Booking) error
}

type UserRepository interface {
	FindActiveByEmail(ctx context.Context, db repository.DBTX, email string) (*user.User, error)
	UpdateLastLogin(ctx context.Context, db repository.DBTX, id uuid.UUID) error
}
