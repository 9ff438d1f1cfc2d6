package repository

import (
	"context"

	"venue-booking-api/internal/domain/booking"
	"venue-booking-api/internal/domain/hold"
	"venue-booking-api/internal/infra"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// HasConfirmedOverlap guards the bookings side of the no-double-booking
// invariant: confirmed rows for the same booth/date that intersect the window.
func (r *BookingRepository) HasConfirmedOverlap(
	ctx context.Context,
	db DBTX,
	boothID uuid.UUID,
	date hold.BookingDate,
	slot hold.TimeSlot,
) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1 FROM bookings
	WHERE booth_id = $1
	  AND booking_date = $2
	  AND status = 'confirmed'
	  AND start_min < $4
	  AND end_min > $3
)`

	var blocked bool
	err := db.QueryRow(ctx, query, boothID, date.Time(), slot.StartMinute(), slot.EndMinute()).Scan(&blocked)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to check booking overlap", err)
	}
	return blocked, nil
}

func (r *BookingRepository) Create(ctx context.Context, db DBTX, b *booking.Booking) error {
	const stmt = `
INSERT INTO bookings (id, booking_type, booth_id, venue, booking_date, start_min, end_min,
	customer_name, customer_email, customer_phone, guest_count, duration_hours,
	total_cents, status, payment_status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := db.Exec(ctx, stmt,
		b.ID(),
		b.Type(),
		b.BoothID(),
		b.Venue(),
		b.Date().Time(),
		b.Slot().StartMinute(),
		b.Slot().EndMinute(),
		b.CustomerName(),
		b.CustomerEmail(),
		b.CustomerPhone(),
		b.GuestCount(),
		b.DurationHours(),
		b.TotalCents(),
		b.Status(),
		b.PaymentStatus(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.NewRepoErrDetail(infra.KindConflict, "booking already exists", pgDetail(err))
		}
		if isForeignKeyViolation(err) {
			return infra.NewRepoErr(infra.KindNotFound, "booth does not exist")
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create booking", err)
	}
	return nil
}
