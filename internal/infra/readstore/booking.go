package readstore

import (
	"context"
	"time"

	"venue-booking-api/internal/domain/hold"
	"venue-booking-api/internal/infra"
	"venue-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

const bookingViewColumns = `id, booking_type, booth_id, venue, booking_date, start_min, end_min,
	customer_name, customer_email, customer_phone, guest_count, duration_hours,
	total_cents, status, payment_status, created_at`

func (s *BookingReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := `SELECT ` + bookingViewColumns + ` FROM bookings WHERE id = $1`

	v, err := scanBookingView(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get booking", err)
	}
	return v, nil
}

func (s *BookingReadStore) ListForDate(ctx context.Context, venue string, date hold.BookingDate) ([]*queries.BookingView, error) {
	query := `SELECT ` + bookingViewColumns + `
FROM bookings
WHERE venue = $1 AND booking_date = $2
ORDER BY start_min, created_at`

	rows, err := s.pool.Query(ctx, query, venue, date.Time())
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read booking rows", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		v                queries.BookingView
		bookingDate      time.Time
		startMin, endMin int
	)
	err := row.Scan(&v.ID, &v.BookingType, &v.BoothID, &v.Venue, &bookingDate,
		&startMin, &endMin, &v.CustomerName, &v.CustomerEmail, &v.CustomerPhone,
		&v.GuestCount, &v.DurationHours, &v.TotalCents, &v.Status, &v.PaymentStatus, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	v.BookingDate = bookingDate.Format("2006-01-02")
	v.StartTime = minuteOfDay(startMin)
	v.EndTime = minuteOfDay(endMin)
	return &v, nil
}
