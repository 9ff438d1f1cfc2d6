package readstore

import (
	"context"
	"fmt"
	"time"

	"venue-booking-api/internal/domain/hold"
	"venue-booking-api/internal/infra"
	"venue-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HoldReadStore struct {
	pool *pgxpool.Pool
}

func NewHoldReadStore(pool *pgxpool.Pool) *HoldReadStore {
	return &HoldReadStore{pool: pool}
}

func (s *HoldReadStore) ListForBoothDate(ctx context.Context, boothID uuid.UUID, date hold.BookingDate, now time.Time) ([]*queries.HoldView, error) {
	const query = `
SELECT id, booth_id, venue, booking_date, start_min, end_min, session_id,
	customer_email, status, expires_at, booking_id, created_at
FROM booth_holds
WHERE booth_id = $1 AND booking_date = $2
ORDER BY start_min, created_at`

	rows, err := s.pool.Query(ctx, query, boothID, date.Time())
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list holds", err)
	}
	defer rows.Close()

	var views []*queries.HoldView
	for rows.Next() {
		var (
			v                queries.HoldView
			bookingDate      time.Time
			startMin, endMin int
		)
		if err := rows.Scan(&v.ID, &v.BoothID, &v.Venue, &bookingDate, &startMin, &endMin,
			&v.SessionID, &v.CustomerEmail, &v.Status, &v.ExpiresAt, &v.BookingID, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan hold row", err)
		}
		v.BookingDate = bookingDate.Format("2006-01-02")
		v.StartTime = minuteOfDay(startMin)
		v.EndTime = minuteOfDay(endMin)
		v.Expired = v.Status == string(hold.StatusActive) && !v.ExpiresAt.After(now)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read hold rows", err)
	}
	return views, nil
}

func minuteOfDay(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
