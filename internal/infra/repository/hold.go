package repository

import (
	"context"
	"time"

	"venue-booking-api/internal/domain/hold"
	"venue-booking-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const holdColumns = `id, booth_id, venue, booking_date, start_min, end_min,
	session_id, customer_email, status, expires_at, booking_id, created_at, updated_at`

type HoldRepository struct{}

func NewHoldRepository() *HoldRepository {
	return &HoldRepository{}
}

// HasBlockingOverlap checks whether any live hold on (booth, date) intersects
// the candidate window. Rows flagged active but past expires_at do not block.
// excludeID skips the caller's own hold during finalize.
func (r *HoldRepository) HasBlockingOverlap(
	ctx context.Context,
	db DBTX,
	boothID uuid.UUID,
	date hold.BookingDate,
	slot hold.TimeSlot,
	now time.Time,
	excludeID *uuid.UUID,
) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1 FROM booth_holds
	WHERE booth_id = $1
	  AND booking_date = $2
	  AND status = 'active'
	  AND expires_at > $3
	  AND start_min < $5
	  AND end_min > $4
	  AND ($6::uuid IS NULL OR id <> $6)
)`

	var blocked bool
	err := db.QueryRow(ctx, query,
		boothID, date.Time(), now, slot.StartMinute(), slot.EndMinute(), excludeID,
	).Scan(&blocked)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to check hold overlap", err)
	}
	return blocked, nil
}

func (r *HoldRepository) Create(ctx context.Context, db DBTX, h *hold.Hold) error {
	const stmt = `
INSERT INTO booth_holds (id, booth_id, venue, booking_date, start_min, end_min,
	session_id, customer_email, status, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := db.Exec(ctx, stmt,
		h.ID(),
		h.BoothID(),
		h.Venue(),
		h.Date().Time(),
		h.Slot().StartMinute(),
		h.Slot().EndMinute(),
		h.SessionID(),
		h.CustomerEmail(),
		h.Status(),
		h.ExpiresAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.NewRepoErrDetail(infra.KindConflict, "hold already exists", pgDetail(err))
		}
		if isForeignKeyViolation(err) {
			return infra.NewRepoErr(infra.KindNotFound, "booth does not exist")
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create hold", err)
	}
	return nil
}

// FindByIDAndSession scopes the lookup to the owning session so a wrong
// session is indistinguishable from a nonexistent hold.
func (r *HoldRepository) FindByIDAndSession(ctx context.Context, db DBTX, id uuid.UUID, sessionID string) (*hold.Hold, error) {
	query := `SELECT ` + holdColumns + ` FROM booth_holds WHERE id = $1 AND session_id = $2`

	h, err := scanHold(db.QueryRow(ctx, query, id, sessionID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.NewRepoErr(infra.KindNotFound, "hold not found")
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find hold", err)
	}
	return h, nil
}

// Extend pushes expires_at forward via a single conditional update: ownership,
// active status and non-expiry are all re-checked in the WHERE clause.
func (r *HoldRepository) Extend(ctx context.Context, db DBTX, id uuid.UUID, sessionID string, newExpiry, now time.Time) (*hold.Hold, error) {
	query := `
UPDATE booth_holds
SET expires_at = $3, updated_at = NOW()
WHERE id = $1 AND session_id = $2 AND status = 'active' AND expires_at > $4
RETURNING ` + holdColumns

	h, err := scanHold(db.QueryRow(ctx, query, id, sessionID, newExpiry, now))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.NewRepoErr(infra.KindStaleWrite, "hold not extendable")
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to extend hold", err)
	}
	return h, nil
}

// Release works on expired-but-still-active rows too; only the status and
// ownership are checked.
func (r *HoldRepository) Release(ctx context.Context, db DBTX, id uuid.UUID, sessionID string) (*hold.Hold, error) {
	query := `
UPDATE booth_holds
SET status = 'released', updated_at = NOW()
WHERE id = $1 AND session_id = $2 AND status = 'active'
RETURNING ` + holdColumns

	h, err := scanHold(db.QueryRow(ctx, query, id, sessionID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.NewRepoErr(infra.KindStaleWrite, "hold not releasable")
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to release hold", err)
	}
	return h, nil
}

// ForceRelease is the operator path: no session check.
func (r *HoldRepository) ForceRelease(ctx context.Context, db DBTX, id uuid.UUID) (*hold.Hold, error) {
	query := `
UPDATE booth_holds
SET status = 'released', updated_at = NOW()
WHERE id = $1 AND status = 'active'
RETURNING ` + holdColumns

	h, err := scanHold(db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.NewRepoErr(infra.KindStaleWrite, "hold not releasable")
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to force-release hold", err)
	}
	return h, nil
}

// Consume flips the hold to consumed and links the booking. The conditional
// WHERE clause makes this a compare-and-swap: only the first finalize matches.
func (r *HoldRepository) Consume(ctx context.Context, db DBTX, id uuid.UUID, sessionID string, bookingID uuid.UUID) error {
	const stmt = `
UPDATE booth_holds
SET status = 'consumed', booking_id = $3, updated_at = NOW()
WHERE id = $1 AND session_id = $2 AND status = 'active'`

	tag, err := db.Exec(ctx, stmt, id, sessionID, bookingID)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to consume hold", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindStaleWrite, "hold already consumed or released")
	}
	return nil
}

func scanHold(row pgx.Row) (*hold.Hold, error) {
	var (
		id, boothID   uuid.UUID
		venue         string
		date          time.Time
		startMin      int
		endMin        int
		sessionID     string
		customerEmail *string
		status        string
		expiresAt     time.Time
		bookingID     *uuid.UUID
		createdAt     time.Time
		updatedAt     time.Time
	)

	err := row.Scan(&id, &boothID, &venue, &date, &startMin, &endMin,
		&sessionID, &customerEmail, &status, &expiresAt, &bookingID, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return hold.ReconstructHold(
		id, boothID, venue,
		hold.ReconstructBookingDate(date),
		hold.ReconstructTimeSlot(startMin, endMin),
		sessionID, customerEmail,
		hold.Status(status),
		expiresAt, bookingID, createdAt, updatedAt,
	), nil
}
