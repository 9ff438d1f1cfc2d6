package queries

import (
	"context"
	"time"

	"venue-booking-api/internal/domain/hold"
	"venue-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidQueryDate = errs.New("invalid query date")

// HoldView is the operator-facing read model; it includes the owning session
// so staff can see who is sitting on a slot.
type HoldView struct {
	ID            uuid.UUID  `json:"id"`
	BoothID       uuid.UUID  `json:"boothId"`
	Venue         string     `json:"venue"`
	BookingDate   string     `json:"bookingDate"`
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime"`
	SessionID     string     `json:"sessionId"`
	CustomerEmail *string    `json:"customerEmail,omitempty"`
	Status        string     `json:"status"`
	Expired       bool       `json:"expired"`
	ExpiresAt     time.Time  `json:"expiresAt"`
	BookingID     *uuid.UUID `json:"bookingId,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type HoldReadStore interface {
	ListForBoothDate(ctx context.Context, boothID uuid.UUID, date hold.BookingDate, now time.Time) ([]*HoldView, error)
}

type HoldQueries interface {
	ListHolds(ctx context.Context, boothID uuid.UUID, date string) ([]*HoldView, error)
}

type holdQueriesImpl struct {
	readStore HoldReadStore
	now       func() time.Time
}

func NewHoldQueries(readStore HoldReadStore) HoldQueries {
	return &holdQueriesImpl{readStore: readStore, now: time.Now}
}

func (q *holdQueriesImpl) ListHolds(ctx context.Context, boothID uuid.UUID, date string) ([]*HoldView, error) {
	d, err := hold.NewBookingDate(date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQueryDate)
	}
	return q.readStore.ListForBoothDate(ctx, boothID, d, q.now())
}
