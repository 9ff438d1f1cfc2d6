package queries

import (
	"context"
	"time"

	"venue-booking-api/internal/domain/hold"
	"venue-booking-api/internal/infra"
	"venue-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingView struct {
	ID            uuid.UUID `json:"id"`
	BookingType   string    `json:"bookingType"`
	BoothID       uuid.UUID `json:"boothId"`
	Venue         string    `json:"venue"`
	BookingDate   string    `json:"bookingDate"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail *string   `json:"customerEmail,omitempty"`
	CustomerPhone *string   `json:"customerPhone,omitempty"`
	GuestCount    int       `json:"guestCount"`
	DurationHours float64   `json:"durationHours"`
	TotalCents    int64     `json:"totalCents"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

type BookingReadStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListForDate(ctx context.Context, venue string, date hold.BookingDate) ([]*BookingView, error)
}

type BookingQueries interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListBookings(ctx context.Context, venue string, date string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, venue string, date string) ([]*BookingView, error) {
	d, err := hold.NewBookingDate(date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQueryDate)
	}
	return q.readStore.ListForDate(ctx, venue, d)
}
