//go:build unit || e2e

package builder

import (
	"time"

	"venue-booking-api/internal/domain/hold"
	reqdto "venue-booking-api/internal/handler/dto/request"

	"github.com/google/uuid"
)

type HoldBuilder struct {
	BoothID       uuid.UUID
	Venue         string
	BookingDate   string
	StartTime     string
	EndTime       string
	SessionID     string
	CustomerEmail *string
	TTLMinutes    int
	Now           time.Time
}

func NewHoldBuilder() *HoldBuilder {
	email := "guest@example.com"
	return &HoldBuilder{
		BoothID:       uuid.New(),
		Venue:         "downtown",
		BookingDate:   "2026-09-15",
		StartTime:     "18:00",
		EndTime:       "20:00",
		SessionID:     "session-abc123",
		CustomerEmail: &email,
		TTLMinutes:    10,
		Now:           time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
	}
}

func (b *HoldBuilder) With(mutate func(*HoldBuilder)) *HoldBuilder {
	mutate(b)
	return b
}

func (b *HoldBuilder) BuildDTO() reqdto.CreateHoldRequest {
	return reqdto.CreateHoldRequest{
		BoothID:       b.BoothID,
		Venue:         b.Venue,
		BookingDate:   b.BookingDate,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		SessionID:     b.SessionID,
		CustomerEmail: b.CustomerEmail,
		TTLMinutes:    b.TTLMinutes,
	}
}

func (b *HoldBuilder) BuildDomain() (*hold.Hold, error) {
	date, err := hold.NewBookingDate(b.BookingDate)
	if err != nil {
		return nil, err
	}

	slot, err := hold.NewTimeSlot(b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}

	return hold.NewHold(b.BoothID, b.Venue, date, slot, b.SessionID, b.CustomerEmail, b.TTLMinutes, b.Now)
}
