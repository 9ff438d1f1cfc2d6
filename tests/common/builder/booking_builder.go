//go:build unit || e2e

package builder

import (
	reqdto "venue-booking-api/internal/handler/dto/request"

	"github.com/google/uuid"
)

type FinalizeBuilder struct {
	HoldID        uuid.UUID
	SessionID     string
	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	GuestCount    *int
}

func NewFinalizeBuilder() *FinalizeBuilder {
	email := "guest@example.com"
	phone := "+1-555-0100"
	guests := 4
	return &FinalizeBuilder{
		HoldID:        uuid.New(),
		SessionID:     "session-abc123",
		CustomerName:  "Jordan Lee",
		CustomerEmail: &email,
		CustomerPhone: &phone,
		GuestCount:    &guests,
	}
}

func (b *FinalizeBuilder) With(mutate func(*FinalizeBuilder)) *FinalizeBuilder {
	mutate(b)
	return b
}

func (b *FinalizeBuilder) BuildDTO() reqdto.FinalizeBookingRequest {
	return reqdto.FinalizeBookingRequest{
		HoldID:        b.HoldID,
		SessionID:     b.SessionID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		GuestCount:    b.GuestCount,
	}
}
