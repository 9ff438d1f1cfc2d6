package request

import (
	"github.com/google/uuid"
)

type FinalizeBookingRequest struct {
	HoldID        uuid.UUID `json:"holdId" binding:"required"`
	SessionID     string    `json:"sessionId" binding:"required"`
	CustomerName  string    `json:"customerName" binding:"required"`
	CustomerEmail *string   `json:"customerEmail,omitempty"`
	CustomerPhone *string   `json:"customerPhone,omitempty"`
	GuestCount    *int      `json:"guestCount,omitempty"`
}

func (r FinalizeBookingRequest) GuestCountOrDefault() int {
	if r.GuestCount == nil || *r.GuestCount <= 0 {
		return 1
	}
	return *r.GuestCount
}
