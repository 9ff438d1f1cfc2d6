package request

import (
	"github.com/google/uuid"
)

type CreateHoldRequest struct {
	BoothID       uuid.UUID `json:"boothId" binding:"required"`
	Venue         string    `json:"venue" binding:"required"`
	BookingDate   string    `json:"bookingDate" binding:"required"`
	StartTime     string    `json:"startTime" binding:"required"`
	EndTime       string    `json:"endTime" binding:"required"`
	SessionID     string    `json:"sessionId" binding:"required"`
	CustomerEmail *string   `json:"customerEmail,omitempty"`
	TTLMinutes    int       `json:"ttlMinutes,omitempty"`
}

type ExtendHoldRequest struct {
	HoldID     uuid.UUID `json:"holdId" binding:"required"`
	SessionID  string    `json:"sessionId" binding:"required"`
	TTLMinutes int       `json:"ttlMinutes,omitempty"`
}

type ReleaseHoldRequest struct {
	HoldID    uuid.UUID `json:"holdId" binding:"required"`
	SessionID string    `json:"sessionId" binding:"required"`
}
