package response

import (
	"time"

	"venue-booking-api/internal/domain/hold"
	"venue-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HoldResponse struct {
	ID            uuid.UUID  `json:"id"`
	BoothID       uuid.UUID  `json:"boothId"`
	Venue         string     `json:"venue"`
	BookingDate   string     `json:"bookingDate"`
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime"`
	CustomerEmail *string    `json:"customerEmail,omitempty"`
	Status        string     `json:"status"`
	ExpiresAt     time.Time  `json:"expiresAt"`
	BookingID     *uuid.UUID `json:"bookingId,omitempty"`
}

func FromHold(h *hold.Hold) *HoldResponse {
	return &HoldResponse{
		ID:            h.ID(),
		BoothID:       h.BoothID(),
		Venue:         h.Venue(),
		BookingDate:   h.Date().String(),
		StartTime:     h.Slot().Start(),
		EndTime:       h.Slot().End(),
		CustomerEmail: h.CustomerEmail(),
		Status:        string(h.Status()),
		ExpiresAt:     h.ExpiresAt(),
		BookingID:     h.BookingID(),
	}
}

type HoldListItemResponse struct {
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

func FromHoldView(v *queries.HoldView) (*HoldListItemResponse, error) {
	var resp HoldListItemResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}
