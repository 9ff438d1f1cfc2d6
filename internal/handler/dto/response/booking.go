package response

import (
	"time"

	"venue-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type FinalizeBookingResponse struct {
	Success   bool      `json:"success"`
	BookingID uuid.UUID `json:"bookingId"`
}

type BookingResponse struct {
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

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}
