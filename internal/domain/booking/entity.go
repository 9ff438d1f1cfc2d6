package booking

import (
	"errors"
	"time"

	"venue-booking-api/internal/domain/hold"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomerName = errors.New("customer name is required")
	ErrNegativePrice     = errors.New("price cannot be negative")
)

const (
	TypeKaraoke = "karaoke_booking"

	StatusConfirmed = "confirmed"

	PaymentStatusUnpaid = "unpaid"
)

const defaultGuestCount = 1

// Booking is the confirmed record produced by finalizing a hold. The bookings
// table is shared with other booking types; this flow only writes karaoke rows.
type Booking struct {
	id            uuid.UUID
	bookingType   string
	boothID       uuid.UUID
	venue         string
	date          hold.BookingDate
	slot          hold.TimeSlot
	customerName  string
	customerEmail *string
	customerPhone *string
	guestCount    int
	durationHours float64
	totalCents    int64
	status        string
	paymentStatus string
	createdAt     time.Time
}

func NewFromHold(
	h *hold.Hold,
	customerName string,
	customerEmail, customerPhone *string,
	guestCount int,
	hourlyRateCents int64,
) (*Booking, error) {
	if customerName == "" {
		return nil, ErrEmptyCustomerName
	}
	if guestCount <= 0 {
		guestCount = defaultGuestCount
	}

	totalCents := PriceCents(hourlyRateCents, h.Slot())
	if totalCents < 0 {
		return nil, ErrNegativePrice
	}

	email := customerEmail
	if email == nil {
		email = h.CustomerEmail()
	}

	return &Booking{
		id:            uuid.New(),
		bookingType:   TypeKaraoke,
		boothID:       h.BoothID(),
		venue:         h.Venue(),
		date:          h.Date(),
		slot:          h.Slot(),
		customerName:  customerName,
		customerEmail: email,
		customerPhone: customerPhone,
		guestCount:    guestCount,
		durationHours: h.Slot().DurationHours(),
		totalCents:    totalCents,
		status:        StatusConfirmed,
		paymentStatus: PaymentStatusUnpaid,
	}, nil
}

// PriceCents computes hourly rate x duration using minute arithmetic so that
// partial hours price exactly (90 min at 10000c/h = 15000c).
func PriceCents(hourlyRateCents int64, slot hold.TimeSlot) int64 {
	return hourlyRateCents * int64(slot.DurationMinutes()) / 60
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) Type() string           { return b.bookingType }
func (b *Booking) BoothID() uuid.UUID     { return b.boothID }
func (b *Booking) Venue() string          { return b.venue }
func (b *Booking) Date() hold.BookingDate { return b.date }
func (b *Booking) Slot() hold.TimeSlot    { return b.slot }
func (b *Booking) CustomerName() string   { return b.customerName }
func (b *Booking) CustomerEmail() *string { return b.customerEmail }
func (b *Booking) CustomerPhone() *string { return b.customerPhone }
func (b *Booking) GuestCount() int        { return b.guestCount }
func (b *Booking) DurationHours() float64 { return b.durationHours }
func (b *Booking) TotalCents() int64      { return b.totalCents }
func (b *Booking) Status() string         { return b.status }
func (b *Booking) PaymentStatus() string  { return b.paymentStatus }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
