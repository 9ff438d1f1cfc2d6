package hold

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptySessionID = errors.New("session id is required")
	ErrEmptyVenue     = errors.New("venue is required")
)

type Status string

const (
	StatusActive   Status = "active"
	StatusExpired  Status = "expired"
	StatusReleased Status = "released"
	StatusConsumed Status = "consumed"
)

// TTL bounds for a hold. Requested TTLs outside [MinTTLMinutes,MaxTTLMinutes]
// are clamped, a zero request falls back to DefaultTTLMinutes.
const (
	MinTTLMinutes     = 1
	MaxTTLMinutes     = 60
	DefaultTTLMinutes = 10
)

func ClampTTL(ttlMinutes int) time.Duration {
	if ttlMinutes <= 0 {
		ttlMinutes = DefaultTTLMinutes
	}
	if ttlMinutes < MinTTLMinutes {
		ttlMinutes = MinTTLMinutes
	}
	if ttlMinutes > MaxTTLMinutes {
		ttlMinutes = MaxTTLMinutes
	}
	return time.Duration(ttlMinutes) * time.Minute
}

// Hold is a time-bounded reservation on a booth slot. Status only moves
// forward from active; expiry is decided by timestamp comparison, never by
// the stored status alone.
type Hold struct {
	id            uuid.UUID
	boothID       uuid.UUID
	venue         string
	date          BookingDate
	slot          TimeSlot
	sessionID     string
	customerEmail *string
	status        Status
	expiresAt     time.Time
	bookingID     *uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

func NewHold(
	boothID uuid.UUID,
	venue string,
	date BookingDate,
	slot TimeSlot,
	sessionID string,
	customerEmail *string,
	ttlMinutes int,
	now time.Time,
) (*Hold, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}
	if venue == "" {
		return nil, ErrEmptyVenue
	}

	return &Hold{
		id:            uuid.New(),
		boothID:       boothID,
		venue:         venue,
		date:          date,
		slot:          slot,
		sessionID:     sessionID,
		customerEmail: customerEmail,
		status:        StatusActive,
		expiresAt:     now.Add(ClampTTL(ttlMinutes)),
	}, nil
}

func ReconstructHold(
	id, boothID uuid.UUID,
	venue string,
	date BookingDate,
	slot TimeSlot,
	sessionID string,
	customerEmail *string,
	status Status,
	expiresAt time.Time,
	bookingID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Hold {
	return &Hold{
		id:            id,
		boothID:       boothID,
		venue:         venue,
		date:          date,
		slot:          slot,
		sessionID:     sessionID,
		customerEmail: customerEmail,
		status:        status,
		expiresAt:     expiresAt,
		bookingID:     bookingID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// IsBlocking reports whether the hold still reserves its slot. A row left at
// status=active past its expiry no longer blocks anyone.
func (h *Hold) IsBlocking(now time.Time) bool {
	return h.status == StatusActive && h.expiresAt.After(now)
}

func (h *Hold) OwnedBy(sessionID string) bool {
	return h.sessionID == sessionID
}

func (h *Hold) ID() uuid.UUID           { return h.id }
func (h *Hold) BoothID() uuid.UUID      { return h.boothID }
func (h *Hold) Venue() string           { return h.venue }
func (h *Hold) Date() BookingDate       { return h.date }
func (h *Hold) Slot() TimeSlot          { return h.slot }
func (h *Hold) SessionID() string       { return h.sessionID }
func (h *Hold) CustomerEmail() *string  { return h.customerEmail }
func (h *Hold) Status() Status          { return h.status }
func (h *Hold) ExpiresAt() time.Time    { return h.expiresAt }
func (h *Hold) BookingID() *uuid.UUID   { return h.bookingID }
func (h *Hold) CreatedAt() time.Time    { return h.createdAt }
func (h *Hold) UpdatedAt() time.Time    { return h.updatedAt }
