package booth

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRate = errors.New("hourly rate cannot be negative")

// Booth is the bookable resource. The catalog is owned elsewhere; this core
// only reads it for pricing.
type Booth struct {
	id              uuid.UUID
	venue           string
	name            string
	hourlyRateCents int64
}

func NewBooth(id uuid.UUID, venue, name string, hourlyRateCents int64) (*Booth, error) {
	if hourlyRateCents < 0 {
		return nil, ErrInvalidRate
	}
	return &Booth{
		id:              id,
		venue:           venue,
		name:            name,
		hourlyRateCents: hourlyRateCents,
	}, nil
}

func (b *Booth) ID() uuid.UUID          { return b.id }
func (b *Booth) Venue() string          { return b.venue }
func (b *Booth) Name() string           { return b.name }
func (b *Booth) HourlyRateCents() int64 { return b.hourlyRateCents }
