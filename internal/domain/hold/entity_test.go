//go:build unit

package hold_test

import (
	"testing"
	"time"

	"venue-booking-api/internal/domain/hold"
	"venue-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHold(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewHoldBuilder()
		h, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, h)

		assert.NotEqual(t, uuid.Nil, h.ID())
		assert.Equal(t, b.BoothID, h.BoothID())
		assert.Equal(t, b.Venue, h.Venue())
		assert.Equal(t, b.SessionID, h.SessionID())
		assert.Equal(t, hold.StatusActive, h.Status())
		assert.Equal(t, b.Now.Add(10*time.Minute), h.ExpiresAt())
		assert.Nil(t, h.BookingID())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.HoldBuilder)
			errIs  error
		}{
			{
				name:   "empty session id",
				mutate: func(b *builder.HoldBuilder) { b.SessionID = "" },
				errIs:  hold.ErrEmptySessionID,
			},
			{
				name:   "empty venue",
				mutate: func(b *builder.HoldBuilder) { b.Venue = "" },
				errIs:  hold.ErrEmptyVenue,
			},
			{
				name:   "nil customer email is allowed",
				mutate: func(b *builder.HoldBuilder) { b.CustomerEmail = nil },
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				h, err := builder.NewHoldBuilder().With(c.mutate).BuildDomain()
				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, h)
				} else {
					require.Nil(t, h)
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})
}

func TestClampTTL(t *testing.T) {
	cases := []struct {
		name    string
		minutes int
		want    time.Duration
	}{
		{name: "zero falls back to default", minutes: 0, want: 10 * time.Minute},
		{name: "negative falls back to default", minutes: -5, want: 10 * time.Minute},
		{name: "within bounds passes through", minutes: 30, want: 30 * time.Minute},
		{name: "lower bound", minutes: 1, want: 1 * time.Minute},
		{name: "upper bound", minutes: 60, want: 60 * time.Minute},
		{name: "above max clamps to max", minutes: 240, want: 60 * time.Minute},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, hold.ClampTTL(c.minutes))
		})
	}
}

func TestHoldIsBlocking(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	date, err := hold.NewBookingDate("2026-09-15")
	require.NoError(t, err)
	slot, err := hold.NewTimeSlot("18:00", "20:00")
	require.NoError(t, err)

	reconstruct := func(status hold.Status, expiresAt time.Time) *hold.Hold {
		return hold.ReconstructHold(
			uuid.New(), uuid.New(), "downtown", date, slot,
			"session-abc123", nil, status, expiresAt, nil, now, now,
		)
	}

	cases := []struct {
		name      string
		status    hold.Status
		expiresAt time.Time
		blocking  bool
	}{
		{name: "active and unexpired", status: hold.StatusActive, expiresAt: now.Add(time.Minute), blocking: true},
		{name: "active but expired", status: hold.StatusActive, expiresAt: now.Add(-time.Minute), blocking: false},
		{name: "active expiring exactly now", status: hold.StatusActive, expiresAt: now, blocking: false},
		{name: "released", status: hold.StatusReleased, expiresAt: now.Add(time.Hour), blocking: false},
		{name: "consumed", status: hold.StatusConsumed, expiresAt: now.Add(time.Hour), blocking: false},
		{name: "expired status", status: hold.StatusExpired, expiresAt: now.Add(time.Hour), blocking: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := reconstruct(c.status, c.expiresAt)
			assert.Equal(t, c.blocking, h.IsBlocking(now))
		})
	}
}

func TestHoldOwnedBy(t *testing.T) {
	h, err := builder.NewHoldBuilder().BuildDomain()
	require.NoError(t, err)

	assert.True(t, h.OwnedBy("session-abc123"))
	assert.False(t, h.OwnedBy("someone-else"))
	assert.False(t, h.OwnedBy(""))
}
