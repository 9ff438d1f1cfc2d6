//go:build unit

package booking_test

import (
	"testing"

	"venue-booking-api/internal/domain/booking"
	"venue-booking-api/internal/domain/hold"
	"venue-booking-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromHold(t *testing.T) {
	heldEntity, err := builder.NewHoldBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("basic success case", func(t *testing.T) {
		email := "billing@example.com"
		phone := "+1-555-0100"

		b, err := booking.NewFromHold(heldEntity, "Jordan Lee", &email, &phone, 4, 10000)
		require.NoError(t, err)
		require.NotNil(t, b)

		assert.Equal(t, booking.TypeKaraoke, b.Type())
		assert.Equal(t, heldEntity.BoothID(), b.BoothID())
		assert.Equal(t, heldEntity.Venue(), b.Venue())
		assert.Equal(t, "Jordan Lee", b.CustomerName())
		assert.Equal(t, &email, b.CustomerEmail())
		assert.Equal(t, &phone, b.CustomerPhone())
		assert.Equal(t, 4, b.GuestCount())
		assert.InDelta(t, 2.0, b.DurationHours(), 1e-9)
		assert.Equal(t, int64(20000), b.TotalCents())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, booking.PaymentStatusUnpaid, b.PaymentStatus())
	})

	t.Run("empty customer name is rejected", func(t *testing.T) {
		b, err := booking.NewFromHold(heldEntity, "", nil, nil, 1, 10000)
		require.Nil(t, b)
		require.ErrorIs(t, err, booking.ErrEmptyCustomerName)
	})

	t.Run("non-positive guest count defaults to one", func(t *testing.T) {
		for _, guests := range []int{0, -3} {
			b, err := booking.NewFromHold(heldEntity, "Jordan Lee", nil, nil, guests, 10000)
			require.NoError(t, err)
			assert.Equal(t, 1, b.GuestCount())
		}
	})

	t.Run("customer email falls back to the hold", func(t *testing.T) {
		b, err := booking.NewFromHold(heldEntity, "Jordan Lee", nil, nil, 2, 10000)
		require.NoError(t, err)
		require.NotNil(t, b.CustomerEmail())
		assert.Equal(t, heldEntity.CustomerEmail(), b.CustomerEmail())
	})

	t.Run("negative rate is rejected", func(t *testing.T) {
		b, err := booking.NewFromHold(heldEntity, "Jordan Lee", nil, nil, 2, -100)
		require.Nil(t, b)
		require.ErrorIs(t, err, booking.ErrNegativePrice)
	})
}

func TestPriceCents(t *testing.T) {
	mustSlot := func(start, end string) hold.TimeSlot {
		slot, err := hold.NewTimeSlot(start, end)
		require.NoError(t, err)
		return slot
	}

	cases := []struct {
		name  string
		rate  int64
		start string
		end   string
		want  int64
	}{
		{name: "whole hours", rate: 10000, start: "10:00", end: "12:00", want: 20000},
		{name: "half hour prices exactly", rate: 10000, start: "18:00", end: "19:30", want: 15000},
		{name: "quarter hour", rate: 10000, start: "10:00", end: "10:45", want: 7500},
		{name: "small rate two hours", rate: 100, start: "10:00", end: "12:00", want: 200},
		{name: "integer division truncates", rate: 9999, start: "10:00", end: "10:30", want: 4999},
		{name: "single minute", rate: 6000, start: "10:00", end: "10:01", want: 100},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, booking.PriceCents(c.rate, mustSlot(c.start, c.end)))
		})
	}
}
