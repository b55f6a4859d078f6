//go:build unit

package booking_test

import (
	"regexp"
	"testing"
	"time"

	"cinepass/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now      = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	showtime = now.Add(3 * time.Hour)
)

func newBooking(t *testing.T, prices ...int32) *booking.Booking {
	t.Helper()

	seatIDs := make([]string, len(prices))
	for i := range seatIDs {
		seatIDs[i] = string(rune('A'+i)) + "1"
	}

	b, err := booking.New(
		booking.DefaultPolicy(),
		uuid.New(), uuid.New(),
		seatIDs, prices,
		"txn-123",
		now,
	)
	require.NoError(t, err)
	return b
}

func TestNewBooking_Totals(t *testing.T) {
	t.Run("two premium seats on a standard screen", func(t *testing.T) {
		b := newBooking(t, 1999, 1999)

		assert.Equal(t, int32(3998), b.SubtotalCents())
		assert.Equal(t, int32(299), b.FeeCents())
		assert.Equal(t, int32(400), b.TaxCents(), "10% of 39.98, rounded half-up")
		assert.Equal(t, int32(4697), b.TotalCents())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("single standard seat", func(t *testing.T) {
		b := newBooking(t, 1599)

		assert.Equal(t, int32(1599), b.SubtotalCents())
		assert.Equal(t, int32(160), b.TaxCents())
		assert.Equal(t, int32(1599+299+160), b.TotalCents())
	})

	t.Run("no seats rejected", func(t *testing.T) {
		_, err := booking.New(booking.DefaultPolicy(), uuid.New(), uuid.New(), nil, nil, "txn", now)
		assert.ErrorIs(t, err, booking.ErrNoSeats)
	})

	t.Run("mismatched prices rejected", func(t *testing.T) {
		_, err := booking.New(booking.DefaultPolicy(), uuid.New(), uuid.New(), []string{"A1", "A2"}, []int32{1999}, "txn", now)
		assert.Error(t, err)
	})
}

func TestNewReference(t *testing.T) {
	pattern := regexp.MustCompile(`^BK\d{6}$`)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, pattern, booking.NewReference())
	}
}

func TestBookingCancel(t *testing.T) {
	policy := booking.DefaultPolicy()

	t.Run("three hours before the show", func(t *testing.T) {
		b := newBooking(t, 1599)
		require.NoError(t, b.Cancel(policy, showtime, now))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("one hour before the show", func(t *testing.T) {
		b := newBooking(t, 1599)
		err := b.Cancel(policy, showtime, showtime.Add(-time.Hour))
		assert.ErrorIs(t, err, booking.ErrCancellationWindowClosed)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("exactly two hours before the show", func(t *testing.T) {
		b := newBooking(t, 1599)
		err := b.Cancel(policy, showtime, showtime.Add(-2*time.Hour))
		assert.ErrorIs(t, err, booking.ErrCancellationWindowClosed, "window requires strictly more than two hours")
	})

	t.Run("already cancelled", func(t *testing.T) {
		b := newBooking(t, 1599)
		require.NoError(t, b.Cancel(policy, showtime, now))
		assert.ErrorIs(t, b.Cancel(policy, showtime, now), booking.ErrAlreadyCancelled)
	})

	t.Run("already completed", func(t *testing.T) {
		b := newBooking(t, 1599)
		require.NoError(t, b.Complete(showtime.Add(time.Hour)))
		assert.ErrorIs(t, b.Cancel(policy, showtime, now), booking.ErrAlreadyCompleted)
	})
}

func TestBookingComplete(t *testing.T) {
	t.Run("confirmed booking completes", func(t *testing.T) {
		b := newBooking(t, 1599)
		after := showtime.Add(time.Hour)
		require.NoError(t, b.Complete(after))
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("idempotent for completed bookings", func(t *testing.T) {
		b := newBooking(t, 1599)
		require.NoError(t, b.Complete(showtime))
		assert.NoError(t, b.Complete(showtime.Add(time.Minute)))
	})

	t.Run("cancelled bookings stay cancelled", func(t *testing.T) {
		b := newBooking(t, 1599)
		require.NoError(t, b.Cancel(booking.DefaultPolicy(), showtime, now))
		assert.ErrorIs(t, b.Complete(showtime), booking.ErrAlreadyCancelled)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})
}

func TestStatus(t *testing.T) {
	assert.True(t, booking.StatusCancelled.IsTerminal())
	assert.True(t, booking.StatusCompleted.IsTerminal())
	assert.False(t, booking.StatusConfirmed.IsTerminal())
	assert.False(t, booking.Status("pending").IsValid())
}
