//go:build unit

package pricing_test

import (
	"testing"

	"cinepass/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatPriceCents(t *testing.T) {
	testCases := []struct {
		name     string
		class    pricing.SeatClass
		screen   pricing.ScreenType
		expected int32
	}{
		{name: "standard seat on IMAX screen", class: pricing.ClassStandard, screen: "IMAX", expected: 2499},
		{name: "premium seat on IMAX screen", class: pricing.ClassPremium, screen: "IMAX", expected: 2999},
		{name: "standard seat on standard screen", class: pricing.ClassStandard, screen: "Standard", expected: 1599},
		{name: "premium seat on standard screen", class: pricing.ClassPremium, screen: "Standard", expected: 1999},
		{name: "standard seat on unknown screen tag", class: pricing.ClassStandard, screen: "Dolby", expected: 1599},
		{name: "premium seat on empty screen tag", class: pricing.ClassPremium, screen: "", expected: 1999},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cents, err := pricing.SeatPriceCents(tc.class, tc.screen)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cents)
		})
	}

	t.Run("unknown seat class", func(t *testing.T) {
		_, err := pricing.SeatPriceCents("vip", "IMAX")
		assert.ErrorIs(t, err, pricing.ErrUnknownSeatClass)
	})
}

func TestSeatClassIsValid(t *testing.T) {
	assert.True(t, pricing.ClassStandard.IsValid())
	assert.True(t, pricing.ClassPremium.IsValid())
	assert.False(t, pricing.SeatClass("vip").IsValid())
	assert.False(t, pricing.SeatClass("").IsValid())
}
