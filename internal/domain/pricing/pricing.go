// Package pricing is the single source of truth for seat prices.
// A seat's price depends only on its class and the screen type of the
// showtime it belongs to, so the whole engine is a fixed table.
package pricing

import "errors"

var ErrUnknownSeatClass = errors.New("unknown seat class")

type SeatClass string

const (
	ClassStandard SeatClass = "standard"
	ClassPremium  SeatClass = "premium"
)

func (c SeatClass) String() string {
	return string(c)
}

func (c SeatClass) IsValid() bool {
	switch c {
	case ClassStandard, ClassPremium:
		return true
	default:
		return false
	}
}

// ScreenType is the catalog's free-form screen tag ("IMAX", "Standard",
// "Dolby", ...). Pricing only distinguishes large-format screens.
type ScreenType string

const ScreenTypeIMAX ScreenType = "IMAX"

func (t ScreenType) IsLargeFormat() bool {
	return t == ScreenTypeIMAX
}

const (
	largeFormatStandardCents = 2499
	largeFormatPremiumCents  = 2999
	standardCents            = 1599
	premiumCents             = 1999
)

// SeatPriceCents returns the price for a (class, screenType) pair.
// ErrUnknownSeatClass signals a misconfigured seat map and should never
// occur for showtimes built by this service.
func SeatPriceCents(class SeatClass, screen ScreenType) (int32, error) {
	switch class {
	case ClassStandard:
		if screen.IsLargeFormat() {
			return largeFormatStandardCents, nil
		}
		return standardCents, nil
	case ClassPremium:
		if screen.IsLargeFormat() {
			return largeFormatPremiumCents, nil
		}
		return premiumCents, nil
	default:
		return 0, ErrUnknownSeatClass
	}
}
