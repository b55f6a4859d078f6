package inventory

import (
	"errors"

	"cinepass/internal/domain/pricing"
)

var (
	ErrSeatNotFound      = errors.New("seat not found")
	ErrInvalidTransition = errors.New("invalid seat status transition")
)

type SeatStatus string

const (
	SeatFree SeatStatus = "free"
	SeatHeld SeatStatus = "held"
	SeatSold SeatStatus = "sold"
)

func (s SeatStatus) String() string {
	return string(s)
}

func (s SeatStatus) IsValid() bool {
	switch s {
	case SeatFree, SeatHeld, SeatSold:
		return true
	default:
		return false
	}
}

// CanTransition reports whether a seat may move from s to next.
// sold→free is allowed only through booking cancellation, which the
// booking ledger guards with the cancellation window.
func (s SeatStatus) CanTransition(next SeatStatus) bool {
	switch s {
	case SeatFree:
		return next == SeatHeld
	case SeatHeld:
		return next == SeatFree || next == SeatSold
	case SeatSold:
		return next == SeatFree
	default:
		return false
	}
}

// Seat belongs to exactly one showtime; its ID (row letter + number) is
// unique within that showtime only.
type Seat struct {
	ID         string
	Row        string
	Number     int
	Class      pricing.SeatClass
	Status     SeatStatus
	PriceCents int32
}
