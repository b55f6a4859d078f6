// Package inventory owns the authoritative seat map of a showtime: which
// seats exist, their class and price, and their current status. Seats have
// no existence outside their showtime.
package inventory

import (
	"errors"
	"fmt"
	"time"

	"cinepass/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity  = errors.New("capacity must be positive")
	ErrCapacityTooLarge = errors.New("capacity exceeds supported layout")
)

// maxRows bounds the layout to single-letter row labels A..Z.
const (
	targetSeatsPerRow = 20
	premiumRows       = 2
	maxRows           = 26
)

// Showtime is one scheduled screening together with its immutable seat map.
// Catalog metadata (movie, cinema, screen references, start time) is
// treated as input; only seat statuses ever change after creation.
type Showtime struct {
	id             uuid.UUID
	movieID        uuid.UUID
	cinemaID       uuid.UUID
	screenID       uuid.UUID
	screenType     pricing.ScreenType
	capacity       int
	startsAt       time.Time
	basePriceCents int32
	seats          []Seat
}

// NewShowtime generates the seat map for a screening. The layout is
// deterministic for a given (capacity, screenType): rows of roughly
// twenty seats, labelled A, B, C..., with the first two rows premium.
// The last row is truncated so that exactly capacity seats exist.
func NewShowtime(
	id, movieID, cinemaID, screenID uuid.UUID,
	screenType pricing.ScreenType,
	capacity int,
	startsAt time.Time,
	basePriceCents int32,
) (*Showtime, error) {
	seats, err := newSeatMap(capacity, screenType)
	if err != nil {
		return nil, err
	}

	return &Showtime{
		id:             id,
		movieID:        movieID,
		cinemaID:       cinemaID,
		screenID:       screenID,
		screenType:     screenType,
		capacity:       capacity,
		startsAt:       startsAt,
		basePriceCents: basePriceCents,
		seats:          seats,
	}, nil
}

func newSeatMap(capacity int, screenType pricing.ScreenType) ([]Seat, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	rows := (capacity + targetSeatsPerRow - 1) / targetSeatsPerRow
	if rows > maxRows {
		return nil, ErrCapacityTooLarge
	}
	seatsPerRow := (capacity + rows - 1) / rows

	seats := make([]Seat, 0, capacity)
	for i := 0; i < rows; i++ {
		rowLabel := string(rune('A' + i))

		class := pricing.ClassStandard
		if i < premiumRows {
			class = pricing.ClassPremium
		}

		priceCents, err := pricing.SeatPriceCents(class, screenType)
		if err != nil {
			return nil, err
		}

		for j := 1; j <= seatsPerRow && len(seats) < capacity; j++ {
			seats = append(seats, Seat{
				ID:         fmt.Sprintf("%s%d", rowLabel, j),
				Row:        rowLabel,
				Number:     j,
				Class:      class,
				Status:     SeatFree,
				PriceCents: priceCents,
			})
		}
	}

	return seats, nil
}

func (s *Showtime) ID() uuid.UUID                  { return s.id }
func (s *Showtime) MovieID() uuid.UUID             { return s.movieID }
func (s *Showtime) CinemaID() uuid.UUID            { return s.cinemaID }
func (s *Showtime) ScreenID() uuid.UUID            { return s.screenID }
func (s *Showtime) ScreenType() pricing.ScreenType { return s.screenType }
func (s *Showtime) Capacity() int                  { return s.capacity }
func (s *Showtime) StartsAt() time.Time            { return s.startsAt }
func (s *Showtime) BasePriceCents() int32          { return s.basePriceCents }
func (s *Showtime) Seats() []Seat                  { return s.seats }

// HasStarted reports whether the screening's start time has passed.
func (s *Showtime) HasStarted(now time.Time) bool {
	return !now.Before(s.startsAt)
}
