package request

import (
	"time"

	"cinepass/internal/domain/pricing"
	"cinepass/internal/usecase/commands"

	"github.com/google/uuid"
)

// RegisterShowtimeRequest is pushed by the catalog service when a screening
// is scheduled. ShowtimeID is optional; one is generated when omitted.
type RegisterShowtimeRequest struct {
	ShowtimeID     *uuid.UUID `json:"showtime_id,omitempty"`
	MovieID        uuid.UUID  `json:"movie_id" binding:"required"`
	CinemaID       uuid.UUID  `json:"cinema_id" binding:"required"`
	ScreenID       uuid.UUID  `json:"screen_id" binding:"required"`
	ScreenType     string     `json:"screen_type" binding:"required"`
	Capacity       int        `json:"capacity" binding:"required,gt=0"`
	StartsAt       time.Time  `json:"starts_at" binding:"required"`
	BasePriceCents int32      `json:"base_price_cents"`
}

func (r RegisterShowtimeRequest) ToParams() commands.RegisterShowtimeParams {
	params := commands.RegisterShowtimeParams{
		MovieID:        r.MovieID,
		CinemaID:       r.CinemaID,
		ScreenID:       r.ScreenID,
		ScreenType:     pricing.ScreenType(r.ScreenType),
		Capacity:       r.Capacity,
		StartsAt:       r.StartsAt,
		BasePriceCents: r.BasePriceCents,
	}
	if r.ShowtimeID != nil {
		params.ShowtimeID = *r.ShowtimeID
	}
	return params
}
