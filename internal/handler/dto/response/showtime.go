package response

import (
	"time"

	"cinepass/internal/domain/inventory"
	"cinepass/internal/usecase/queries"

	"github.com/google/uuid"
)

type ShowtimeResponse struct {
	ID             uuid.UUID `json:"id"`
	MovieID        uuid.UUID `json:"movieId"`
	CinemaID       uuid.UUID `json:"cinemaId"`
	ScreenID       uuid.UUID `json:"screenId"`
	ScreenType     string    `json:"screenType"`
	Capacity       int       `json:"capacity"`
	StartsAt       time.Time `json:"startsAt"`
	BasePriceCents int32     `json:"basePriceCents"`
}

type SeatResponse struct {
	ID         string `json:"id"`
	Row        string `json:"row"`
	Number     int    `json:"number"`
	Class      string `json:"class"`
	Status     string `json:"status"`
	PriceCents int32  `json:"priceCents"`
}

func FromShowtime(st *inventory.Showtime) *ShowtimeResponse {
	return &ShowtimeResponse{
		ID:             st.ID(),
		MovieID:        st.MovieID(),
		CinemaID:       st.CinemaID(),
		ScreenID:       st.ScreenID(),
		ScreenType:     string(st.ScreenType()),
		Capacity:       st.Capacity(),
		StartsAt:       st.StartsAt(),
		BasePriceCents: st.BasePriceCents(),
	}
}

func FromShowtimeView(rm *queries.ShowtimeView) *ShowtimeResponse {
	return &ShowtimeResponse{
		ID:             rm.ID,
		MovieID:        rm.MovieID,
		CinemaID:       rm.CinemaID,
		ScreenID:       rm.ScreenID,
		ScreenType:     rm.ScreenType,
		Capacity:       rm.Capacity,
		StartsAt:       rm.StartsAt,
		BasePriceCents: rm.BasePriceCents,
	}
}

func FromSeatView(rm queries.SeatView) SeatResponse {
	return SeatResponse{
		ID:         rm.ID,
		Row:        rm.Row,
		Number:     rm.Number,
		Class:      rm.Class,
		Status:     rm.Status,
		PriceCents: rm.PriceCents,
	}
}
