//go:build unit

package builder

import (
	"time"

	"cinepass/internal/domain/inventory"
	"cinepass/internal/domain/pricing"
	reqdto "cinepass/internal/handler/dto/request"
	"cinepass/internal/usecase/queries"

	"github.com/google/uuid"
)

type ShowtimeBuilder struct {
	ID             uuid.UUID
	MovieID        uuid.UUID
	CinemaID       uuid.UUID
	ScreenID       uuid.UUID
	ScreenType     pricing.ScreenType
	Capacity       int
	StartsAt       time.Time
	BasePriceCents int32
}

func NewShowtimeBuilder() *ShowtimeBuilder {
	return &ShowtimeBuilder{
		ID:             uuid.New(),
		MovieID:        uuid.New(),
		CinemaID:       uuid.New(),
		ScreenID:       uuid.New(),
		ScreenType:     pricing.ScreenType("Standard"),
		Capacity:       60,
		StartsAt:       time.Now().Add(24 * time.Hour).Truncate(time.Second),
		BasePriceCents: 1599,
	}
}

func (b *ShowtimeBuilder) With(mutate func(*ShowtimeBuilder)) *ShowtimeBuilder {
	mutate(b)
	return b
}

func (b *ShowtimeBuilder) BuildDomain() (*inventory.Showtime, error) {
	return inventory.NewShowtime(b.ID, b.MovieID, b.CinemaID, b.ScreenID, b.ScreenType, b.Capacity, b.StartsAt, b.BasePriceCents)
}

func (b *ShowtimeBuilder) BuildRegisterRequestDTO() reqdto.RegisterShowtimeRequest {
	id := b.ID
	return reqdto.RegisterShowtimeRequest{
		ShowtimeID:     &id,
		MovieID:        b.MovieID,
		CinemaID:       b.CinemaID,
		ScreenID:       b.ScreenID,
		ScreenType:     string(b.ScreenType),
		Capacity:       b.Capacity,
		StartsAt:       b.StartsAt,
		BasePriceCents: b.BasePriceCents,
	}
}

func (b *ShowtimeBuilder) BuildView() *queries.ShowtimeView {
	return &queries.ShowtimeView{
		ID:             b.ID,
		MovieID:        b.MovieID,
		CinemaID:       b.CinemaID,
		ScreenID:       b.ScreenID,
		ScreenType:     string(b.ScreenType),
		Capacity:       b.Capacity,
		StartsAt:       b.StartsAt,
		BasePriceCents: b.BasePriceCents,
		CreatedAt:      time.Now(),
	}
}

func (b *ShowtimeBuilder) BuildSeatViews() []queries.SeatView {
	st, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}

	seats := make([]queries.SeatView, 0, len(st.Seats()))
	for _, seat := range st.Seats() {
		seats = append(seats, queries.SeatView{
			ID:         seat.ID,
			Row:        seat.Row,
			Number:     seat.Number,
			Class:      string(seat.Class),
			Status:     string(seat.Status),
			PriceCents: seat.PriceCents,
		})
	}
	return seats
}
