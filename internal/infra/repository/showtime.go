// Package repository implements the command-side write ports and the
// query-side read stores over Postgres. Write repositories are stateless
// and take a DBTX so callers control transaction scope; read stores hold
// the pool and run outside explicit transactions.
package repository

import (
	"context"

	"cinepass/internal/domain/inventory"
	"cinepass/internal/domain/pricing"
	"cinepass/internal/infra"
	"cinepass/internal/infra/db"
	"cinepass/internal/usecase/commands"

	"github.com/google/uuid"
)

type showtimeRepository struct{}

func NewShowtimeRepository() commands.ShowtimeRepository {
	return &showtimeRepository{}
}

func (r *showtimeRepository) Create(ctx context.Context, tx db.DBTX, st *inventory.Showtime) error {
	const insertShowtime = `
		INSERT INTO showtimes (id, movie_id, cinema_id, screen_id, screen_type, capacity, starts_at, base_price_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, insertShowtime,
		st.ID(), st.MovieID(), st.CinemaID(), st.ScreenID(),
		string(st.ScreenType()), st.Capacity(), st.StartsAt(), st.BasePriceCents(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert showtime", err)
	}

	const insertSeat = `
		INSERT INTO showtime_seats (showtime_id, seat_id, row_label, seat_number, class, status, price_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, seat := range st.Seats() {
		_, err := tx.Exec(ctx, insertSeat,
			st.ID(), seat.ID, seat.Row, seat.Number,
			string(seat.Class), string(seat.Status), seat.PriceCents,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert seat", err)
		}
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.ShowtimeSnapshot, error) {
	const query = `
		SELECT id, screen_type, capacity, starts_at
		FROM showtimes
		WHERE id = $1`

	var snapshot commands.ShowtimeSnapshot
	var screenType string
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&snapshot.ID, &screenType, &snapshot.Capacity, &snapshot.StartsAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find showtime", err)
	}
	snapshot.ScreenType = pricing.ScreenType(screenType)

	return &snapshot, nil
}
