package repository

import (
	"context"

	"cinepass/internal/infra"
	"cinepass/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seatReadStore struct {
	pool *pgxpool.Pool
}

func NewSeatReadStore(pool *pgxpool.Pool) queries.SeatReadStore {
	return &seatReadStore{pool: pool}
}

func (s *seatReadStore) FindShowtimeByID(ctx context.Context, id uuid.UUID) (*queries.ShowtimeView, error) {
	const query = `
		SELECT id, movie_id, cinema_id, screen_id, screen_type, capacity,
			starts_at, base_price_cents, created_at
		FROM showtimes
		WHERE id = $1`

	var view queries.ShowtimeView
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.MovieID, &view.CinemaID, &view.ScreenID, &view.ScreenType,
		&view.Capacity, &view.StartsAt, &view.BasePriceCents, &view.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find showtime", err)
	}
	return &view, nil
}

func (s *seatReadStore) ListSeatsByShowtime(ctx context.Context, showtimeID uuid.UUID) ([]queries.SeatView, error) {
	// row_label then seat_number reproduces the generated layout order.
	const query = `
		SELECT seat_id, row_label, seat_number, class, status, price_cents
		FROM showtime_seats
		WHERE showtime_id = $1
		ORDER BY row_label, seat_number`

	rows, err := s.pool.Query(ctx, query, showtimeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query seats", err)
	}
	defer rows.Close()

	var seats []queries.SeatView
	for rows.Next() {
		var seat queries.SeatView
		if err := rows.Scan(&seat.ID, &seat.Row, &seat.Number, &seat.Class, &seat.Status, &seat.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan seat", err)
		}
		seats = append(seats, seat)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read seats", err)
	}

	return seats, nil
}

type bookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) queries.BookingReadStore {
	return &bookingReadStore{pool: pool}
}

func (s *bookingReadStore) FindBookingByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.reference, b.customer_id, b.showtime_id, s.starts_at,
			b.seat_ids, b.subtotal_cents, b.fee_cents, b.tax_cents, b.total_cents,
			b.status, b.created_at, b.updated_at
		FROM bookings b
		JOIN showtimes s ON s.id = b.showtime_id
		WHERE b.id = $1`

	var view queries.BookingView
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Reference, &view.CustomerID, &view.ShowtimeID,
		&view.ShowtimeStartsAt, &view.SeatIDs, &view.SubtotalCents, &view.FeeCents,
		&view.TaxCents, &view.TotalCents, &view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return &view, nil
}

func (s *bookingReadStore) ListBookingsByCustomer(ctx context.Context, customerID uuid.UUID) ([]queries.BookingListItem, error) {
	const query = `
		SELECT b.id, b.reference, b.showtime_id, s.starts_at, b.seat_ids,
			b.total_cents, b.status, b.created_at
		FROM bookings b
		JOIN showtimes s ON s.id = b.showtime_id
		WHERE b.customer_id = $1
		ORDER BY b.created_at DESC`

	rows, err := s.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err)
	}
	defer rows.Close()

	var items []queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		err := rows.Scan(
			&item.ID, &item.Reference, &item.ShowtimeID, &item.ShowtimeStartsAt,
			&item.SeatIDs, &item.TotalCents, &item.Status, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}

	return items, nil
}
