package queries

import (
	"context"

	"cinepass/internal/infra"
	"cinepass/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrShowtimeNotFound = errs.New("showtime not found")

type SeatReadStore interface {
	FindShowtimeByID(ctx context.Context, id uuid.UUID) (*ShowtimeView, error)
	ListSeatsByShowtime(ctx context.Context, showtimeID uuid.UUID) ([]SeatView, error)
}

type SeatQueries interface {
	ListSeats(ctx context.Context, showtimeID uuid.UUID) ([]SeatView, error)
	GetShowtime(ctx context.Context, showtimeID uuid.UUID) (*ShowtimeView, error)
}

type seatQueriesImpl struct {
	store SeatReadStore
}

func NewSeatQueries(store SeatReadStore) SeatQueries {
	return &seatQueriesImpl{store: store}
}

func (q *seatQueriesImpl) ListSeats(ctx context.Context, showtimeID uuid.UUID) ([]SeatView, error) {
	seats, err := q.store.ListSeatsByShowtime(ctx, showtimeID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list seats")
	}
	if len(seats) == 0 {
		// A showtime without seats does not exist; the map is generated at
		// registration and never emptied.
		return nil, ErrShowtimeNotFound
	}
	return seats, nil
}

func (q *seatQueriesImpl) GetShowtime(ctx context.Context, showtimeID uuid.UUID) (*ShowtimeView, error) {
	st, err := q.store.FindShowtimeByID(ctx, showtimeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrShowtimeNotFound
		}
		return nil, errs.Wrap(err, "failed to find showtime")
	}
	return st, nil
}
