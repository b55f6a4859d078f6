package commands

import (
	"context"
	"time"

	"cinepass/internal/domain/inventory"
	"cinepass/internal/domain/pricing"
	"cinepass/internal/infra"
	"cinepass/internal/infra/db"
	"cinepass/internal/pkg/clock"
	"cinepass/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrShowtimeExists   = errs.New("showtime already registered")
	ErrShowtimeInPast   = errs.New("showtime starts in the past")
	ErrInvalidSeatMap   = errs.New("invalid seat map parameters")
	ErrShowtimeNotFound = errs.New("showtime not found")
)

// RegisterShowtimeParams is the catalog's push of showtime metadata. The
// seat map is generated from it exactly once; capacity and screen type are
// immutable afterwards.
type RegisterShowtimeParams struct {
	ShowtimeID     uuid.UUID
	MovieID        uuid.UUID
	CinemaID       uuid.UUID
	ScreenID       uuid.UUID
	ScreenType     pricing.ScreenType
	Capacity       int
	StartsAt       time.Time
	BasePriceCents int32
}

type ShowtimeCommands interface {
	RegisterShowtime(ctx context.Context, params RegisterShowtimeParams) (*inventory.Showtime, error)
}

type showtimeCommandsImpl struct {
	showtimeRepo ShowtimeRepository
	pool         db.Pool
	clock        clock.Clock
}

func NewShowtimeCommands(showtimeRepo ShowtimeRepository, pool db.Pool, clk clock.Clock) ShowtimeCommands {
	return &showtimeCommandsImpl{
		showtimeRepo: showtimeRepo,
		pool:         pool,
		clock:        clk,
	}
}

func (c *showtimeCommandsImpl) RegisterShowtime(ctx context.Context, params RegisterShowtimeParams) (*inventory.Showtime, error) {
	if !params.StartsAt.After(c.clock.Now()) {
		return nil, ErrShowtimeInPast
	}

	id := params.ShowtimeID
	if id == uuid.Nil {
		id = uuid.New()
	}

	showtime, err := inventory.NewShowtime(
		id,
		params.MovieID,
		params.CinemaID,
		params.ScreenID,
		params.ScreenType,
		params.Capacity,
		params.StartsAt,
		params.BasePriceCents,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSeatMap)
	}

	err = withTx(ctx, c.pool, func(tx pgx.Tx) error {
		return c.showtimeRepo.Create(ctx, tx, showtime)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrShowtimeExists
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return showtime, nil
}
