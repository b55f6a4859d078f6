package commands

import (
	"context"

	"cinepass/internal/domain/inventory"
	"cinepass/internal/infra/db"
	"cinepass/internal/pkg/clock"
	"cinepass/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
)

// sweepBatchSize bounds how many expired holds one sweep pass releases,
// keeping the transaction short under backlog.
const sweepBatchSize = 100

type SweepCommands interface {
	// ReleaseExpiredHolds frees the seats of every expired hold it can
	// lock and deletes the holds. Returns how many holds were released.
	ReleaseExpiredHolds(ctx context.Context) (int, error)
	// CompleteElapsedBookings marks confirmed bookings of already started
	// showtimes completed. Returns how many bookings changed.
	CompleteElapsedBookings(ctx context.Context) (int64, error)
}

type sweepCommandsImpl struct {
	holdRepo      HoldRepository
	inventoryRepo InventoryRepository
	bookingRepo   BookingRepository
	pool          db.Pool
	clock         clock.Clock
}

func NewSweepCommands(
	holdRepo HoldRepository,
	inventoryRepo InventoryRepository,
	bookingRepo BookingRepository,
	pool db.Pool,
	clk clock.Clock,
) SweepCommands {
	return &sweepCommandsImpl{
		holdRepo:      holdRepo,
		inventoryRepo: inventoryRepo,
		bookingRepo:   bookingRepo,
		pool:          pool,
		clock:         clk,
	}
}

func (c *sweepCommandsImpl) ReleaseExpiredHolds(ctx context.Context) (int, error) {
	released := 0

	err := withTx(ctx, c.pool, func(tx pgx.Tx) error {
		expired, err := c.holdRepo.ListExpiredForUpdate(ctx, tx, c.clock.Now(), sweepBatchSize)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		for _, h := range expired {
			// A hold consumed between expiry and sweep is skipped by the
			// locked listing, so every hold here still owns held seats.
			if err := c.inventoryRepo.TransitionSeats(ctx, tx, h.ShowtimeID(), h.SeatIDs(), inventory.SeatHeld, inventory.SeatFree); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if err := c.holdRepo.Delete(ctx, tx, h.ID()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			released++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return released, nil
}

func (c *sweepCommandsImpl) CompleteElapsedBookings(ctx context.Context) (int64, error) {
	var completed int64

	err := withTx(ctx, c.pool, func(tx pgx.Tx) error {
		n, err := c.bookingRepo.CompleteElapsed(ctx, tx, c.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		completed = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	return completed, nil
}
