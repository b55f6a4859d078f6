package commands

import (
	"context"
	"errors"
	"time"

	"cinepass/internal/domain/hold"
	"cinepass/internal/domain/inventory"
	"cinepass/internal/infra"
	"cinepass/internal/infra/db"
	"cinepass/internal/pkg/clock"
	"cinepass/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrSeatNotFound      = errs.New("seat not found for showtime")
	ErrSeatUnavailable   = errs.New("seats no longer available")
	ErrEmptySelection    = errs.New("no seats selected")
	ErrTooManySeats      = errs.New("too many seats selected")
	ErrDuplicateSeat     = errs.New("duplicate seat in selection")
	ErrHoldNotFound      = errs.New("hold not found")
	ErrHoldExpired       = errs.New("hold expired")
	ErrHoldOwnerMismatch = errs.New("hold belongs to another customer")
)

type HoldCommands interface {
	CreateHold(ctx context.Context, showtimeID, customerID uuid.UUID, seatIDs []string) (*hold.Hold, error)
	// ReleaseHold is idempotent: releasing a hold that is gone or expired
	// succeeds silently.
	ReleaseHold(ctx context.Context, holdID, customerID uuid.UUID) error
}

type holdCommandsImpl struct {
	holdRepo      HoldRepository
	inventoryRepo InventoryRepository
	showtimeRepo  ShowtimeRepository
	pool          db.Pool
	clock         clock.Clock
	ttl           time.Duration
}

func NewHoldCommands(
	holdRepo HoldRepository,
	inventoryRepo InventoryRepository,
	showtimeRepo ShowtimeRepository,
	pool db.Pool,
	clk clock.Clock,
	ttl time.Duration,
) HoldCommands {
	return &holdCommandsImpl{
		holdRepo:      holdRepo,
		inventoryRepo: inventoryRepo,
		showtimeRepo:  showtimeRepo,
		pool:          pool,
		clock:         clk,
		ttl:           ttl,
	}
}

func (c *holdCommandsImpl) CreateHold(ctx context.Context, showtimeID, customerID uuid.UUID, seatIDs []string) (*hold.Hold, error) {
	newHold, err := hold.New(showtimeID, customerID, seatIDs, c.clock.Now(), c.ttl)
	if err != nil {
		return nil, markHoldValidation(err)
	}

	if _, err := c.showtimeRepo.FindByID(ctx, c.pool, showtimeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrShowtimeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	err = withTx(ctx, c.pool, func(tx pgx.Tx) error {
		// Distinguish unknown seats from contended ones before attempting
		// the transition.
		count, err := c.inventoryRepo.CountSeats(ctx, tx, showtimeID, seatIDs)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if count != len(seatIDs) {
			return ErrSeatNotFound
		}

		if err := c.inventoryRepo.TransitionSeats(ctx, tx, showtimeID, seatIDs, inventory.SeatFree, inventory.SeatHeld); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrSeatUnavailable
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := c.holdRepo.Create(ctx, tx, newHold); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return newHold, nil
}

func (c *holdCommandsImpl) ReleaseHold(ctx context.Context, holdID, customerID uuid.UUID) error {
	return withTx(ctx, c.pool, func(tx pgx.Tx) error {
		h, err := c.holdRepo.FindByIDForUpdate(ctx, tx, holdID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil // already released or expired
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if h.CustomerID() != customerID {
			return ErrHoldOwnerMismatch
		}

		// An expired hold may still occupy seats until the sweep runs;
		// release them now either way.
		if err := c.inventoryRepo.TransitionSeats(ctx, tx, h.ShowtimeID(), h.SeatIDs(), inventory.SeatHeld, inventory.SeatFree); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := c.holdRepo.Delete(ctx, tx, holdID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func markHoldValidation(err error) error {
	switch {
	case errors.Is(err, hold.ErrEmptySelection):
		return ErrEmptySelection
	case errors.Is(err, hold.ErrTooManySeats):
		return ErrTooManySeats
	case errors.Is(err, hold.ErrDuplicateSeat):
		return ErrDuplicateSeat
	default:
		return err
	}
}
