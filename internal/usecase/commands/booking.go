package commands

import (
	"context"
	"errors"

	"cinepass/internal/domain/booking"
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
	ErrPaymentNotConfirmed      = errs.New("payment not confirmed")
	ErrBookingNotFound          = errs.New("booking not found")
	ErrCancellationWindowClosed = errs.New("cancellation window closed")
	ErrAlreadyCancelled         = errs.New("booking already cancelled")
	ErrAlreadyCompleted         = errs.New("booking already completed")
)

type BookingCommands interface {
	// ConfirmBooking converts an unexpired hold plus a successful payment
	// into a durable booking. Consuming the hold and marking its seats
	// sold happen in one transaction; a failed payment leaves the hold
	// intact until its own expiry so the customer can retry.
	ConfirmBooking(ctx context.Context, holdID, customerID uuid.UUID, paymentToken string) (*booking.Booking, error)
	CancelBooking(ctx context.Context, bookingID, customerID uuid.UUID) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	bookingRepo   BookingRepository
	holdRepo      HoldRepository
	inventoryRepo InventoryRepository
	payments      PaymentGateway
	pool          db.Pool
	clock         clock.Clock
	policy        booking.Policy
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	holdRepo HoldRepository,
	inventoryRepo InventoryRepository,
	payments PaymentGateway,
	pool db.Pool,
	clk clock.Clock,
	policy booking.Policy,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:   bookingRepo,
		holdRepo:      holdRepo,
		inventoryRepo: inventoryRepo,
		payments:      payments,
		pool:          pool,
		clock:         clk,
		policy:        policy,
	}
}

func (c *bookingCommandsImpl) ConfirmBooking(ctx context.Context, holdID, customerID uuid.UUID, paymentToken string) (*booking.Booking, error) {
	// Price the hold and charge outside the transaction: the gateway call
	// is slow and must not pin row locks. The hold is re-validated under
	// lock before anything is committed.
	h, prices, err := c.priceHold(ctx, holdID, customerID)
	if err != nil {
		return nil, err
	}

	seatIDs := h.SeatIDs()
	seatPrices := make([]int32, len(seatIDs))
	var subtotal int32
	for i, id := range seatIDs {
		seatPrices[i] = prices[id]
		subtotal += prices[id]
	}

	result, err := c.payments.Charge(ctx, c.policy.TotalCents(subtotal), paymentToken)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentNotConfirmed)
	}
	if !result.Confirmed {
		return nil, ErrPaymentNotConfirmed
	}

	finalBooking, err := booking.New(c.policy, customerID, h.ShowtimeID(), seatIDs, seatPrices, result.TransactionRef, c.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to build booking")
	}

	err = withTx(ctx, c.pool, func(tx pgx.Tx) error {
		locked, err := c.holdRepo.FindByIDForUpdate(ctx, tx, holdID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Already consumed or swept. Double submissions land here.
				return ErrHoldNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if validateErr := locked.ValidateConsumable(customerID, c.clock.Now()); validateErr != nil {
			return markHoldConsume(validateErr)
		}

		if err := c.holdRepo.Delete(ctx, tx, holdID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := c.inventoryRepo.TransitionSeats(ctx, tx, locked.ShowtimeID(), locked.SeatIDs(), inventory.SeatHeld, inventory.SeatSold); err != nil {
			// Rolls back the hold deletion too, so seats are never left
			// neither held nor sold.
			if infra.IsKind(err, infra.KindConflict) {
				return ErrSeatUnavailable
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := c.bookingRepo.Create(ctx, tx, finalBooking); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return finalBooking, nil
}

// priceHold looks up the hold and resolves its per-seat prices in a short
// transaction released before the gateway call.
func (c *bookingCommandsImpl) priceHold(ctx context.Context, holdID, customerID uuid.UUID) (*hold.Hold, map[string]int32, error) {
	var h *hold.Hold
	var prices map[string]int32

	err := withTx(ctx, c.pool, func(tx pgx.Tx) error {
		found, err := c.holdRepo.FindByIDForUpdate(ctx, tx, holdID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrHoldNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if validateErr := found.ValidateConsumable(customerID, c.clock.Now()); validateErr != nil {
			return markHoldConsume(validateErr)
		}

		prices, err = c.inventoryRepo.SeatPrices(ctx, tx, found.ShowtimeID(), found.SeatIDs())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		h = found
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return h, prices, nil
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID, customerID uuid.UUID) (*booking.Booking, error) {
	var cancelled *booking.Booking

	err := withTx(ctx, c.pool, func(tx pgx.Tx) error {
		record, err := c.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		b := record.Booking
		if b.CustomerID() != customerID {
			// Bookings are private; don't reveal that the id exists.
			return ErrBookingNotFound
		}

		if cancelErr := b.Cancel(c.policy, record.ShowtimeStartsAt, c.clock.Now()); cancelErr != nil {
			return markCancelError(cancelErr)
		}

		if err := c.bookingRepo.UpdateStatus(ctx, tx, b.ID(), booking.StatusConfirmed, booking.StatusCancelled, b.UpdatedAt()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := c.inventoryRepo.TransitionSeats(ctx, tx, b.ShowtimeID(), b.SeatIDs(), inventory.SeatSold, inventory.SeatFree); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		cancelled = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cancelled, nil
}

func markHoldConsume(err error) error {
	switch {
	case errors.Is(err, hold.ErrExpired):
		return ErrHoldExpired
	case errors.Is(err, hold.ErrOwnerMismatch):
		return ErrHoldOwnerMismatch
	default:
		return err
	}
}

func markCancelError(err error) error {
	switch {
	case errors.Is(err, booking.ErrCancellationWindowClosed):
		return ErrCancellationWindowClosed
	case errors.Is(err, booking.ErrAlreadyCancelled):
		return ErrAlreadyCancelled
	case errors.Is(err, booking.ErrAlreadyCompleted):
		return ErrAlreadyCompleted
	default:
		return err
	}
}
