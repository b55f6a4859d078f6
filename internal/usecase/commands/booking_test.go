//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"cinepass/internal/domain/booking"
	"cinepass/internal/domain/inventory"
	"cinepass/internal/infra"
	"cinepass/internal/pkg/clock"
	"cinepass/internal/usecase/commands"
	"cinepass/tests/common/builder"
	"cinepass/tests/common/testutil"
	portsmock "cinepass/tests/mock/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingCommandsFixture struct {
	bookingRepo   *portsmock.MockBookingRepository
	holdRepo      *portsmock.MockHoldRepository
	inventoryRepo *portsmock.MockInventoryRepository
	payments      *portsmock.MockPaymentGateway
	clock         *clock.MockClock
	cmds          commands.BookingCommands
}

func newBookingCommandsFixture(t *testing.T) *bookingCommandsFixture {
	ctrl := gomock.NewController(t)
	f := &bookingCommandsFixture{
		bookingRepo:   portsmock.NewMockBookingRepository(ctrl),
		holdRepo:      portsmock.NewMockHoldRepository(ctrl),
		inventoryRepo: portsmock.NewMockInventoryRepository(ctrl),
		payments:      portsmock.NewMockPaymentGateway(ctrl),
		clock:         clock.NewMockClock(time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)),
	}
	f.cmds = commands.NewBookingCommands(f.bookingRepo, f.holdRepo, f.inventoryRepo, f.payments, testutil.StubPool{}, f.clock, booking.DefaultPolicy())
	return f
}

// liveHold builds a hold owned by customerID that is unexpired relative to
// the fixture clock.
func liveHold(f *bookingCommandsFixture, customerID uuid.UUID) *builder.HoldBuilder {
	return builder.NewHoldBuilder().With(func(b *builder.HoldBuilder) {
		b.CustomerID = customerID
		b.CreatedAt = f.clock.Now().Add(-time.Minute)
	})
}

func TestConfirmBooking(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	prices := map[string]int32{"A1": 1999, "A2": 1999}

	t.Run("charges the hold total and records the booking", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		hb := liveHold(f, customerID)
		h := hb.BuildDomain()

		f.holdRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), hb.ID).
			Return(h, nil).Times(2)
		f.inventoryRepo.EXPECT().SeatPrices(gomock.Any(), gomock.Any(), hb.ShowtimeID, hb.SeatIDs).
			Return(prices, nil)
		// 2x1999 subtotal + 299 fee + 400 tax.
		f.payments.EXPECT().Charge(gomock.Any(), int32(4697), "tok_test_visa").
			Return(&commands.PaymentResult{Confirmed: true, TransactionRef: "txn_42"}, nil)
		f.holdRepo.EXPECT().Delete(gomock.Any(), gomock.Any(), hb.ID).
			Return(nil)
		f.inventoryRepo.EXPECT().TransitionSeats(gomock.Any(), gomock.Any(), hb.ShowtimeID, hb.SeatIDs, inventory.SeatHeld, inventory.SeatSold).
			Return(nil)
		f.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		b, err := f.cmds.ConfirmBooking(ctx, hb.ID, customerID, "tok_test_visa")
		require.NoError(t, err)
		assert.Equal(t, int32(3998), b.SubtotalCents())
		assert.Equal(t, int32(4697), b.TotalCents())
		assert.Equal(t, "txn_42", b.PaymentRef())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("declined payment leaves the hold intact", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		hb := liveHold(f, customerID)

		f.holdRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), hb.ID).
			Return(hb.BuildDomain(), nil)
		f.inventoryRepo.EXPECT().SeatPrices(gomock.Any(), gomock.Any(), hb.ShowtimeID, hb.SeatIDs).
			Return(prices, nil)
		f.payments.EXPECT().Charge(gomock.Any(), int32(4697), "tok_declined").
			Return(&commands.PaymentResult{Confirmed: false}, nil)
		// No Delete, TransitionSeats or Create expectations: the hold and
		// its seats must survive for a retry until expiry.

		_, err := f.cmds.ConfirmBooking(ctx, hb.ID, customerID, "tok_declined")
		assert.ErrorIs(t, err, commands.ErrPaymentNotConfirmed)
	})

	t.Run("double submit loses the hold between charge and consume", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		hb := liveHold(f, customerID)

		first := f.holdRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), hb.ID).
			Return(hb.BuildDomain(), nil)
		f.inventoryRepo.EXPECT().SeatPrices(gomock.Any(), gomock.Any(), hb.ShowtimeID, hb.SeatIDs).
			Return(prices, nil)
		f.payments.EXPECT().Charge(gomock.Any(), int32(4697), "tok_test_visa").
			Return(&commands.PaymentResult{Confirmed: true, TransactionRef: "txn_43"}, nil)
		f.holdRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), hb.ID).
			Return(nil, infra.WrapRepoErr("missing", nil, infra.KindNotFound)).
			After(first)

		_, err := f.cmds.ConfirmBooking(ctx, hb.ID, customerID, "tok_test_visa")
		assert.ErrorIs(t, err, commands.ErrHoldNotFound)
	})

	t.Run("expired hold cannot be confirmed", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		hb := builder.NewHoldBuilder().With(func(b *builder.HoldBuilder) {
			b.CustomerID = customerID
			b.CreatedAt = f.clock.Now().Add(-time.Hour)
		})

		f.holdRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), hb.ID).
			Return(hb.BuildDomain(), nil)

		_, err := f.cmds.ConfirmBooking(ctx, hb.ID, customerID, "tok_test_visa")
		assert.ErrorIs(t, err, commands.ErrHoldExpired)
	})

	t.Run("another customer's hold is forbidden", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		hb := liveHold(f, uuid.New())

		f.holdRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), hb.ID).
			Return(hb.BuildDomain(), nil)

		_, err := f.cmds.ConfirmBooking(ctx, hb.ID, customerID, "tok_test_visa")
		assert.ErrorIs(t, err, commands.ErrHoldOwnerMismatch)
	})

	t.Run("seats lost at consume time surface as unavailable", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		hb := liveHold(f, customerID)

		f.holdRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), hb.ID).
			Return(hb.BuildDomain(), nil).Times(2)
		f.inventoryRepo.EXPECT().SeatPrices(gomock.Any(), gomock.Any(), hb.ShowtimeID, hb.SeatIDs).
			Return(prices, nil)
		f.payments.EXPECT().Charge(gomock.Any(), int32(4697), "tok_test_visa").
			Return(&commands.PaymentResult{Confirmed: true, TransactionRef: "txn_44"}, nil)
		f.holdRepo.EXPECT().Delete(gomock.Any(), gomock.Any(), hb.ID).
			Return(nil)
		f.inventoryRepo.EXPECT().TransitionSeats(gomock.Any(), gomock.Any(), hb.ShowtimeID, hb.SeatIDs, inventory.SeatHeld, inventory.SeatSold).
			Return(infra.WrapRepoErr("seat not in expected status", nil, infra.KindConflict))

		_, err := f.cmds.ConfirmBooking(ctx, hb.ID, customerID, "tok_test_visa")
		assert.ErrorIs(t, err, commands.ErrSeatUnavailable)
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("reverts the seats to free and marks the booking cancelled", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		bb := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.CustomerID = customerID
		})
		record := &commands.BookingRecord{
			Booking:          bb.BuildDomain(),
			ShowtimeStartsAt: f.clock.Now().Add(24 * time.Hour),
		}

		f.bookingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), bb.ID).
			Return(record, nil)
		f.bookingRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), bb.ID, booking.StatusConfirmed, booking.StatusCancelled, gomock.Any()).
			Return(nil)
		f.inventoryRepo.EXPECT().TransitionSeats(gomock.Any(), gomock.Any(), bb.ShowtimeID, bb.SeatIDs, inventory.SeatSold, inventory.SeatFree).
			Return(nil)

		cancelled, err := f.cmds.CancelBooking(ctx, bb.ID, customerID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, cancelled.Status())
	})

	t.Run("inside the window nothing changes", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		bb := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.CustomerID = customerID
		})
		record := &commands.BookingRecord{
			Booking:          bb.BuildDomain(),
			ShowtimeStartsAt: f.clock.Now().Add(time.Hour),
		}

		f.bookingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), bb.ID).
			Return(record, nil)

		_, err := f.cmds.CancelBooking(ctx, bb.ID, customerID)
		assert.ErrorIs(t, err, commands.ErrCancellationWindowClosed)
	})

	t.Run("another customer's booking reads as not found", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		bb := builder.NewBookingBuilder()
		record := &commands.BookingRecord{
			Booking:          bb.BuildDomain(),
			ShowtimeStartsAt: f.clock.Now().Add(24 * time.Hour),
		}

		f.bookingRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), bb.ID).
			Return(record, nil)

		_, err := f.cmds.CancelBooking(ctx, bb.ID, customerID)
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}
