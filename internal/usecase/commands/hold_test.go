//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"cinepass/internal/domain/hold"
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

type holdCommandsFixture struct {
	holdRepo      *portsmock.MockHoldRepository
	inventoryRepo *portsmock.MockInventoryRepository
	showtimeRepo  *portsmock.MockShowtimeRepository
	clock         *clock.MockClock
	cmds          commands.HoldCommands
}

func newHoldCommandsFixture(t *testing.T) *holdCommandsFixture {
	ctrl := gomock.NewController(t)
	f := &holdCommandsFixture{
		holdRepo:      portsmock.NewMockHoldRepository(ctrl),
		inventoryRepo: portsmock.NewMockInventoryRepository(ctrl),
		showtimeRepo:  portsmock.NewMockShowtimeRepository(ctrl),
		clock:         clock.NewMockClock(time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)),
	}
	f.cmds = commands.NewHoldCommands(f.holdRepo, f.inventoryRepo, f.showtimeRepo, testutil.StubPool{}, f.clock, hold.DefaultTTL)
	return f
}

func TestCreateHold(t *testing.T) {
	ctx := context.Background()
	showtimeID := uuid.New()
	customerID := uuid.New()
	seatIDs := []string{"A1", "A2"}

	t.Run("holds free seats and persists the hold", func(t *testing.T) {
		f := newHoldCommandsFixture(t)
		f.showtimeRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), showtimeID).
			Return(&commands.ShowtimeSnapshot{ID: showtimeID}, nil)
		f.inventoryRepo.EXPECT().CountSeats(gomock.Any(), gomock.Any(), showtimeID, seatIDs).
			Return(2, nil)
		f.inventoryRepo.EXPECT().TransitionSeats(gomock.Any(), gomock.Any(), showtimeID, seatIDs, inventory.SeatFree, inventory.SeatHeld).
			Return(nil)
		f.holdRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		h, err := f.cmds.CreateHold(ctx, showtimeID, customerID, seatIDs)
		require.NoError(t, err)
		assert.Equal(t, customerID, h.CustomerID())
		assert.Equal(t, f.clock.Now().Add(hold.DefaultTTL), h.ExpiresAt())
	})

	t.Run("overlapping hold loses with seat unavailable", func(t *testing.T) {
		f := newHoldCommandsFixture(t)
		f.showtimeRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), showtimeID).
			Return(&commands.ShowtimeSnapshot{ID: showtimeID}, nil)
		f.inventoryRepo.EXPECT().CountSeats(gomock.Any(), gomock.Any(), showtimeID, seatIDs).
			Return(2, nil)
		// A concurrent hold already flipped one of the seats, so the
		// guarded transition comes up short.
		f.inventoryRepo.EXPECT().TransitionSeats(gomock.Any(), gomock.Any(), showtimeID, seatIDs, inventory.SeatFree, inventory.SeatHeld).
			Return(infra.WrapRepoErr("seat not in expected status", nil, infra.KindConflict))

		_, err := f.cmds.CreateHold(ctx, showtimeID, customerID, seatIDs)
		assert.ErrorIs(t, err, commands.ErrSeatUnavailable)
	})

	t.Run("unknown seat is not found, not a conflict", func(t *testing.T) {
		f := newHoldCommandsFixture(t)
		f.showtimeRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), showtimeID).
			Return(&commands.ShowtimeSnapshot{ID: showtimeID}, nil)
		f.inventoryRepo.EXPECT().CountSeats(gomock.Any(), gomock.Any(), showtimeID, []string{"A1", "Z9"}).
			Return(1, nil)

		_, err := f.cmds.CreateHold(ctx, showtimeID, customerID, []string{"A1", "Z9"})
		assert.ErrorIs(t, err, commands.ErrSeatNotFound)
	})

	t.Run("unknown showtime is rejected before touching seats", func(t *testing.T) {
		f := newHoldCommandsFixture(t)
		f.showtimeRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), showtimeID).
			Return(nil, infra.WrapRepoErr("missing", nil, infra.KindNotFound))

		_, err := f.cmds.CreateHold(ctx, showtimeID, customerID, seatIDs)
		assert.ErrorIs(t, err, commands.ErrShowtimeNotFound)
	})

	t.Run("selection rules fail fast without repository calls", func(t *testing.T) {
		f := newHoldCommandsFixture(t)

		_, err := f.cmds.CreateHold(ctx, showtimeID, customerID, nil)
		assert.ErrorIs(t, err, commands.ErrEmptySelection)

		_, err = f.cmds.CreateHold(ctx, showtimeID, customerID, []string{"A1", "A1"})
		assert.ErrorIs(t, err, commands.ErrDuplicateSeat)

		nine := []string{"A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8", "A9"}
		_, err = f.cmds.CreateHold(ctx, showtimeID, customerID, nine)
		assert.ErrorIs(t, err, commands.ErrTooManySeats)
	})
}

func TestReleaseHold(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("frees the seats and deletes the hold", func(t *testing.T) {
		f := newHoldCommandsFixture(t)
		b := builder.NewHoldBuilder().With(func(b *builder.HoldBuilder) {
			b.CustomerID = customerID
		})
		h := b.BuildDomain()

		f.holdRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID).
			Return(h, nil)
		f.inventoryRepo.EXPECT().TransitionSeats(gomock.Any(), gomock.Any(), b.ShowtimeID, b.SeatIDs, inventory.SeatHeld, inventory.SeatFree).
			Return(nil)
		f.holdRepo.EXPECT().Delete(gomock.Any(), gomock.Any(), b.ID).
			Return(nil)

		require.NoError(t, f.cmds.ReleaseHold(ctx, b.ID, customerID))
	})

	t.Run("releasing a gone hold succeeds silently", func(t *testing.T) {
		f := newHoldCommandsFixture(t)
		holdID := uuid.New()

		f.holdRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), holdID).
			Return(nil, infra.WrapRepoErr("missing", nil, infra.KindNotFound))

		assert.NoError(t, f.cmds.ReleaseHold(ctx, holdID, customerID))
	})

	t.Run("another customer's hold stays held", func(t *testing.T) {
		f := newHoldCommandsFixture(t)
		b := builder.NewHoldBuilder()
		h := b.BuildDomain()

		f.holdRepo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID).
			Return(h, nil)

		err := f.cmds.ReleaseHold(ctx, b.ID, customerID)
		assert.ErrorIs(t, err, commands.ErrHoldOwnerMismatch)
	})
}
