package commands

import (
	"context"
	"time"

	"cinepass/internal/domain/booking"
	"cinepass/internal/domain/hold"
	"cinepass/internal/domain/inventory"
	"cinepass/internal/domain/pricing"
	"cinepass/internal/infra/db"

	"github.com/google/uuid"
)

// ShowtimeSnapshot is the slice of showtime state the command layer needs:
// pricing input and the start time for window checks.
type ShowtimeSnapshot struct {
	ID         uuid.UUID
	ScreenType pricing.ScreenType
	Capacity   int
	StartsAt   time.Time
}

type ShowtimeRepository interface {
	Create(ctx context.Context, tx db.DBTX, st *inventory.Showtime) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*ShowtimeSnapshot, error)
}

// InventoryRepository mutates seat statuses. TransitionSeats is
// all-or-nothing: it succeeds only if every listed seat was in the `from`
// status, and changes nothing otherwise (KindConflict).
type InventoryRepository interface {
	CountSeats(ctx context.Context, dbtx db.DBTX, showtimeID uuid.UUID, seatIDs []string) (int, error)
	TransitionSeats(ctx context.Context, tx db.DBTX, showtimeID uuid.UUID, seatIDs []string, from, to inventory.SeatStatus) error
	SeatPrices(ctx context.Context, dbtx db.DBTX, showtimeID uuid.UUID, seatIDs []string) (map[string]int32, error)
}

type HoldRepository interface {
	Create(ctx context.Context, tx db.DBTX, h *hold.Hold) error
	// FindByIDForUpdate row-locks the hold so consume, release and the
	// expiry sweep serialize on it.
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*hold.Hold, error)
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	// ListExpiredForUpdate locks up to limit expired holds, skipping ones
	// locked by a concurrent consume.
	ListExpiredForUpdate(ctx context.Context, tx db.DBTX, now time.Time, limit int) ([]*hold.Hold, error)
}

// BookingRecord pairs a reconstructed booking with the showtime start time
// needed for the cancellation-window guard.
type BookingRecord struct {
	Booking          *booking.Booking
	ShowtimeStartsAt time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*BookingRecord, error)
	// UpdateStatus applies a guarded transition; KindConflict when the
	// booking is no longer in the `from` status.
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to booking.Status, updatedAt time.Time) error
	// CompleteElapsed marks every still-confirmed booking of an already
	// started showtime completed and reports how many rows changed.
	CompleteElapsed(ctx context.Context, tx db.DBTX, now time.Time) (int64, error)
}

type PaymentResult struct {
	Confirmed      bool
	TransactionRef string
}

// PaymentGateway is the external payment collaborator. The core never
// sees card data, only a token and a confirmed/declined outcome.
type PaymentGateway interface {
	Charge(ctx context.Context, amountCents int32, token string) (*PaymentResult, error)
}
