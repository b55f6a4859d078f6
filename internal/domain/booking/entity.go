// Package booking is the durable ledger side of the flow: a booking is
// created from a consumed hold plus a confirmed payment, owns its own copy
// of the seat identifiers and amounts, and is never affected by later
// changes to the showtime's seat map.
package booking

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoSeats                  = errors.New("booking requires at least one seat")
	ErrCancellationWindowClosed = errors.New("cancellation window closed")
	ErrAlreadyCancelled         = errors.New("booking already cancelled")
	ErrAlreadyCompleted         = errors.New("booking already completed")
	ErrNotConfirmed             = errors.New("booking is not confirmed")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Policy carries the business constants of the ledger. Defaults match the
// published fee schedule.
type Policy struct {
	FeeCents           int32
	TaxPercent         int32
	CancellationWindow time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		FeeCents:           299,
		TaxPercent:         10,
		CancellationWindow: 2 * time.Hour,
	}
}

type Booking struct {
	id            uuid.UUID
	reference     string
	customerID    uuid.UUID
	showtimeID    uuid.UUID
	seatIDs       []string
	subtotalCents int32
	feeCents      int32
	taxCents      int32
	totalCents    int32
	status        Status
	paymentRef    string
	createdAt     time.Time
	updatedAt     time.Time
}

// New builds a confirmed booking from the seats of a consumed hold.
// Total = seat subtotal + fixed fee + tax on the subtotal, all in cents;
// the amounts are immutable once set.
func New(
	policy Policy,
	customerID, showtimeID uuid.UUID,
	seatIDs []string,
	seatPriceCents []int32,
	paymentRef string,
	now time.Time,
) (*Booking, error) {
	if len(seatIDs) == 0 {
		return nil, ErrNoSeats
	}
	if len(seatIDs) != len(seatPriceCents) {
		return nil, errors.New("seat ids and prices out of step")
	}

	var subtotal int32
	for _, p := range seatPriceCents {
		subtotal += p
	}
	tax := taxCents(subtotal, policy.TaxPercent)

	ids := make([]string, len(seatIDs))
	copy(ids, seatIDs)

	return &Booking{
		id:            uuid.New(),
		reference:     NewReference(),
		customerID:    customerID,
		showtimeID:    showtimeID,
		seatIDs:       ids,
		subtotalCents: subtotal,
		feeCents:      policy.FeeCents,
		taxCents:      tax,
		totalCents:    subtotal + policy.FeeCents + tax,
		status:        StatusConfirmed,
		paymentRef:    paymentRef,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	reference string,
	customerID, showtimeID uuid.UUID,
	seatIDs []string,
	subtotalCents, feeCents, taxCents, totalCents int32,
	status Status,
	paymentRef string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		reference:     reference,
		customerID:    customerID,
		showtimeID:    showtimeID,
		seatIDs:       seatIDs,
		subtotalCents: subtotalCents,
		feeCents:      feeCents,
		taxCents:      taxCents,
		totalCents:    totalCents,
		status:        status,
		paymentRef:    paymentRef,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// taxCents rounds half-up to a whole cent.
func taxCents(subtotal, percent int32) int32 {
	return int32((int64(subtotal)*int64(percent) + 50) / 100)
}

// TotalCents is the amount a customer is charged for the given seat
// subtotal under this policy. Used to price a hold before a booking exists.
func (p Policy) TotalCents(subtotalCents int32) int32 {
	return subtotalCents + p.FeeCents + taxCents(subtotalCents, p.TaxPercent)
}

// NewReference returns a human-readable booking code: "BK" plus six digits.
// Uniqueness is enforced by the ledger's storage, not by this generator.
func NewReference() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		// crypto/rand only fails when the platform's randomness source is
		// broken; time keeps the reference usable in that case.
		return fmt.Sprintf("BK%06d", time.Now().UnixNano()%1_000_000)
	}
	return fmt.Sprintf("BK%06d", n.Int64())
}

// Cancel transitions confirmed→cancelled, allowed only while more than the
// policy window remains before the showtime starts.
func (b *Booking) Cancel(policy Policy, showtimeStartsAt, now time.Time) error {
	switch b.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrAlreadyCompleted
	case StatusConfirmed:
	default:
		return ErrNotConfirmed
	}

	if showtimeStartsAt.Sub(now) <= policy.CancellationWindow {
		return ErrCancellationWindowClosed
	}

	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

// Complete transitions confirmed→completed after the showtime has passed.
// Completing an already completed booking is a no-op so sweeps stay
// idempotent.
func (b *Booking) Complete(now time.Time) error {
	switch b.status {
	case StatusCompleted:
		return nil
	case StatusCancelled:
		return ErrAlreadyCancelled
	}

	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) Reference() string     { return b.reference }
func (b *Booking) CustomerID() uuid.UUID { return b.customerID }
func (b *Booking) ShowtimeID() uuid.UUID { return b.showtimeID }
func (b *Booking) SeatIDs() []string     { return b.seatIDs }
func (b *Booking) SubtotalCents() int32  { return b.subtotalCents }
func (b *Booking) FeeCents() int32       { return b.feeCents }
func (b *Booking) TaxCents() int32       { return b.taxCents }
func (b *Booking) TotalCents() int32     { return b.totalCents }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) PaymentRef() string    { return b.paymentRef }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
