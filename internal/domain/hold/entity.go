// Package hold models a short-lived, exclusive claim on a set of seats for
// one booking attempt. A hold only changes seat statuses while it is live;
// it never owns the seats themselves.
package hold

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptySelection = errors.New("no seats selected")
	ErrTooManySeats   = errors.New("too many seats selected")
	ErrDuplicateSeat  = errors.New("duplicate seat in selection")
	ErrExpired        = errors.New("hold has expired")
	ErrOwnerMismatch  = errors.New("hold belongs to another customer")
)

const (
	// MaxSeats is the hard upper bound on seats per booking attempt.
	MaxSeats = 8

	// DefaultTTL is how long seats stay reserved without a confirmed sale.
	DefaultTTL = 10 * time.Minute
)

type Hold struct {
	id         uuid.UUID
	showtimeID uuid.UUID
	customerID uuid.UUID
	seatIDs    []string
	createdAt  time.Time
	expiresAt  time.Time
}

// New validates the seat selection and builds a hold expiring at now+ttl.
// Seat availability is not checked here; that happens when the inventory
// transition is applied, atomically with persisting the hold.
func New(showtimeID, customerID uuid.UUID, seatIDs []string, now time.Time, ttl time.Duration) (*Hold, error) {
	if len(seatIDs) == 0 {
		return nil, ErrEmptySelection
	}
	if len(seatIDs) > MaxSeats {
		return nil, ErrTooManySeats
	}

	seen := make(map[string]bool, len(seatIDs))
	for _, id := range seatIDs {
		if seen[id] {
			return nil, ErrDuplicateSeat
		}
		seen[id] = true
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	ids := make([]string, len(seatIDs))
	copy(ids, seatIDs)

	return &Hold{
		id:         uuid.New(),
		showtimeID: showtimeID,
		customerID: customerID,
		seatIDs:    ids,
		createdAt:  now,
		expiresAt:  now.Add(ttl),
	}, nil
}

func Reconstruct(id, showtimeID, customerID uuid.UUID, seatIDs []string, createdAt, expiresAt time.Time) *Hold {
	return &Hold{
		id:         id,
		showtimeID: showtimeID,
		customerID: customerID,
		seatIDs:    seatIDs,
		createdAt:  createdAt,
		expiresAt:  expiresAt,
	}
}

func (h *Hold) ID() uuid.UUID         { return h.id }
func (h *Hold) ShowtimeID() uuid.UUID { return h.showtimeID }
func (h *Hold) CustomerID() uuid.UUID { return h.customerID }
func (h *Hold) SeatIDs() []string     { return h.seatIDs }
func (h *Hold) CreatedAt() time.Time  { return h.createdAt }
func (h *Hold) ExpiresAt() time.Time  { return h.expiresAt }

func (h *Hold) IsExpired(now time.Time) bool {
	return !now.Before(h.expiresAt)
}

// ValidateConsumable checks that the hold may be converted into a booking
// by the given customer at the given time.
func (h *Hold) ValidateConsumable(customerID uuid.UUID, now time.Time) error {
	if h.customerID != customerID {
		return ErrOwnerMismatch
	}
	if h.IsExpired(now) {
		return ErrExpired
	}
	return nil
}
