package queries

import (
	"context"

	"cinepass/internal/infra"
	"cinepass/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	FindBookingByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListBookingsByCustomer(ctx context.Context, customerID uuid.UUID) ([]BookingListItem, error)
}

type BookingQueries interface {
	// GetBooking is owner-scoped: a booking that exists but belongs to a
	// different customer is reported as not found.
	GetBooking(ctx context.Context, id, customerID uuid.UUID) (*BookingView, error)
	ListCustomerBookings(ctx context.Context, customerID uuid.UUID) ([]BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id, customerID uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindBookingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	if view.CustomerID != customerID {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListCustomerBookings(ctx context.Context, customerID uuid.UUID) ([]BookingListItem, error) {
	items, err := q.store.ListBookingsByCustomer(ctx, customerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return items, nil
}
