//go:build unit

package builder

import (
	"time"

	"cinepass/internal/domain/booking"
	reqdto "cinepass/internal/handler/dto/request"
	"cinepass/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID               uuid.UUID
	Reference        string
	CustomerID       uuid.UUID
	ShowtimeID       uuid.UUID
	ShowtimeStartsAt time.Time
	SeatIDs          []string
	SeatPriceCents   []int32
	Status           booking.Status
	PaymentRef       string
	CreatedAt        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().Truncate(time.Second)
	return &BookingBuilder{
		ID:               uuid.New(),
		Reference:        "BK123456",
		CustomerID:       uuid.New(),
		ShowtimeID:       uuid.New(),
		ShowtimeStartsAt: now.Add(24 * time.Hour),
		SeatIDs:          []string{"A1", "A2"},
		SeatPriceCents:   []int32{1999, 1999},
		Status:           booking.StatusConfirmed,
		PaymentRef:       "txn_test_0001",
		CreatedAt:        now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	policy := booking.DefaultPolicy()

	var subtotal int32
	for _, p := range b.SeatPriceCents {
		subtotal += p
	}
	total := policy.TotalCents(subtotal)
	tax := total - subtotal - policy.FeeCents

	return booking.Reconstruct(
		b.ID, b.Reference, b.CustomerID, b.ShowtimeID, b.SeatIDs,
		subtotal, policy.FeeCents, tax, total,
		b.Status, b.PaymentRef, b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildConfirmRequestDTO() reqdto.ConfirmBookingRequest {
	return reqdto.ConfirmBookingRequest{
		PaymentToken: "tok_test_visa",
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	domainBooking := b.BuildDomain()
	return &queries.BookingView{
		ID:               domainBooking.ID(),
		Reference:        domainBooking.Reference(),
		CustomerID:       domainBooking.CustomerID(),
		ShowtimeID:       domainBooking.ShowtimeID(),
		ShowtimeStartsAt: b.ShowtimeStartsAt,
		SeatIDs:          domainBooking.SeatIDs(),
		SubtotalCents:    domainBooking.SubtotalCents(),
		FeeCents:         domainBooking.FeeCents(),
		TaxCents:         domainBooking.TaxCents(),
		TotalCents:       domainBooking.TotalCents(),
		Status:           domainBooking.Status().String(),
		CreatedAt:        domainBooking.CreatedAt(),
		UpdatedAt:        domainBooking.UpdatedAt(),
	}
}

func (b *BookingBuilder) BuildListItem() queries.BookingListItem {
	domainBooking := b.BuildDomain()
	return queries.BookingListItem{
		ID:               domainBooking.ID(),
		Reference:        domainBooking.Reference(),
		ShowtimeID:       domainBooking.ShowtimeID(),
		ShowtimeStartsAt: b.ShowtimeStartsAt,
		SeatIDs:          domainBooking.SeatIDs(),
		TotalCents:       domainBooking.TotalCents(),
		Status:           domainBooking.Status().String(),
		CreatedAt:        domainBooking.CreatedAt(),
	}
}
