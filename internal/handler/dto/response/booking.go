package response

import (
	"time"

	"cinepass/internal/domain/booking"
	"cinepass/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	Reference        string    `json:"reference"`
	ShowtimeID       uuid.UUID `json:"showtimeId"`
	ShowtimeStartsAt time.Time `json:"showtimeStartsAt,omitempty"`
	SeatIDs          []string  `json:"seatIds"`
	SubtotalCents    int32     `json:"subtotalCents"`
	FeeCents         int32     `json:"feeCents"`
	TaxCents         int32     `json:"taxCents"`
	TotalCents       int32     `json:"totalCents"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID               uuid.UUID `json:"id"`
	Reference        string    `json:"reference"`
	ShowtimeID       uuid.UUID `json:"showtimeId"`
	ShowtimeStartsAt time.Time `json:"showtimeStartsAt"`
	SeatIDs          []string  `json:"seatIds"`
	TotalCents       int32     `json:"totalCents"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID(),
		Reference:     b.Reference(),
		ShowtimeID:    b.ShowtimeID(),
		SeatIDs:       b.SeatIDs(),
		SubtotalCents: b.SubtotalCents(),
		FeeCents:      b.FeeCents(),
		TaxCents:      b.TaxCents(),
		TotalCents:    b.TotalCents(),
		Status:        b.Status().String(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:               rm.ID,
		Reference:        rm.Reference,
		ShowtimeID:       rm.ShowtimeID,
		ShowtimeStartsAt: rm.ShowtimeStartsAt,
		SeatIDs:          rm.SeatIDs,
		SubtotalCents:    rm.SubtotalCents,
		FeeCents:         rm.FeeCents,
		TaxCents:         rm.TaxCents,
		TotalCents:       rm.TotalCents,
		Status:           rm.Status,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:               rm.ID,
		Reference:        rm.Reference,
		ShowtimeID:       rm.ShowtimeID,
		ShowtimeStartsAt: rm.ShowtimeStartsAt,
		SeatIDs:          rm.SeatIDs,
		TotalCents:       rm.TotalCents,
		Status:           rm.Status,
		CreatedAt:        rm.CreatedAt,
	}
}
