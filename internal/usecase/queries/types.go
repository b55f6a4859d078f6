package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SeatView struct {
	ID         string `json:"id"`
	Row        string `json:"row"`
	Number     int    `json:"number"`
	Class      string `json:"class"`
	Status     string `json:"status"`
	PriceCents int32  `json:"price_cents"`
}

type ShowtimeView struct {
	ID             uuid.UUID `json:"id"`
	MovieID        uuid.UUID `json:"movie_id"`
	CinemaID       uuid.UUID `json:"cinema_id"`
	ScreenID       uuid.UUID `json:"screen_id"`
	ScreenType     string    `json:"screen_type"`
	Capacity       int       `json:"capacity"`
	StartsAt       time.Time `json:"starts_at"`
	BasePriceCents int32     `json:"base_price_cents"`
	CreatedAt      time.Time `json:"created_at"`
}

type HoldView struct {
	ID         uuid.UUID `json:"id"`
	ShowtimeID uuid.UUID `json:"showtime_id"`
	SeatIDs    []string  `json:"seat_ids"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type BookingView struct {
	ID               uuid.UUID `json:"id"`
	Reference        string    `json:"reference"`
	CustomerID       uuid.UUID `json:"customer_id"`
	ShowtimeID       uuid.UUID `json:"showtime_id"`
	ShowtimeStartsAt time.Time `json:"showtime_starts_at"`
	SeatIDs          []string  `json:"seat_ids"`
	SubtotalCents    int32     `json:"subtotal_cents"`
	FeeCents         int32     `json:"fee_cents"`
	TaxCents         int32     `json:"tax_cents"`
	TotalCents       int32     `json:"total_cents"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID               uuid.UUID `json:"id"`
	Reference        string    `json:"reference"`
	ShowtimeID       uuid.UUID `json:"showtime_id"`
	ShowtimeStartsAt time.Time `json:"showtime_starts_at"`
	SeatIDs          []string  `json:"seat_ids"`
	TotalCents       int32     `json:"total_cents"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}
