package response

import (
	"time"

	"cinepass/internal/domain/hold"

	"github.com/google/uuid"
)

type HoldResponse struct {
	ID         uuid.UUID `json:"id"`
	ShowtimeID uuid.UUID `json:"showtimeId"`
	SeatIDs    []string  `json:"seatIds"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

func FromHold(h *hold.Hold) *HoldResponse {
	return &HoldResponse{
		ID:         h.ID(),
		ShowtimeID: h.ShowtimeID(),
		SeatIDs:    h.SeatIDs(),
		ExpiresAt:  h.ExpiresAt(),
	}
}
