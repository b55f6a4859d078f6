//go:build unit

package builder

import (
	"time"

	"cinepass/internal/domain/hold"
	reqdto "cinepass/internal/handler/dto/request"

	"github.com/google/uuid"
)

type HoldBuilder struct {
	ID         uuid.UUID
	ShowtimeID uuid.UUID
	CustomerID uuid.UUID
	SeatIDs    []string
	CreatedAt  time.Time
	TTL        time.Duration
}

func NewHoldBuilder() *HoldBuilder {
	return &HoldBuilder{
		ID:         uuid.New(),
		ShowtimeID: uuid.New(),
		CustomerID: uuid.New(),
		SeatIDs:    []string{"A1", "A2"},
		CreatedAt:  time.Now().Truncate(time.Second),
		TTL:        hold.DefaultTTL,
	}
}

func (b *HoldBuilder) With(mutate func(*HoldBuilder)) *HoldBuilder {
	mutate(b)
	return b
}

func (b *HoldBuilder) BuildDomain() *hold.Hold {
	return hold.Reconstruct(b.ID, b.ShowtimeID, b.CustomerID, b.SeatIDs, b.CreatedAt, b.CreatedAt.Add(b.TTL))
}

func (b *HoldBuilder) BuildCreateRequestDTO() reqdto.CreateHoldRequest {
	return reqdto.CreateHoldRequest{
		SeatIDs: b.SeatIDs,
	}
}
