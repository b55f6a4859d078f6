package repository

import (
	"context"
	"slices"

	"cinepass/internal/domain/inventory"
	"cinepass/internal/infra"
	"cinepass/internal/infra/db"
	"cinepass/internal/usecase/commands"

	"github.com/google/uuid"
)

type inventoryRepository struct{}

func NewInventoryRepository() commands.InventoryRepository {
	return &inventoryRepository{}
}

func (r *inventoryRepository) CountSeats(ctx context.Context, dbtx db.DBTX, showtimeID uuid.UUID, seatIDs []string) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM showtime_seats
		WHERE showtime_id = $1 AND seat_id = ANY($2)`

	var count int
	if err := dbtx.QueryRow(ctx, query, showtimeID, seatIDs).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count seats", err)
	}
	return count, nil
}

// TransitionSeats flips every listed seat from `from` to `to` in one
// statement gated on the prior status. When any seat is not in `from` the
// row count comes up short and KindConflict is returned; the caller's
// transaction rollback then undoes the seats that did match.
func (r *inventoryRepository) TransitionSeats(ctx context.Context, tx db.DBTX, showtimeID uuid.UUID, seatIDs []string, from, to inventory.SeatStatus) error {
	const query = `
		UPDATE showtime_seats
		SET status = $1
		WHERE showtime_id = $2 AND seat_id = ANY($3) AND status = $4`

	// Row locks are taken in array order; sorting keeps two overlapping
	// transitions from acquiring them in opposite order and deadlocking.
	ids := slices.Clone(seatIDs)
	slices.Sort(ids)

	tag, err := tx.Exec(ctx, query, string(to), showtimeID, ids, string(from))
	if err != nil {
		return infra.WrapRepoErr("failed to transition seats", err)
	}
	if tag.RowsAffected() != int64(len(seatIDs)) {
		return infra.WrapRepoErr("seat not in expected status", nil, infra.KindConflict)
	}
	return nil
}

func (r *inventoryRepository) SeatPrices(ctx context.Context, dbtx db.DBTX, showtimeID uuid.UUID, seatIDs []string) (map[string]int32, error) {
	const query = `
		SELECT seat_id, price_cents
		FROM showtime_seats
		WHERE showtime_id = $1 AND seat_id = ANY($2)`

	rows, err := dbtx.Query(ctx, query, showtimeID, seatIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query seat prices", err)
	}
	defer rows.Close()

	prices := make(map[string]int32, len(seatIDs))
	for rows.Next() {
		var seatID string
		var priceCents int32
		if err := rows.Scan(&seatID, &priceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan seat price", err)
		}
		prices[seatID] = priceCents
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read seat prices", err)
	}
	if len(prices) != len(seatIDs) {
		return nil, infra.WrapRepoErr("seat missing from showtime", nil, infra.KindNotFound)
	}

	return prices, nil
}
