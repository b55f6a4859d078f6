package repository

import (
	"context"
	"time"

	"cinepass/internal/domain/hold"
	"cinepass/internal/infra"
	"cinepass/internal/infra/db"
	"cinepass/internal/usecase/commands"

	"github.com/google/uuid"
)

type holdRepository struct{}

func NewHoldRepository() commands.HoldRepository {
	return &holdRepository{}
}

func (r *holdRepository) Create(ctx context.Context, tx db.DBTX, h *hold.Hold) error {
	const query = `
		INSERT INTO seat_holds (id, showtime_id, customer_id, seat_ids, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query,
		h.ID(), h.ShowtimeID(), h.CustomerID(), h.SeatIDs(), h.CreatedAt(), h.ExpiresAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert hold", err)
	}
	return nil
}

func (r *holdRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*hold.Hold, error) {
	const query = `
		SELECT id, showtime_id, customer_id, seat_ids, created_at, expires_at
		FROM seat_holds
		WHERE id = $1
		FOR UPDATE`

	h, err := scanHold(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find hold", err)
	}
	return h, nil
}

func (r *holdRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM seat_holds WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete hold", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hold not found", nil, infra.KindNotFound)
	}
	return nil
}

// ListExpiredForUpdate locks expired holds with SKIP LOCKED so the sweep
// never blocks behind, or deadlocks with, an in-flight confirm holding the
// same row.
func (r *holdRepository) ListExpiredForUpdate(ctx context.Context, tx db.DBTX, now time.Time, limit int) ([]*hold.Hold, error) {
	const query = `
		SELECT id, showtime_id, customer_id, seat_ids, created_at, expires_at
		FROM seat_holds
		WHERE expires_at <= $1
		ORDER BY expires_at
		LIMIT $2
		FOR UPDATE SKIP LOCKED`

	rows, err := tx.Query(ctx, query, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query expired holds", err)
	}
	defer rows.Close()

	var holds []*hold.Hold
	for rows.Next() {
		h, err := scanHold(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan hold", err)
		}
		holds = append(holds, h)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read expired holds", err)
	}

	return holds, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHold(row rowScanner) (*hold.Hold, error) {
	var (
		id, showtimeID, customerID uuid.UUID
		seatIDs                    []string
		createdAt, expiresAt       time.Time
	)
	if err := row.Scan(&id, &showtimeID, &customerID, &seatIDs, &createdAt, &expiresAt); err != nil {
		return nil, err
	}
	return hold.Reconstruct(id, showtimeID, customerID, seatIDs, createdAt, expiresAt), nil
}
