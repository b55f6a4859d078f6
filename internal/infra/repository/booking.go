package repository

import (
	"context"
	"time"

	"cinepass/internal/domain/booking"
	"cinepass/internal/infra"
	"cinepass/internal/infra/db"
	"cinepass/internal/usecase/commands"

	"github.com/google/uuid"
)

type bookingRepository struct{}

func NewBookingRepository() commands.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (id, reference, customer_id, showtime_id, seat_ids,
			subtotal_cents, fee_cents, tax_cents, total_cents, status, payment_ref,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := tx.Exec(ctx, query,
		b.ID(), b.Reference(), b.CustomerID(), b.ShowtimeID(), b.SeatIDs(),
		b.SubtotalCents(), b.FeeCents(), b.TaxCents(), b.TotalCents(),
		string(b.Status()), b.PaymentRef(), b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*commands.BookingRecord, error) {
	const query = `
		SELECT b.id, b.reference, b.customer_id, b.showtime_id, b.seat_ids,
			b.subtotal_cents, b.fee_cents, b.tax_cents, b.total_cents, b.status,
			b.payment_ref, b.created_at, b.updated_at, s.starts_at
		FROM bookings b
		JOIN showtimes s ON s.id = b.showtime_id
		WHERE b.id = $1
		FOR UPDATE OF b`

	var (
		bookingID, customerID, showtimeID             uuid.UUID
		reference, status, paymentRef                 string
		seatIDs                                       []string
		subtotalCents, feeCents, taxCents, totalCents int32
		createdAt, updatedAt, showtimeStartsAt        time.Time
	)
	err := tx.QueryRow(ctx, query, id).Scan(
		&bookingID, &reference, &customerID, &showtimeID, &seatIDs,
		&subtotalCents, &feeCents, &taxCents, &totalCents, &status,
		&paymentRef, &createdAt, &updatedAt, &showtimeStartsAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	return &commands.BookingRecord{
		Booking: booking.Reconstruct(
			bookingID, reference, customerID, showtimeID, seatIDs,
			subtotalCents, feeCents, taxCents, totalCents,
			booking.Status(status), paymentRef, createdAt, updatedAt,
		),
		ShowtimeStartsAt: showtimeStartsAt,
	}, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to booking.Status, updatedAt time.Time) error {
	const query = `
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4`

	tag, err := tx.Exec(ctx, query, string(to), updatedAt, id, string(from))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not in expected status", nil, infra.KindConflict)
	}
	return nil
}

func (r *bookingRepository) CompleteElapsed(ctx context.Context, tx db.DBTX, now time.Time) (int64, error) {
	const query = `
		UPDATE bookings b
		SET status = 'completed', updated_at = $1
		FROM showtimes s
		WHERE s.id = b.showtime_id AND s.starts_at <= $1 AND b.status = 'confirmed'`

	tag, err := tx.Exec(ctx, query, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete elapsed bookings", err)
	}
	return tag.RowsAffected(), nil
}
