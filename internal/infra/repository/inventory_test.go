//go:build unit

package repository_test

import (
	"context"
	"testing"

	"cinepass/internal/domain/inventory"
	"cinepass/internal/infra"
	"cinepass/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execRecorder satisfies db.DBTX and captures the arguments of the last
// Exec call.
type execRecorder struct {
	args []any
	tag  pgconn.CommandTag
}

func (r *execRecorder) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	r.args = args
	return r.tag, nil
}

func (r *execRecorder) Query(context.Context, string, ...any) (pgx.Rows, error) {
	panic("unexpected Query")
}

func (r *execRecorder) QueryRow(context.Context, string, ...any) pgx.Row {
	panic("unexpected QueryRow")
}

func TestTransitionSeats_LocksSeatsInSortedOrder(t *testing.T) {
	repo := repository.NewInventoryRepository()
	rec := &execRecorder{tag: pgconn.NewCommandTag("UPDATE 3")}

	seatIDs := []string{"B2", "A1", "B1"}
	err := repo.TransitionSeats(context.Background(), rec, uuid.New(), seatIDs, inventory.SeatFree, inventory.SeatHeld)
	require.NoError(t, err)

	require.Len(t, rec.args, 4)
	assert.Equal(t, []string{"A1", "B1", "B2"}, rec.args[2])
	assert.Equal(t, []string{"B2", "A1", "B1"}, seatIDs, "caller's selection order must survive")
}

func TestTransitionSeats_ShortRowCountIsConflict(t *testing.T) {
	repo := repository.NewInventoryRepository()
	rec := &execRecorder{tag: pgconn.NewCommandTag("UPDATE 1")}

	err := repo.TransitionSeats(context.Background(), rec, uuid.New(), []string{"A1", "A2"}, inventory.SeatFree, inventory.SeatHeld)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindConflict))
}
