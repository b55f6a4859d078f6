package commands

import (
	"context"
	"errors"
	"log/slog"

	"cinepass/internal/infra/db"
	"cinepass/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
)

var ErrDatabaseOperationFailed = errs.New("database operation failed")

func withTx(ctx context.Context, pool db.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}
	return nil
}
