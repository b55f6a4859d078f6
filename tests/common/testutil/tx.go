//go:build unit

// Package testutil provides small fakes shared across unit suites.
package testutil

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// StubTx is a pgx.Tx whose commit and rollback are no-ops. Any data-access
// method reaching the embedded nil interface panics, which is intended:
// unit tests route all data access through mocked repositories.
type StubTx struct {
	pgx.Tx
}

func (StubTx) Commit(context.Context) error { return nil }

// Rollback after a successful commit reports the tx closed, matching
// pgx's real behavior for the deferred-rollback pattern.
func (StubTx) Rollback(context.Context) error { return pgx.ErrTxClosed }

// StubPool satisfies db.Pool without a database. Begin hands out StubTx
// (or BeginErr when set); the plain query surface panics like StubTx.
type StubPool struct {
	BeginErr error
}

func (p StubPool) Begin(context.Context) (pgx.Tx, error) {
	if p.BeginErr != nil {
		return nil, p.BeginErr
	}
	return StubTx{}, nil
}

func (StubPool) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	panic("unexpected Exec on stub pool")
}

func (StubPool) Query(context.Context, string, ...any) (pgx.Rows, error) {
	panic("unexpected Query on stub pool")
}

func (StubPool) QueryRow(context.Context, string, ...any) pgx.Row {
	panic("unexpected QueryRow on stub pool")
}
