package db

import (
	"context"
	"database/sql"
)

// DBTX is the statement surface the progress and chat repositories use.
// Outside a UnitOfWork they hold the *sql.DB; inside WithinTx they are
// rebuilt around the *sql.Tx so every write lands in the same transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
