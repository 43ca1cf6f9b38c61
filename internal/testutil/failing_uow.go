package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/tutor/internal/db"
)

// FailingExecUoW fails the FailOn-th write of a transaction with Err and
// rolls back. For a progress save the writes run in this order:
//
//	1  subject_progress upsert
//	2  progress_sessions delete
//	3  first progress_sessions insert
//	4  first progress_session_questions insert
//
// Reads are never counted. FailedQuery holds the statement that was refused.
type FailingExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error

	FailedQuery string
}

func (u *FailingExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting test transaction: %w", err)
	}

	wrapped := &failingExec{DBTX: tx, uow: u}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failingExec struct {
	db.DBTX
	writes atomic.Int32
	uow    *FailingExecUoW
}

func (f *failingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.writes.Add(1) == f.uow.FailOn {
		f.uow.FailedQuery = query
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
