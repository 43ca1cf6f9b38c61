package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// UnitOfWork runs a multi-statement write atomically. Repositories built
// from tx see each other's writes. Recording a question upserts the subject
// row and rewrites its sessions and question texts, so a failure part way
// through must leave the previous progress intact.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

// TxUnitOfWork runs each unit in its own database/sql transaction.
type TxUnitOfWork struct {
	db *sql.DB
}

func NewUnitOfWork(database *sql.DB) *TxUnitOfWork {
	return &TxUnitOfWork{db: database}
}

func (u *TxUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	// A panic inside fn still releases the single :memory: connection.
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rolling back: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}
