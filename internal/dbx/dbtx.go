// Package dbx holds the database/sql helpers shared by the local SQLite
// repositories.
package dbx

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
	sqlite3 "modernc.org/sqlite/lib"
)

// DBTX is the subset of database/sql the repositories use.
// Both *sql.DB and *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Busy retries: several console processes may share one session database.
const (
	busyRetries = 5
	busyBackoff = 10 * time.Millisecond
)

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back when it returns an error or panics; panics are
// re-raised after the rollback. A transaction that fails because the
// database is locked by another process is retried from the start with
// exponential backoff.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) error {
	backoff := retry.WithMaxRetries(busyRetries, retry.NewExponential(busyBackoff))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := runTx(ctx, db, opts, fn)
		if IsBusy(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func runTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(ctx, tx)
}

// IsBusy reports whether err is SQLite's SQLITE_BUSY or SQLITE_LOCKED,
// including their extended codes.
func IsBusy(err error) bool {
	var coded interface{ Code() int }
	if !errors.As(err, &coded) {
		return false
	}
	switch coded.Code() & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return true
	}
	return false
}
