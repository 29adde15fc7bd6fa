package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/ecommerce-api/internal/platform/logger"
	"github.com/phrazzld/ecommerce-api/internal/redact"
)

// TxFn is the unit of work a request runs against the database.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction gives fn a transaction scoped to one service call. The
// transaction commits when fn returns nil. An error or a panic rolls it back;
// panics are re-raised once the rollback has run.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	log := logger.FromContextOrDefault(ctx, slog.Default())

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", slog.String("error", redact.Error(err)))
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = rollback(log, tx, fmt.Errorf("panic: %v", p))
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return rollback(log, tx, err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", slog.String("error", redact.Error(err)))
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	log.Debug("transaction committed")
	return nil
}

// rollback aborts tx because of cause. cause is always returned, joined with
// the rollback failure when there is one.
func rollback(log *slog.Logger, tx *sql.Tx, cause error) error {
	rbErr := tx.Rollback()
	if rbErr == nil || errors.Is(rbErr, sql.ErrTxDone) {
		log.Debug("transaction rolled back", slog.String("cause", redact.Error(cause)))
		return cause
	}

	log.Error("failed to roll back transaction",
		slog.String("error", redact.Error(rbErr)),
		slog.String("cause", redact.Error(cause)))
	return errors.Join(cause, fmt.Errorf("rollback failed: %w", rbErr))
}
