package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/ecommerce-api/internal/store"
)

// PostgreSQL integrity constraint violation codes.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
)

// constraintErrors classifies the integrity violations a store can hit.
var constraintErrors = map[string]struct {
	sentinel error
	kind     string
}{
	codeUniqueViolation:     {store.ErrDuplicate, "unique violation"},
	codeForeignKeyViolation: {store.ErrInvalidEntity, "foreign key violation"},
	codeCheckViolation:      {store.ErrInvalidEntity, "check constraint violation"},
	codeNotNullViolation:    {store.ErrInvalidEntity, "not null violation"},
}

// MapError classifies err as a store sentinel while keeping the driver error
// text for logs. Errors with no classification come back unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	c, ok := constraintErrors[pgErr.Code]
	if !ok {
		return err
	}

	target := pgErr.ConstraintName
	if target == "" {
		target = pgErr.ColumnName
	}
	if target == "" {
		return fmt.Errorf("%w: %s: %v", c.sentinel, c.kind, err)
	}
	return fmt.Errorf("%w: %s (%s): %v", c.sentinel, c.kind, target, err)
}

// IsForeignKeyViolation reports whether err is a foreign key violation, as
// raised when a user that orders still reference is deleted.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// CheckRowsAffected returns none when a write statement touched no rows.
// Callers pass the sentinel for their statement: a missing row for DELETE,
// an existing link for an ON CONFLICT DO NOTHING insert.
func CheckRowsAffected(result sql.Result, none error) error {
	if result == nil {
		return errors.New("no statement result")
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}
	if none == nil {
		return store.ErrNotFound
	}
	return none
}
