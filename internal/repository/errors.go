package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate is returned by in-memory implementations to signal a
// uniqueness conflict; Postgres surfaces it as a unique-violation error.
var ErrDuplicate = errors.New("duplicate record")

const uniqueViolationCode = "23505"

// IsDuplicate reports whether err is a uniqueness conflict. The store's
// unique constraints are the canonical duplicate signal.
func IsDuplicate(err error) bool {
	if errors.Is(err, ErrDuplicate) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
