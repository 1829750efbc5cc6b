package persistence

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Postgres error code for unique-constraint violations.
const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation on the named constraint. The pre-checks in the application
// layer are advisory only; the constraint is the real guarantee, so
// violations must surface as the matching domain conflict error and not
// as an opaque database error. Both the pgx driver used by GORM and the
// lib/pq driver used by the migration tooling are recognized.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == constraint
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode && pqErr.Constraint == constraint
	}
	return false
}
