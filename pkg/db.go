package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgres error codes: https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
)

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// IsUniqueViolationError reports whether the error is a postgres
// unique constraint violation.
func IsUniqueViolationError(err error) bool {
	return isPgError(err, pgCodeUniqueViolation)
}

// IsForeignKeyViolationError reports whether the error is a postgres
// foreign key constraint violation.
func IsForeignKeyViolationError(err error) bool {
	return isPgError(err, pgCodeForeignKeyViolation)
}
