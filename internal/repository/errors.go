// Package repository executes the API's SQL against Postgres. Statements
// are parameterized with $n placeholders; the dynamic SET and WHERE parts
// come from the sqlbuilder package, every static part is a constant here.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound reports that the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate reports a unique-constraint conflict, e.g. a taken
	// handle or username.
	ErrDuplicate = errors.New("already exists")
	// ErrBadCredentials reports a failed username/password check.
	ErrBadCredentials = errors.New("invalid username or password")
	// ErrEmployeeRange reports a company filter whose minEmployees
	// exceeds its maxEmployees.
	ErrEmployeeRange = errors.New("minEmployees cannot be greater than maxEmployees")
)

// Postgres SQLSTATE codes the repositories translate into sentinel errors.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func isSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
