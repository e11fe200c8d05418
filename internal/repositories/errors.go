package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint violations translated from Postgres error codes so the
// service layer can react without knowing the driver.
var (
	// ErrUniqueViolation maps code 23505 (duplicate key).
	ErrUniqueViolation = errors.New("unique constraint violation")

	// ErrForeignKeyViolation maps code 23503 (referenced row missing).
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
)

func translateConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrUniqueViolation
		case "23503":
			return ErrForeignKeyViolation
		}
	}
	return err
}
