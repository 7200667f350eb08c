package lib

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Catalog errors
var (
	ErrNotFound         = errors.New("product not found")
	ErrNoObservations   = errors.New("no observations for product")
	ErrStoreUnavailable = errors.New("observation store unavailable")
)

// Row-level errors
var (
	ErrMalformedObservation = errors.New("malformed observation")
)

// Write-path errors
var (
	ErrConflict = errors.New("conflict")
)

func MapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code { // SQLSTATE
		case "23505": // unique_violation
			return ErrConflict
		case "P0002": // no_data_found
			return ErrNotFound
		}
	}
	return err
}
