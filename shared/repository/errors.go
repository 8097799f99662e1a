package repository

import (
	"errors"

	"github.com/lib/pq"
)

// IsPqError reports whether err carries a PostgreSQL error with the given SQLSTATE code.
func IsPqError(err error, code string) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}
