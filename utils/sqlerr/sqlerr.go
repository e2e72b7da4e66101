// Package sqlerr maps Postgres error codes to HTTP responses.
package sqlerr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var messages = map[string]string{
	"23505": "A record with the given unique field already exists",
	"23503": "Referenced record does not exist",
}

// HTTPStatus translates a storage error into an HTTP status and a
// user-facing message. Unknown errors are reported as 500.
func HTTPStatus(err error) (int, string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, "Record not found"
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		message := messages[pgErr.Code]
		if message == "" {
			message = pgErr.Message
		}
		switch pgErr.Code {
		case "23505", "23503":
			return http.StatusBadRequest, message
		case "22P02":
			return http.StatusUnprocessableEntity, message
		}
		return http.StatusInternalServerError, message
	}

	return http.StatusInternalServerError, err.Error()
}
