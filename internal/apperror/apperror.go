package apperror

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

type Code int

const (
	CodeValidation Code = iota
	CodeIntegrity
	CodeNotFound
	CodeInternal
)

const (
	msgIntegrity = "Database integrity error occurred."
	msgInternal  = "System is down. Please try again in a while."
)

// Error is the typed failure raised by domain operations. The handler layer
// maps each code to its HTTP status exactly once.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func Integrity(err error) *Error {
	return &Error{Code: CodeIntegrity, Message: msgIntegrity, Err: err}
}

func Internal(err error) *Error {
	return &Error{Code: CodeInternal, Message: msgInternal, Err: err}
}

// FromDB classifies a persistence-layer error. Foreign-key and uniqueness
// violations (SQLSTATE class 23) become integrity errors; missing rows become
// not-found; anything else stays internal.
func FromDB(err error) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, sql.ErrNoRows) {
		return NotFound("Record not found.")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == "23" {
		return Integrity(err)
	}

	return Internal(err)
}

// HTTPStatus resolves the status code and client-facing message for any
// error. Unclassified errors are reported as 500 with a generic message;
// detail stays server-side.
func HTTPStatus(err error) (int, string) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, msgInternal
	}

	switch appErr.Code {
	case CodeValidation, CodeIntegrity:
		return http.StatusBadRequest, appErr.Message
	case CodeNotFound:
		return http.StatusNotFound, appErr.Message
	default:
		return http.StatusInternalServerError, msgInternal
	}
}
