package custom_error

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/lib/pq"
)

type Kind string

const (
	KindNotFound          Kind = "NOT_FOUND"
	KindConflict          Kind = "CONFLICT"
	KindConnectionFailure Kind = "CONNECTION_FAILURE"
	KindValidation        Kind = "VALIDATION_ERROR"
	KindInternal          Kind = "INTERNAL_ERROR"
)

// AppError carries the failure category up to the HTTP boundary.
type AppError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, strings.ToLower(string(e.Kind)))
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, op string, err error) error {
	return &AppError{Kind: kind, Op: op, Err: err}
}

func NotFound(op string, format string, args ...any) error {
	return New(KindNotFound, op, fmt.Errorf(format, args...))
}

func Conflict(op string, format string, args ...any) error {
	return New(KindConflict, op, fmt.Errorf(format, args...))
}

func Validation(op string, format string, args ...any) error {
	return New(KindValidation, op, fmt.Errorf(format, args...))
}

// WrapDBError classifies an error returned by the driver or database/sql.
func WrapDBError(op string, err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return New(kindForCode(string(pqErr.Code)), op, err)
	}

	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded):
		return New(KindConnectionFailure, op, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return New(KindConnectionFailure, op, err)
	}

	return New(KindInternal, op, err)
}

func kindForCode(code string) Kind {
	switch {
	case code == "23505", code == "23503":
		return KindConflict
	case code == "23502", strings.HasPrefix(code, "22"):
		return KindValidation
	case strings.HasPrefix(code, "08"), strings.HasPrefix(code, "57P0"), code == "53300":
		return KindConnectionFailure
	default:
		return KindInternal
	}
}

func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindConnectionFailure:
		return http.StatusServiceUnavailable
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
