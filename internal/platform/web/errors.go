package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ErrNotFound signals that the requested entity does not exist. Services
// wrap it with the entity name; handlers translate it to a 404.
var ErrNotFound = errors.New("not found")

// ValidationError reports a missing or malformed field on a write request.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ConflictError reports a delete blocked by dependent rows. The counts are
// part of the wire contract and are surfaced in the response body.
type ConflictError struct {
	Msg              string
	AppointmentCount int
	RecordCount      int
}

func (e *ConflictError) Error() string { return e.Msg }

// postgres error codes
const (
	pgFKViolation    = "23503"
	pgCheckViolation = "23514"
)

// IsFKViolation reports whether err is a foreign-key violation. Callers on
// delete paths use this to distinguish "dependent rows reference this row"
// from the create-path meaning handled by MapStorageError.
func IsFKViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgFKViolation
}

// MapStorageError converts low-level pgx errors into the service taxonomy.
// Row absence becomes ErrNotFound. Referential-integrity and CHECK failures
// become ValidationErrors so the caller sees a 400 rather than an opaque 500.
// Anything else passes through and is treated as a storage failure.
func MapStorageError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgFKViolation:
			return Validationf("referenced row does not exist: %s", pgErr.ConstraintName)
		case pgCheckViolation:
			return Validationf("value rejected by constraint: %s", pgErr.ConstraintName)
		}
	}
	return err
}

// ErrorHandler returns an echo HTTPErrorHandler that maps the failure
// taxonomy onto HTTP statuses: NotFound->404, Conflict->400 with dependent
// counts, Validation->400, echo's own HTTP errors pass through, and
// everything else collapses to an opaque 500.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			valErr  *ValidationError
			conflic *ConflictError
			httpErr *echo.HTTPError
		)

		switch {
		case errors.Is(err, ErrNotFound):
			_ = c.JSON(http.StatusNotFound, map[string]interface{}{"message": err.Error()})
		case errors.As(err, &conflic):
			_ = c.JSON(http.StatusBadRequest, map[string]interface{}{
				"message":           conflic.Msg,
				"appointment_count": conflic.AppointmentCount,
				"record_count":      conflic.RecordCount,
			})
		case errors.As(err, &valErr):
			_ = c.JSON(http.StatusBadRequest, map[string]interface{}{"message": valErr.Msg})
		case errors.As(err, &httpErr):
			msg := fmt.Sprintf("%v", httpErr.Message)
			_ = c.JSON(httpErr.Code, map[string]interface{}{"message": msg})
		default:
			rid, _ := c.Get("request_id").(string)
			logger.Error().
				Err(err).
				Str("request_id", rid).
				Str("path", c.Request().URL.Path).
				Msg("storage failure")
			_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "server error"})
		}
	}
}
