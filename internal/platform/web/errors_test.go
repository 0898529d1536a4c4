package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestIsFKViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "appointments_patient_id_fkey"}
	if !IsFKViolation(fmt.Errorf("delete patient: %w", fk)) {
		t.Error("expected wrapped FK violation to be detected")
	}
	if IsFKViolation(&pgconn.PgError{Code: "23514"}) {
		t.Error("expected CHECK violation not to count as FK violation")
	}
	if IsFKViolation(errors.New("connection reset")) {
		t.Error("expected plain error not to count as FK violation")
	}
	if IsFKViolation(nil) {
		t.Error("expected nil not to count as FK violation")
	}
}

func TestMapStorageError_NoRows(t *testing.T) {
	err := MapStorageError(pgx.ErrNoRows)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMapStorageError_FKViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "appointments_patient_id_fkey"}
	err := MapStorageError(fmt.Errorf("insert: %w", pgErr))

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestMapStorageError_CheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23514", ConstraintName: "patients_gender_check"}
	err := MapStorageError(pgErr)

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestMapStorageError_Passthrough(t *testing.T) {
	orig := errors.New("connection reset")
	if err := MapStorageError(orig); !errors.Is(err, orig) {
		t.Errorf("expected passthrough, got %v", err)
	}
}

func TestMapStorageError_Nil(t *testing.T) {
	if err := MapStorageError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func invokeHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := ErrorHandler(zerolog.Nop())
	h(err, c)
	return rec
}

func TestErrorHandler_NotFound(t *testing.T) {
	rec := invokeHandler(t, fmt.Errorf("patient: %w", ErrNotFound))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestErrorHandler_Conflict(t *testing.T) {
	rec := invokeHandler(t, &ConflictError{
		Msg:              "cannot delete patient with existing appointments or medical records",
		AppointmentCount: 2,
		RecordCount:      1,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["appointment_count"] != float64(2) {
		t.Errorf("expected appointment_count 2, got %v", body["appointment_count"])
	}
	if body["record_count"] != float64(1) {
		t.Errorf("expected record_count 1, got %v", body["record_count"])
	}
}

func TestErrorHandler_Validation(t *testing.T) {
	rec := invokeHandler(t, Validationf("first_name is required"))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec := invokeHandler(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestErrorHandler_OpaqueStorageFailure(t *testing.T) {
	rec := invokeHandler(t, errors.New("dial tcp: connection refused"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	// Internal detail must not leak
	if body["message"] != "server error" {
		t.Errorf("expected generic message, got %v", body["message"])
	}
}
