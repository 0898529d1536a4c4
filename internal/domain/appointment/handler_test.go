package appointment

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/caredesk/caredesk/internal/platform/web"
)

func TestHandler_ScheduleAppointment(t *testing.T) {
	e := echo.New()
	h := NewHandler(NewService(newMockRepo(), false))

	body := fmt.Sprintf(`{"patient_id":1,"doctor_id":2,"appointment_date":%q,"appointment_time":"09:15","reason":"follow-up"}`, futureDate())
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ScheduleAppointment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["message"] != "Appointment scheduled successfully" {
		t.Errorf("unexpected message: %v", resp["message"])
	}
	if resp["appointment_id"] == nil {
		t.Error("expected appointment_id in response")
	}
}

func TestHandler_ScheduleAppointment_MissingFields(t *testing.T) {
	e := echo.New()
	h := NewHandler(NewService(newMockRepo(), false))

	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(`{"patient_id":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ScheduleAppointment(c)
	var valErr *web.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestHandler_ListAppointments_Empty(t *testing.T) {
	e := echo.New()
	h := NewHandler(NewService(newMockRepo(), false))

	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListAppointments(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected empty JSON array, got %s", got)
	}
}
