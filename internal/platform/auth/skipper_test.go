package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestAuthSkipper(t *testing.T) {
	e := echo.New()

	cases := []struct {
		path string
		want bool
	}{
		{"/health", true},
		{"/health/db", true},
		{"/api/patients", false},
		{"/api/doctors", false},
		{"/", false},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath(tc.path)
		if got := AuthSkipper(c); got != tc.want {
			t.Errorf("AuthSkipper(%s) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestIsPublicPath(t *testing.T) {
	if !IsPublicPath("/health/db") {
		t.Error("expected /health/db to be public")
	}
	if IsPublicPath("/api/medical-records") {
		t.Error("expected /api/medical-records to require auth")
	}
}

func TestJWTMiddleware_HealthSkipsAuth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/health")

	called := false
	handler := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}

	if err := JWTMiddleware(testSecret)(handler)(c); err != nil {
		t.Fatalf("expected health check to bypass auth, got %v", err)
	}
	if !called {
		t.Error("expected handler to run without a token")
	}
}

func TestJWTMiddleware_HealthDBSkipsAuth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health/db", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/health/db")

	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	if err := JWTMiddleware(testSecret)(handler)(c); err != nil {
		t.Fatalf("expected db health check to bypass auth, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
