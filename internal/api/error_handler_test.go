package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"user exists", domain.ErrUserExists, http.StatusBadRequest, "email already registered"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"too many login attempts", domain.ErrTooManyLoginAttempts, http.StatusTooManyRequests, "too many login attempts"},
		{"sweet not found", domain.ErrSweetNotFound, http.StatusNotFound, "sweet not found"},
		{"out of stock", domain.ErrOutOfStock, http.StatusBadRequest, "sweet is out of stock"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := renderError(t, tt.err)
			if code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, code)
			}
			if msg != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, msg)
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("store: findOneAndUpdate"), domain.ErrOutOfStock)
	code, msg := renderError(t, wrapped)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != "sweet is out of stock" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestHTTPErrorHandler_InvalidInput(t *testing.T) {
	code, msg := renderError(t, domain.ErrInvalidInput)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg == "" {
		t.Fatal("expected a message")
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusForbidden, "admin access required"))
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
	if msg != "admin access required" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	code, msg := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal details must not leak, got %q", msg)
	}
	if strings.Contains(msg, "mongo") {
		t.Fatalf("internal details leaked: %q", msg)
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Simulate a handler that already wrote a response.
	if err := c.NoContent(http.StatusOK); err != nil {
		t.Fatalf("prime response: %v", err)
	}

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late failure"), c)

	if rec.Code != http.StatusOK {
		t.Fatalf("committed response must not be overwritten, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("no body expected, got %s", rec.Body.String())
	}
}
