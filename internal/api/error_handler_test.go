package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskhub/task-service/internal/core/domain"
)

func TestResolveError_DomainMapping(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	log := zerolog.Nop()

	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"quota", domain.ErrQuotaExceeded, http.StatusForbidden, "task quota exceeded"},
		{"transition", domain.ErrInvalidTransition, http.StatusConflict, domain.ErrInvalidTransition.Error()},
		{"credentials", domain.ErrCredentialMismatch, http.StatusUnauthorized, "invalid credentials"},
		{"user missing", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"task missing", domain.ErrTaskNotFound, http.StatusNotFound, "task not found"},
		{"wrapped", fmt.Errorf("persist role: %w", domain.ErrInvalidTransition), http.StatusConflict, "persist role: " + domain.ErrInvalidTransition.Error()},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := resolveError(tc.err, log, c)
			if code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, code)
			}
			if msg != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, msg)
			}
		})
	}
}

func TestResolveError_EchoHTTPError(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	code, msg := resolveError(echo.NewHTTPError(http.StatusTeapot, "short and stout"), zerolog.Nop(), c)
	if code != http.StatusTeapot || msg != "short and stout" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_Envelope(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(c echo.Context) error {
		return domain.ErrQuotaExceeded
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Error != "task quota exceeded" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
}

func TestHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/half", func(c echo.Context) error {
		if err := c.String(http.StatusOK, "partial"); err != nil {
			return err
		}
		return fmt.Errorf("late failure")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/half", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "partial" {
		t.Fatalf("committed response was rewritten: %d %q", rec.Code, rec.Body.String())
	}
}
