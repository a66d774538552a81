package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskhub/task-service/internal/auth"
	"github.com/taskhub/task-service/internal/core/domain"
)

func TestFaultTranslation_PassesThroughSuccess(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := FaultTranslation(zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestFaultTranslation_PassesThroughOtherErrors(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	boom := errors.New("boom")
	mw := FaultTranslation(zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		return boom
	})

	if err := handler(c); !errors.Is(err, boom) {
		t.Fatalf("non-token error must pass through, got %v", err)
	}
}

func TestFaultTranslation_TranslatesTokenFault(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := FaultTranslation(zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		return auth.ErrExpired
	})

	if err := handler(c); err != nil {
		t.Fatalf("translated fault must not escape: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	ct := rec.Header().Get(echo.HeaderContentType)
	if !strings.Contains(strings.ToLower(ct), "application/json") || !strings.Contains(strings.ToLower(ct), "utf-8") {
		t.Fatalf("unexpected content type: %q", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["code"] != float64(401) {
		t.Fatalf("expected code 401, got %v", body["code"])
	}
	if body["message"] == "" {
		t.Fatalf("expected a fault message")
	}
}

// TestPipeline_ExpiredTokenBecomesStructured401 exercises the full chain in
// its declared order: a fault raised during principal resolution must come
// back as the structured 401 body, never as an unhandled error.
func TestPipeline_ExpiredTokenBecomesStructured401(t *testing.T) {
	secret := []byte(strings.Repeat("p", 64))
	codec, err := auth.NewCodec(secret, "taskhub-test", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	e := echo.New()
	for _, mw := range Pipeline(auth.NewResolver(codec), zerolog.Nop()) {
		e.Use(mw)
	}
	e.GET("/tasks", func(c echo.Context) error {
		t.Fatalf("handler must not run on a token fault")
		return nil
	})

	now := time.Now().UTC()
	claims := auth.Claims{
		Email: "alice@example.com",
		Role:  string(domain.RoleStandard),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+expired)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["code"] != float64(401) {
		t.Fatalf("expected code 401, got %v", body["code"])
	}
}
