package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/task-service/internal/auth"
	"github.com/taskhub/task-service/internal/core/domain"
)

func newTestCodec(t *testing.T) *auth.Codec {
	t.Helper()
	codec, err := auth.NewCodec([]byte(strings.Repeat("s", 64)), "taskhub-test", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return codec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	codec := newTestCodec(t)
	token, err := codec.Issue("user-1", "alice@example.com", domain.RoleStandard)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(auth.NewResolver(codec))
	handler := mw(func(c echo.Context) error {
		called = true
		p, ok := PrincipalFrom(c)
		if !ok {
			t.Fatalf("principal not bound")
		}
		if p.UserID != "user-1" || p.Role != domain.RoleStandard {
			t.Fatalf("unexpected principal: %+v", p)
		}
		if c.Get("role") != "Standard" {
			t.Fatalf("authority not set")
		}
		if _, ok := PrincipalFromContext(c.Request().Context()); !ok {
			t.Fatalf("principal not bound into request context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_MissingHeaderIsAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(auth.NewResolver(newTestCodec(t)))
	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		if _, ok := PrincipalFrom(c); ok {
			t.Fatalf("anonymous request must not carry a principal")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("anonymous request must be forwarded")
	}
}

func TestAuthMiddleware_ForeignSchemeIsAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic xyz")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(auth.NewResolver(newTestCodec(t)))
	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		if _, ok := PrincipalFrom(c); ok {
			t.Fatalf("Basic credentials must not resolve a principal")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("request with a non-bearer scheme must be forwarded as anonymous")
	}
}

func TestAuthMiddleware_InvalidTokenRaisesFault(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(auth.NewResolver(newTestCodec(t)))
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if !errors.Is(err, auth.ErrMalformed) {
		t.Fatalf("expected ErrMalformed to propagate, got %v", err)
	}
}
