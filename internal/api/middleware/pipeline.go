package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskhub/task-service/internal/auth"
)

// Pipeline returns the authentication filter chain in its required order,
// outermost first: FaultTranslation wraps Auth, so a token fault raised
// during principal resolution always has a handler. Callers register the
// slice in order; the ordering constraint lives here, not in registration
// side effects.
func Pipeline(resolver *auth.Resolver, log zerolog.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		FaultTranslation(log),
		Auth(resolver),
	}
}
