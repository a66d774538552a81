package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/task-service/internal/auth"
	"github.com/taskhub/task-service/internal/api/middleware"
)

// ctxPrincipal extracts the principal bound by the Auth middleware. Handlers
// on protected routes call this as a fast-fail check before any service
// call: an anonymous request on such a route is a handler-level 401, not a
// pipeline fault.
func ctxPrincipal(c echo.Context) (auth.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return auth.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return p, nil
}
