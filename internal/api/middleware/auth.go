package middleware

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/task-service/internal/auth"
)

// Context keys under which the Auth middleware stores the resolved identity.
const (
	principalKey = "principal"
	roleKey      = "role"
)

type principalCtxKey struct{}

// Auth resolves the bearer token on each request and binds the resulting
// Principal into the request-scoped context. A request with no bearer token
// forwards anonymously: some routes are intentionally open, and protected
// routes reject anonymous principals downstream. A present-but-invalid token
// is returned as a fault for the fault-translation layer; it is never
// downgraded to anonymous.
func Auth(resolver *auth.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			principal, err := resolver.Resolve(header)
			if err != nil {
				if errors.Is(err, auth.ErrMissingToken) {
					return next(c)
				}
				return err
			}

			c.Set(principalKey, principal)
			c.Set(roleKey, principal.Authority())

			ctx := context.WithValue(c.Request().Context(), principalCtxKey{}, principal)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// PrincipalFrom returns the Principal bound by the Auth middleware, or false
// for an anonymous request.
func PrincipalFrom(c echo.Context) (auth.Principal, bool) {
	p, ok := c.Get(principalKey).(auth.Principal)
	return p, ok
}

// PrincipalFromContext is the context.Context flavour of PrincipalFrom, for
// code below the transport layer.
func PrincipalFromContext(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(principalCtxKey{}).(auth.Principal)
	return p, ok
}
