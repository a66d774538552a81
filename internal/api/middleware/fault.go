package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskhub/task-service/internal/api/metrics"
	"github.com/taskhub/task-service/internal/auth"
)

// faultResponse is the wire shape of a translated token fault.
type faultResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// FaultTranslation rewrites token faults raised anywhere inside the chain it
// wraps into a structured 401 response. It must sit strictly outside the Auth
// middleware; faults crossing it unhandled would surface as unstructured
// transport errors. Every other error passes through untouched.
func FaultTranslation(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil || !auth.IsTokenFault(err) {
				return err
			}

			metrics.AuthFaultsTotal.WithLabelValues(faultReason(err)).Inc()
			log.Debug().Err(err).Str("path", c.Path()).Msg("token fault translated")

			c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
			return c.JSON(http.StatusUnauthorized, faultResponse{
				Message: err.Error(),
				Code:    http.StatusUnauthorized,
			})
		}
	}
}

func faultReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrBadSignature):
		return "bad_signature"
	case errors.Is(err, auth.ErrExpired):
		return "expired"
	default:
		return "malformed"
	}
}
