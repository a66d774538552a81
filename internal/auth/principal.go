package auth

import (
	"strings"

	"github.com/taskhub/task-service/internal/core/domain"
)

// Principal is the authenticated identity attached to a request after
// successful token validation. It is a request-scoped projection of the
// stored user and is never persisted.
type Principal struct {
	UserID string
	Email  string
	Role   domain.Role
}

// Authority returns the authority string downstream checks compare against.
func (p Principal) Authority() string {
	return string(p.Role)
}

const bearerScheme = "Bearer "

// BearerToken extracts the raw token from an Authorization header value.
// Only the exact shape `Bearer <token>` is recognized: case-sensitive scheme,
// a single space, and a non-empty remainder with no further whitespace.
// Anything else means no bearer token was presented.
func BearerToken(header string) (string, bool) {
	raw, found := strings.CutPrefix(header, bearerScheme)
	if !found || raw == "" || strings.ContainsAny(raw, " \t") {
		return "", false
	}
	return raw, true
}

// Resolver turns a raw Authorization header into a Principal.
type Resolver struct {
	codec *Codec
}

func NewResolver(codec *Codec) *Resolver {
	return &Resolver{codec: codec}
}

// Resolve parses the header and verifies the token. A header with no
// recognizable bearer token yields ErrMissingToken - the anonymous path,
// distinct from a present-but-invalid token, which yields one of the hard
// faults from Codec.Verify.
func (r *Resolver) Resolve(header string) (Principal, error) {
	raw, ok := BearerToken(header)
	if !ok {
		return Principal{}, ErrMissingToken
	}
	return r.codec.Verify(raw)
}
