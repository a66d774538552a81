package auth

import "errors"

// Token validation faults. These are distinct from domain errors: they are
// raised during principal resolution and are translated into a structured
// 401 response by the fault-translation middleware, never by handlers.
var (
	// ErrMissingToken means no bearer token was presented. It marks an
	// anonymous request, not a failure, and is excluded from IsTokenFault.
	ErrMissingToken = errors.New("no bearer token present")

	// ErrMalformed means the token is structurally broken: not three
	// base64url segments, undecodable claims, or an unknown role claim.
	ErrMalformed = errors.New("malformed token")

	// ErrBadSignature means the signature does not verify against the
	// configured secret: tampering or a wrong key.
	ErrBadSignature = errors.New("token signature mismatch")

	// ErrExpired means the token is past its exp claim.
	ErrExpired = errors.New("token expired")
)

// IsTokenFault reports whether err is a hard token validation failure.
// ErrMissingToken is deliberately excluded: absence of a token is the
// anonymous path, not a fault.
func IsTokenFault(err error) bool {
	return errors.Is(err, ErrMalformed) ||
		errors.Is(err, ErrBadSignature) ||
		errors.Is(err, ErrExpired)
}
