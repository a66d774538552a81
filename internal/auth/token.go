package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskhub/task-service/internal/core/domain"
)

// MinSecretLen is the minimum signing secret length in bytes. HS512 wants a
// key at least as long as its 512-bit output.
const MinSecretLen = 64

const defaultTTL = 24 * time.Hour

// Claims is the payload embedded in every issued token.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies the compact tokens carrying identity claims.
// The secret is injected at construction; rotating it invalidates every
// previously issued token, as there is no key versioning.
type Codec struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewCodec builds a Codec. The secret must be at least MinSecretLen bytes;
// ttl defaults to 24h when non-positive.
func NewCodec(secret []byte, issuer string, ttl time.Duration) (*Codec, error) {
	if len(secret) < MinSecretLen {
		return nil, fmt.Errorf("auth: signing secret must be at least %d bytes, got %d", MinSecretLen, len(secret))
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: secret, issuer: issuer, ttl: ttl}, nil
}

// Issue signs a fresh token for the given identity. Pure computation, no
// side effects; the embedded role is a snapshot that may go stale relative
// to storage until reissued.
func (c *Codec) Issue(userID, email string, role domain.Role) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email: email,
		Role:  string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses raw, checks the signature and expiry, and returns the
// embedded Principal. Failures come back as the typed faults ErrMalformed,
// ErrBadSignature, or ErrExpired, never as opaque parser errors.
func (c *Codec) Verify(raw string) (Principal, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS512.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		return Principal{}, classify(err)
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return Principal{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   role,
	}, nil
}

// classify maps the jwt parser's error chain onto the fault taxonomy.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	}
	return fmt.Errorf("%w: %v", ErrMalformed, err)
}
