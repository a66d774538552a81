package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskhub/task-service/internal/core/domain"
)

var testSecret = []byte(strings.Repeat("0123456789abcdef", 4))

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	codec, err := NewCodec(testSecret, "taskhub-test", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return codec
}

func TestNewCodec_RejectsShortSecret(t *testing.T) {
	if _, err := NewCodec([]byte("too-short"), "x", time.Hour); err == nil {
		t.Fatalf("expected error for short secret")
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	cases := []struct {
		userID string
		email  string
		role   domain.Role
	}{
		{"user-1", "alice@example.com", domain.RoleStandard},
		{"user-2", "bob@example.com", domain.RoleElevated},
	}

	for _, tc := range cases {
		token, err := codec.Issue(tc.userID, tc.email, tc.role)
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		if strings.Count(token, ".") != 2 {
			t.Fatalf("expected three segments, got %q", token)
		}

		p, err := codec.Verify(token)
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if p.UserID != tc.userID || p.Email != tc.email || p.Role != tc.role {
			t.Fatalf("principal mismatch: %+v", p)
		}
	}
}

func TestCodec_TamperedSignature(t *testing.T) {
	codec := newTestCodec(t)

	token, err := codec.Issue("user-1", "alice@example.com", domain.RoleStandard)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Flip the final signature character to a different base64url symbol.
	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	if _, err := codec.Verify(tampered); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	codec := newTestCodec(t)
	other, err := NewCodec([]byte(strings.Repeat("x", 64)), "taskhub-test", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	token, err := other.Issue("user-1", "alice@example.com", domain.RoleStandard)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := codec.Verify(token); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestCodec_Expired(t *testing.T) {
	codec := newTestCodec(t)

	// Craft a correctly signed token whose exp is already in the past.
	now := time.Now().UTC()
	claims := Claims{
		Email: "alice@example.com",
		Role:  string(domain.RoleStandard),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "taskhub-test",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := codec.Verify(signed); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestCodec_Malformed(t *testing.T) {
	codec := newTestCodec(t)

	for _, raw := range []string{"not-a-token", "a.b", "a.b.c.d", ""} {
		if _, err := codec.Verify(raw); !errors.Is(err, ErrMalformed) {
			t.Fatalf("Verify(%q): expected ErrMalformed, got %v", raw, err)
		}
	}
}

func TestCodec_RejectsForeignAlgorithm(t *testing.T) {
	codec := newTestCodec(t)

	// Same secret, wrong signing method.
	claims := jwt.MapClaims{
		"sub":   "user-1",
		"email": "alice@example.com",
		"role":  string(domain.RoleStandard),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := codec.Verify(signed); !IsTokenFault(err) {
		t.Fatalf("expected a token fault, got %v", err)
	}
}

func TestCodec_UnknownRoleClaim(t *testing.T) {
	codec := newTestCodec(t)

	claims := jwt.MapClaims{
		"sub":   "user-1",
		"email": "alice@example.com",
		"role":  "Root",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := codec.Verify(signed); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestIsTokenFault(t *testing.T) {
	for _, err := range []error{ErrMalformed, ErrBadSignature, ErrExpired} {
		if !IsTokenFault(err) {
			t.Fatalf("expected %v to be a token fault", err)
		}
	}
	if IsTokenFault(ErrMissingToken) {
		t.Fatalf("ErrMissingToken must not count as a token fault")
	}
	if IsTokenFault(errors.New("boom")) {
		t.Fatalf("arbitrary errors must not count as token faults")
	}
}
