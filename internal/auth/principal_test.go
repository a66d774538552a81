package auth

import (
	"errors"
	"testing"

	"github.com/taskhub/task-service/internal/core/domain"
)

func TestBearerToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"empty header", "", "", false},
		{"basic scheme", "Basic xyz", "", false},
		{"lowercase scheme", "bearer abc", "", false},
		{"no space", "Bearerabc", "", false},
		{"scheme only", "Bearer", "", false},
		{"scheme with trailing space only", "Bearer ", "", false},
		{"double space", "Bearer  abc", "", false},
		{"embedded space", "Bearer abc def", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := BearerToken(tc.header)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("BearerToken(%q) = (%q, %v), want (%q, %v)", tc.header, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestResolver_MissingToken(t *testing.T) {
	resolver := NewResolver(newTestCodec(t))

	for _, header := range []string{"", "Basic xyz", "bearer abc", "Token abc"} {
		if _, err := resolver.Resolve(header); !errors.Is(err, ErrMissingToken) {
			t.Fatalf("Resolve(%q): expected ErrMissingToken, got %v", header, err)
		}
	}
}

func TestResolver_ValidToken(t *testing.T) {
	codec := newTestCodec(t)
	resolver := NewResolver(codec)

	token, err := codec.Issue("user-9", "carol@example.com", domain.RoleElevated)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	p, err := resolver.Resolve("Bearer " + token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.UserID != "user-9" || p.Email != "carol@example.com" || p.Role != domain.RoleElevated {
		t.Fatalf("unexpected principal: %+v", p)
	}
	if p.Authority() != "Elevated" {
		t.Fatalf("unexpected authority: %q", p.Authority())
	}
}

func TestResolver_InvalidTokenIsFault(t *testing.T) {
	resolver := NewResolver(newTestCodec(t))

	_, err := resolver.Resolve("Bearer not-a-token")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if errors.Is(err, ErrMissingToken) {
		t.Fatalf("invalid token must not be downgraded to missing")
	}
}
