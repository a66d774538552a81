package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"Standard", RoleStandard, false},
		{"Elevated", RoleElevated, false},
		{"standard", "", true},
		{"ELEVATED", "", true},
		{"admin", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseRole(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseRole(%q) = %q, %v", tc.in, got, err)
		}
	}
}

func TestUserPromote(t *testing.T) {
	u := &User{Role: RoleStandard}
	if err := u.Promote(); err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if u.Role != RoleElevated {
		t.Fatalf("expected Elevated, got %s", u.Role)
	}

	if err := u.Promote(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second promotion must fail with ErrInvalidTransition, got %v", err)
	}
}

func TestCheckQuota(t *testing.T) {
	if err := CheckQuota(RoleStandard, StandardTaskQuota-1); err != nil {
		t.Fatalf("below quota must pass: %v", err)
	}
	if err := CheckQuota(RoleStandard, StandardTaskQuota); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("at quota must fail, got %v", err)
	}
	if err := CheckQuota(RoleElevated, 10_000); err != nil {
		t.Fatalf("elevated owners are unlimited: %v", err)
	}
}
