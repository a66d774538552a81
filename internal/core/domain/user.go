package domain

import (
	"errors"
	"fmt"
	"time"
)

// Role is the authorization tier of a user. Its string value is exposed
// verbatim as the authority that downstream checks compare against.
type Role string

const (
	RoleStandard Role = "Standard"
	RoleElevated Role = "Elevated"
)

// ParseRole converts a raw string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStandard, RoleElevated:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrCredentialMismatch = errors.New("credential mismatch")
var ErrInvalidTransition = errors.New("invalid role transition")

// User models a registered account. Role is the only field whose change
// requires a token reissue: role travels inside the signed token and tokens
// are not re-checked against storage on every request.
type User struct {
	ID                  string    `json:"id"`
	Email               string    `json:"email"`
	UserName            string    `json:"user_name"`
	PasswordHash        string    `json:"-"`
	Role                Role      `json:"role"`
	ProfileImageID      string    `json:"profile_image_id,omitempty"`
	ExternalAccessToken string    `json:"-"`
	JoinedAt            time.Time `json:"joined_at"`
}

// Promote applies the only permitted role transition, Standard to Elevated.
func (u *User) Promote() error {
	if u.Role != RoleStandard {
		return fmt.Errorf("%w: cannot promote role %s", ErrInvalidTransition, u.Role)
	}
	u.Role = RoleElevated
	return nil
}
