package domain

import "time"

// AuthEventKind labels an entry in the authentication audit trail.
type AuthEventKind string

const (
	AuthEventLogin          AuthEventKind = "login"
	AuthEventLoginFailed    AuthEventKind = "login_failed"
	AuthEventPromotion      AuthEventKind = "promotion"
	AuthEventQuotaRejection AuthEventKind = "quota_rejection"
)

// AuthEvent records an authentication-related occurrence for a user.
type AuthEvent struct {
	UserID string
	Kind   AuthEventKind
	Detail string
	At     time.Time
}
