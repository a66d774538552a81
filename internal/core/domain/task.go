package domain

import (
	"errors"
	"time"
)

// StandardTaskQuota is the maximum number of tasks a Standard-role owner may
// hold at once. Elevated owners have no limit.
const StandardTaskQuota = 5

var ErrTaskNotFound = errors.New("task not found")
var ErrQuotaExceeded = errors.New("task quota exceeded")

// Task is a single to-do item owned by a user.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CheckQuota decides whether an owner with the given role and current task
// count may create one more task. The caller is responsible for evaluating
// this atomically with the count-then-insert sequence; two concurrent
// creations must not both observe the same count.
func CheckQuota(role Role, currentCount int64) error {
	if role == RoleStandard && currentCount >= StandardTaskQuota {
		return ErrQuotaExceeded
	}
	return nil
}
