package ports

import "context"

// OwnerLocker serializes task creation per owner so the count-then-insert
// sequence behind the quota check cannot race with itself. Acquire blocks
// until the lock is held or ctx is done; the returned release function must
// be called exactly once.
type OwnerLocker interface {
	Acquire(ctx context.Context, ownerID string) (release func(), err error)
}
