package ports

import (
	"context"

	"github.com/taskhub/task-service/internal/core/domain"
)

// AuditRepository persists auth audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}

// AuditService consumes auth events delivered by the dispatcher.
type AuditService interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}

// AuditSink accepts auth events for asynchronous recording. Implementations
// must never block request handling.
type AuditSink interface {
	Enqueue(event domain.AuthEvent)
}
