package ports

import (
	"context"

	"github.com/taskhub/task-service/internal/core/domain"
)

// TaskRepository defines the persistence contract for tasks.
type TaskRepository interface {
	Insert(ctx context.Context, task *domain.Task) (*domain.Task, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	FindAllByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)
	UpdateDone(ctx context.Context, taskID, ownerID string, done bool) error
	Delete(ctx context.Context, taskID, ownerID string) error
}
