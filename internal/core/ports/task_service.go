package ports

import (
	"context"

	"github.com/taskhub/task-service/internal/auth"
	"github.com/taskhub/task-service/internal/core/domain"
)

// CreateTaskInput carries a task creation request into the service layer.
type CreateTaskInput struct {
	Title string
}

// TaskListResult is the owner's full task list, returned by List and by
// every mutation so clients always render the current state.
type TaskListResult struct {
	Tasks []domain.Task
}

type TaskService interface {
	Create(ctx context.Context, principal auth.Principal, in CreateTaskInput) (*TaskListResult, error)
	List(ctx context.Context, ownerID string) (*TaskListResult, error)
	Update(ctx context.Context, ownerID, taskID string, done bool) (*TaskListResult, error)
	Delete(ctx context.Context, ownerID, taskID string) (*TaskListResult, error)
}
