package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhub/task-service/internal/api/metrics"
	"github.com/taskhub/task-service/internal/auth"
	"github.com/taskhub/task-service/internal/core/domain"
	"github.com/taskhub/task-service/internal/core/ports"
)

// TaskService implements task CRUD with the per-role write quota.
type TaskService struct {
	repo   ports.TaskRepository
	locker ports.OwnerLocker
	audit  ports.AuditSink
	log    zerolog.Logger
}

func NewTaskService(
	repo ports.TaskRepository,
	locker ports.OwnerLocker,
	audit ports.AuditSink,
	log zerolog.Logger,
) *TaskService {
	return &TaskService{repo: repo, locker: locker, audit: audit, log: log}
}

// Create inserts a task for the principal after the quota check. The owner
// lock holds across count-then-insert: without it two concurrent creations
// could both observe count=4 and jointly exceed the quota.
func (s *TaskService) Create(ctx context.Context, principal auth.Principal, in ports.CreateTaskInput) (*ports.TaskListResult, error) {
	release, err := s.locker.Acquire(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("acquire owner lock: %w", err)
	}
	defer release()

	count, err := s.repo.CountByOwner(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}

	if err := domain.CheckQuota(principal.Role, count); err != nil {
		metrics.QuotaRejectionsTotal.Inc()
		s.recordQuotaRejection(principal.UserID, count)
		return nil, err
	}

	task := &domain.Task{
		Title:     in.Title,
		OwnerID:   principal.UserID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.repo.Insert(ctx, task); err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	metrics.TasksCreatedTotal.WithLabelValues(principal.Authority()).Inc()
	s.log.Info().Str("owner_id", principal.UserID).Str("title", in.Title).Msg("task created")

	return s.List(ctx, principal.UserID)
}

func (s *TaskService) List(ctx context.Context, ownerID string) (*ports.TaskListResult, error) {
	tasks, err := s.repo.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return &ports.TaskListResult{Tasks: tasks}, nil
}

func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, done bool) (*ports.TaskListResult, error) {
	if err := s.repo.UpdateDone(ctx, taskID, ownerID, done); err != nil {
		return nil, err
	}
	return s.List(ctx, ownerID)
}

func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) (*ports.TaskListResult, error) {
	if err := s.repo.Delete(ctx, taskID, ownerID); err != nil {
		return nil, err
	}
	return s.List(ctx, ownerID)
}

func (s *TaskService) recordQuotaRejection(ownerID string, count int64) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuthEvent{
		UserID: ownerID,
		Kind:   domain.AuthEventQuotaRejection,
		Detail: fmt.Sprintf("creation rejected at count %d", count),
		At:     time.Now().UTC(),
	})
}
