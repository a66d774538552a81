package handler

import (
	"github.com/taskhub/task-service/internal/core/domain"
	"github.com/taskhub/task-service/internal/core/ports"
)

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:       u.ID,
		Email:    u.Email,
		UserName: u.UserName,
		Role:     string(u.Role),
		JoinedAt: u.JoinedAt,
	}
}

func toTaskListResponse(result *ports.TaskListResult) taskListResponse {
	out := taskListResponse{Tasks: make([]taskResponse, 0, len(result.Tasks))}
	for _, t := range result.Tasks {
		out.Tasks = append(out.Tasks, taskResponse{
			ID:        t.ID,
			Title:     t.Title,
			Done:      t.Done,
			CreatedAt: t.CreatedAt,
		})
	}
	return out
}
