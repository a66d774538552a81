package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taskhub/task-service/internal/core/domain"
	"github.com/taskhub/task-service/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists auth events.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, event domain.AuthEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("record auth event: %w", err)
	}
	s.log.Debug().
		Str("user_id", event.UserID).
		Str("kind", string(event.Kind)).
		Msg("auth event recorded")
	return nil
}
