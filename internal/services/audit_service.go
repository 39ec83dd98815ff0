package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/venture-studio/engine/internal/models"
	"github.com/venture-studio/engine/internal/repository"
	"github.com/venture-studio/engine/pkg/logger"
	"github.com/venture-studio/engine/pkg/utils"
)

// AuditService appends entries to the audit trail. A failure to record is
// logged but never fails the action being audited.
type AuditService interface {
	Record(ctx context.Context, userID uuid.UUID, action, details string)
}

type auditService struct {
	audit repository.AuditRepository
}

func NewAuditService(audit repository.AuditRepository) AuditService {
	return &auditService{audit: audit}
}

func (s *auditService) Record(ctx context.Context, userID uuid.UUID, action, details string) {
	now := time.Now().UTC()
	e := &models.AuditEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Action:    action,
		Details:   details,
		AuditHash: utils.AuditDigest(userID.String(), action, details, now.Format(time.RFC3339Nano)),
		CreatedAt: now,
	}
	if err := s.audit.Append(ctx, e); err != nil {
		logger.L().Warn("audit append failed",
			zap.String("action", action),
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}
}
