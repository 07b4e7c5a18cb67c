package usecase

import (
	"context"

	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase/interfaces"
)

const defaultAuditListLimit = 100

// IAuditLogUseCase exposes the append-only audit trail, newest first.

type IAuditLogUseCase interface {
	List(ctx context.Context, limit int) ([]entities.AuditEntry, error)
}

type AuditLogUseCase struct {
	repo interfaces.IAuditLogRepository
}

var _ IAuditLogUseCase = (*AuditLogUseCase)(nil)

func NewAuditLogUseCase(repo interfaces.IAuditLogRepository) *AuditLogUseCase {
	return &AuditLogUseCase{repo: repo}
}

func (u *AuditLogUseCase) List(ctx context.Context, limit int) ([]entities.AuditEntry, error) {
	if limit <= 0 {
		limit = defaultAuditListLimit
	}
	return u.repo.List(ctx, limit)
}
