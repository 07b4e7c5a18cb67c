package interfaces

import (
	"context"

	"fundtracker/internal/domain/entities"
)

// IProgressRepository abstracts DynamoDB persistence for ProgressReport.

type IProgressRepository interface {
	Create(ctx context.Context, p entities.ProgressReport) (entities.ProgressReport, error)
	GetByID(ctx context.Context, id string) (entities.ProgressReport, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.ProgressReport, error)
	ListPending(ctx context.Context) ([]entities.ProgressReport, error)
	Update(ctx context.Context, p entities.ProgressReport) (entities.ProgressReport, error)
	AddImage(ctx context.Context, progressID string, img entities.ProgressImage) (entities.ProgressReport, error)
}
