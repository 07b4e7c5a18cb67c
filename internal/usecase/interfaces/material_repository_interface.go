package interfaces

import (
	"context"

	"fundtracker/internal/domain/entities"
)

// IMaterialRepository abstracts DynamoDB persistence for Material.

type IMaterialRepository interface {
	Create(ctx context.Context, m entities.Material) (entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Material, error)
	Update(ctx context.Context, m entities.Material) (entities.Material, error)
}

// IMaterialPaymentRepository abstracts the append-only payment records
// attached to materials.

type IMaterialPaymentRepository interface {
	Create(ctx context.Context, p entities.MaterialPayment) (entities.MaterialPayment, error)
	ListByMaterialID(ctx context.Context, materialID string) ([]entities.MaterialPayment, error)
}
