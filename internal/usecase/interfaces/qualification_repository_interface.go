package interfaces

import (
	"context"

	"fundtracker/internal/domain/entities"
)

// ICertificateRepository abstracts DynamoDB persistence for
// ContractorCertificate.

type ICertificateRepository interface {
	Create(ctx context.Context, c entities.ContractorCertificate) (entities.ContractorCertificate, error)
	GetByID(ctx context.Context, id string) (entities.ContractorCertificate, error)
	ListByContractorID(ctx context.Context, contractorID string) ([]entities.ContractorCertificate, error)
	Update(ctx context.Context, c entities.ContractorCertificate) (entities.ContractorCertificate, error)
}

// ISkillRepository abstracts DynamoDB persistence for ContractorSkill.

type ISkillRepository interface {
	Create(ctx context.Context, s entities.ContractorSkill) (entities.ContractorSkill, error)
	GetByID(ctx context.Context, id string) (entities.ContractorSkill, error)
	ListByContractorID(ctx context.Context, contractorID string) ([]entities.ContractorSkill, error)
	Update(ctx context.Context, s entities.ContractorSkill) (entities.ContractorSkill, error)
}
