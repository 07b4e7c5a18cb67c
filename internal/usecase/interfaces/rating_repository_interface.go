package interfaces

import (
	"context"
	"errors"

	"fundtracker/internal/domain/entities"
)

// ErrUniqueKeyViolation is returned by Create when a review already exists
// for the same (contractor, project, reviewer) triple.
var ErrUniqueKeyViolation = errors.New("rating unique key violation")

// IRatingRepository abstracts DynamoDB persistence for ContractorRating.
//
// AddEvidence appends the attachment and latches evidence_provided to true
// in the same write; the latch is never reset.

type IRatingRepository interface {
	Create(ctx context.Context, r entities.ContractorRating) (entities.ContractorRating, error)
	GetByID(ctx context.Context, id string) (entities.ContractorRating, error)
	ListByContractorID(ctx context.Context, contractorID string) ([]entities.ContractorRating, error)
	AddEvidence(ctx context.Context, ratingID string, ev entities.RatingEvidence) (entities.ContractorRating, error)
	MarkVerified(ctx context.Context, ratingID, verifiedBy string) (entities.ContractorRating, error)
}
