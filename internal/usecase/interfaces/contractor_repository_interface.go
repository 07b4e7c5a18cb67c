package interfaces

import (
	"context"
	"errors"
	"time"

	"fundtracker/internal/domain/entities"
)

// ErrVersionConflict is returned by UpdateRating when the contractor item
// changed between the read and the conditional write. The rating ledger
// retries on it.
var ErrVersionConflict = errors.New("contractor version conflict")

// RatingUpdate is the compare-and-swap payload for a rating adjustment.
// Suspension fields are written only when Suspend is set; an adjustment
// never clears an existing suspension.
type RatingUpdate struct {
	NewRating        float64
	ExpectedVersion  int64
	Suspend          bool
	SuspensionReason string
	SuspendedAt      time.Time
}

// IContractorRepository abstracts DynamoDB persistence for Contractor.
//
// UpdateRating must be conditional on ExpectedVersion so that two
// concurrent adjustments can never both apply against the same read state.

type IContractorRepository interface {
	Create(ctx context.Context, c entities.Contractor) (entities.Contractor, error)
	GetByID(ctx context.Context, id string) (entities.Contractor, error)
	GetByUserID(ctx context.Context, userID string) (entities.Contractor, error)
	ListSuspended(ctx context.Context) ([]entities.Contractor, error)
	UpdateRating(ctx context.Context, id string, update RatingUpdate) (entities.Contractor, error)
	Reinstate(ctx context.Context, id string) (entities.Contractor, error)
}
