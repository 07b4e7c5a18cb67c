package usecase

import (
	"context"
	"strings"

	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase/interfaces"
)

// Eligibility failure reasons surfaced to callers.
const (
	ReasonSuspended          = "suspended"
	ReasonRatingBelowMinimum = "rating below required"
)

// EligibilityResult is the outcome of one contract-size check.
type EligibilityResult struct {
	Eligible       bool    `json:"eligible"`
	Reason         string  `json:"reason,omitempty"`
	RequiredRating float64 `json:"required_rating"`
}

// ContractorEligibility is the bulk form: one result per contract size.
type ContractorEligibility struct {
	ContractorID string                                      `json:"contractor_id"`
	Rating       float64                                     `json:"rating"`
	IsSuspended  bool                                        `json:"is_suspended"`
	BySize       map[entities.ContractSize]EligibilityResult `json:"by_size"`
}

// IEligibilityUseCase decides whether a contractor may take a contract of a
// given size. Pure read; no side effects.

type IEligibilityUseCase interface {
	Check(ctx context.Context, contractorID string, size entities.ContractSize) (EligibilityResult, error)
	CheckAll(ctx context.Context, contractorID string) (ContractorEligibility, error)
}

type EligibilityUseCase struct {
	contractors interfaces.IContractorRepository
}

var _ IEligibilityUseCase = (*EligibilityUseCase)(nil)

func NewEligibilityUseCase(contractors interfaces.IContractorRepository) *EligibilityUseCase {
	return &EligibilityUseCase{contractors: contractors}
}

// Check fails with "suspended" for any suspended contractor regardless of
// rating, then with "rating below required" when the rating is under the
// size's minimum.
func (u *EligibilityUseCase) Check(ctx context.Context, contractorID string, size entities.ContractSize) (EligibilityResult, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return EligibilityResult{}, ErrContractorNotFound
	}

	c, err := u.contractors.GetByID(ctx, contractorID)
	if err != nil {
		return EligibilityResult{}, err
	}
	if c.ID == "" {
		return EligibilityResult{}, ErrContractorNotFound
	}
	return evaluateEligibility(c, size), nil
}

func (u *EligibilityUseCase) CheckAll(ctx context.Context, contractorID string) (ContractorEligibility, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return ContractorEligibility{}, ErrContractorNotFound
	}

	c, err := u.contractors.GetByID(ctx, contractorID)
	if err != nil {
		return ContractorEligibility{}, err
	}
	if c.ID == "" {
		return ContractorEligibility{}, ErrContractorNotFound
	}

	out := ContractorEligibility{
		ContractorID: c.ID,
		Rating:       c.Rating,
		IsSuspended:  c.IsSuspended,
		BySize:       make(map[entities.ContractSize]EligibilityResult, 3),
	}
	for _, size := range []entities.ContractSize{entities.ContractSizeSmall, entities.ContractSizeMedium, entities.ContractSizeLarge} {
		out.BySize[size] = evaluateEligibility(c, size)
	}
	return out, nil
}

func evaluateEligibility(c entities.Contractor, size entities.ContractSize) EligibilityResult {
	required := entities.MinRatingForSize(size)
	if c.IsSuspended {
		return EligibilityResult{Eligible: false, Reason: ReasonSuspended, RequiredRating: required}
	}
	if c.Rating < required {
		return EligibilityResult{Eligible: false, Reason: ReasonRatingBelowMinimum, RequiredRating: required}
	}
	return EligibilityResult{Eligible: true, RequiredRating: required}
}
