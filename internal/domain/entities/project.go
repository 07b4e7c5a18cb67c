package entities

import "time"

// ContractSize categorizes a project by its total budget.

type ContractSize string

const (
	ContractSizeSmall  ContractSize = "SMALL"
	ContractSizeMedium ContractSize = "MEDIUM"
	ContractSizeLarge  ContractSize = "LARGE"
)

// Budget thresholds for contract sizing.
const (
	mediumBudgetThreshold = 1_000_000
	largeBudgetThreshold  = 10_000_000
)

// Minimum contractor rating required per contract size.
const (
	minRatingSmall  = 3.00
	minRatingMedium = 3.50
	minRatingLarge  = 4.00
)

// Project is a public infrastructure project with a budgeted contract.
//
// Storage model (DynamoDB):
//   - PK: id
//
// ContractSize and MinContractorRating are pure functions of TotalBudget.
// They are recomputed on every create/update that touches the budget and are
// never accepted from callers.

type Project struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Location            string       `json:"location"`
	Ministry            string       `json:"ministry"`
	ContractorID        string       `json:"contractor_id,omitempty"`
	TotalBudget         float64      `json:"total_budget"`
	ContractSize        ContractSize `json:"contract_size"`
	MinContractorRating float64      `json:"min_contractor_rating"`
	StartDate           time.Time    `json:"start_date"`
	EndDate             time.Time    `json:"end_date"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

// SizeForBudget derives the contract size category from a budget amount.
func SizeForBudget(budget float64) ContractSize {
	switch {
	case budget < mediumBudgetThreshold:
		return ContractSizeSmall
	case budget < largeBudgetThreshold:
		return ContractSizeMedium
	default:
		return ContractSizeLarge
	}
}

// MinRatingForSize maps a contract size to the minimum contractor rating it
// requires. Unknown sizes fall back to the small-contract requirement.
func MinRatingForSize(size ContractSize) float64 {
	switch size {
	case ContractSizeMedium:
		return minRatingMedium
	case ContractSizeLarge:
		return minRatingLarge
	default:
		return minRatingSmall
	}
}

// RecomputeContractSizing re-derives both budget-dependent fields. Every
// project mutator calls this before persisting.
func (p *Project) RecomputeContractSizing() {
	p.ContractSize = SizeForBudget(p.TotalBudget)
	p.MinContractorRating = MinRatingForSize(p.ContractSize)
}
