package response

import (
	"time"

	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase"
)

type ContractorResponse struct {
	ID                     string     `json:"id"`
	UserID                 string     `json:"user_id"`
	Rating                 float64    `json:"rating"`
	IsSuspended            bool       `json:"is_suspended"`
	SuspensionReason       string     `json:"suspension_reason,omitempty"`
	SuspendedAt            *time.Time `json:"suspended_at,omitempty"`
	TotalProjectsCompleted int        `json:"total_projects_completed"`
	TotalProjectsFailed    int        `json:"total_projects_failed"`
	YearsOfExperience      int        `json:"years_of_experience"`
	SkillLevel             string     `json:"skill_level,omitempty"`
	AIRating               *float64   `json:"ai_rating,omitempty"`
	AIRiskScore            *float64   `json:"ai_risk_score,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

func FromContractor(c entities.Contractor) ContractorResponse {
	return ContractorResponse{
		ID:                     c.ID,
		UserID:                 c.UserID,
		Rating:                 c.Rating,
		IsSuspended:            c.IsSuspended,
		SuspensionReason:       c.SuspensionReason,
		SuspendedAt:            c.SuspendedAt,
		TotalProjectsCompleted: c.TotalProjectsCompleted,
		TotalProjectsFailed:    c.TotalProjectsFailed,
		YearsOfExperience:      c.YearsOfExperience,
		SkillLevel:             c.SkillLevel,
		AIRating:               c.AIRating,
		AIRiskScore:            c.AIRiskScore,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}

func FromContractors(cs []entities.Contractor) []ContractorResponse {
	out := make([]ContractorResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromContractor(c))
	}
	return out
}

type EligibilityResponse struct {
	ContractorID   string  `json:"contractor_id"`
	ContractSize   string  `json:"contract_size"`
	Eligible       bool    `json:"eligible"`
	Reason         string  `json:"reason,omitempty"`
	RequiredRating float64 `json:"required_rating"`
}

func FromEligibilityResult(contractorID string, size entities.ContractSize, r usecase.EligibilityResult) EligibilityResponse {
	return EligibilityResponse{
		ContractorID:   contractorID,
		ContractSize:   string(size),
		Eligible:       r.Eligible,
		Reason:         r.Reason,
		RequiredRating: r.RequiredRating,
	}
}

type ContractorEligibilityResponse struct {
	ContractorID string                         `json:"contractor_id"`
	Rating       float64                        `json:"rating"`
	IsSuspended  bool                           `json:"is_suspended"`
	BySize       map[string]EligibilityResponse `json:"by_size"`
}

func FromContractorEligibility(e usecase.ContractorEligibility) ContractorEligibilityResponse {
	out := ContractorEligibilityResponse{
		ContractorID: e.ContractorID,
		Rating:       e.Rating,
		IsSuspended:  e.IsSuspended,
		BySize:       make(map[string]EligibilityResponse, len(e.BySize)),
	}
	for size, r := range e.BySize {
		out.BySize[string(size)] = FromEligibilityResult(e.ContractorID, size, r)
	}
	return out
}
