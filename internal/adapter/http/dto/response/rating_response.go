package response

import (
	"time"

	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase"
)

type RatingResponse struct {
	ID               string             `json:"id"`
	ContractorID     string             `json:"contractor_id"`
	ProjectID        string             `json:"project_id"`
	RatedBy          string             `json:"rated_by"`
	RatingValue      int                `json:"rating_value"`
	Comment          string             `json:"comment,omitempty"`
	IsNegative       bool               `json:"is_negative"`
	EvidenceRequired bool               `json:"evidence_required"`
	EvidenceProvided bool               `json:"evidence_provided"`
	IsVerified       bool               `json:"is_verified"`
	VerifiedBy       string             `json:"verified_by,omitempty"`
	VerifiedAt       *time.Time         `json:"verified_at,omitempty"`
	Evidence         []EvidenceResponse `json:"evidence,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func FromRating(r entities.ContractorRating) RatingResponse {
	out := RatingResponse{
		ID:               r.ID,
		ContractorID:     r.ContractorID,
		ProjectID:        r.ProjectID,
		RatedBy:          r.RatedBy,
		RatingValue:      r.RatingValue,
		Comment:          r.Comment,
		IsNegative:       r.IsNegative,
		EvidenceRequired: r.EvidenceRequired,
		EvidenceProvided: r.EvidenceProvided,
		IsVerified:       r.IsVerified,
		VerifiedBy:       r.VerifiedBy,
		VerifiedAt:       r.VerifiedAt,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	for _, ev := range r.Evidence {
		out.Evidence = append(out.Evidence, EvidenceResponse{
			ID:         ev.ID,
			FileRef:    ev.FileRef,
			UploadedBy: ev.UploadedBy,
			UploadedAt: ev.UploadedAt,
		})
	}
	return out
}

func FromRatings(rs []entities.ContractorRating) []RatingResponse {
	out := make([]RatingResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRating(r))
	}
	return out
}

type VerifyOutcomeResponse struct {
	Rating    RatingResponse `json:"rating"`
	Applied   bool           `json:"applied"`
	NewRating float64        `json:"new_contractor_rating"`
}

func FromVerifyOutcome(o usecase.VerifyOutcome) VerifyOutcomeResponse {
	return VerifyOutcomeResponse{
		Rating:    FromRating(o.Rating),
		Applied:   o.Applied,
		NewRating: o.NewRating,
	}
}
