package entities

import "time"

// Ratings at or below this value are negative and require evidence before
// they may be verified and applied.
const negativeRatingMax = 2

// RatingEvidence is a proof attachment owned by its parent rating review.

type RatingEvidence struct {
	ID         string    `json:"id"`
	FileRef    string    `json:"file_ref"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ContractorRating is a single proof-gated review event against a
// contractor on a project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (contractor_id-index): contractor_id
//   - a companion marker item keyed by "<contractor>#<project>#<reviewer>"
//     is written in the same transaction as the review, enforcing at most
//     one review per (contractor, project, reviewer) triple.
//
// EvidenceProvided is a one-way latch: it flips true the moment any evidence
// attachment is recorded and is never reset.

type ContractorRating struct {
	ID               string           `json:"id"`
	ContractorID     string           `json:"contractor_id"`
	ProjectID        string           `json:"project_id"`
	RatedBy          string           `json:"rated_by"`
	RatingValue      int              `json:"rating_value"`
	Comment          string           `json:"comment,omitempty"`
	IsNegative       bool             `json:"is_negative"`
	EvidenceRequired bool             `json:"evidence_required"`
	EvidenceProvided bool             `json:"evidence_provided"`
	IsVerified       bool             `json:"is_verified"`
	VerifiedBy       string           `json:"verified_by,omitempty"`
	VerifiedAt       *time.Time       `json:"verified_at,omitempty"`
	Evidence         []RatingEvidence `json:"evidence,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// IsNegativeValue reports whether a 1-5 rating value counts as negative.
func IsNegativeValue(value int) bool {
	return value <= negativeRatingMax
}

// Points converts the 1-5 review value into a signed ledger delta:
// 5 -> +0.2, 4 -> +0.1, 3 -> 0, 2 -> -0.1, 1 -> -0.2.
func (r ContractorRating) Points() float64 {
	return float64(r.RatingValue-3) * 0.1
}

// UniqueKey is the composite uniqueness attribute persisted with the item.
func (r ContractorRating) UniqueKey() string {
	return r.ContractorID + "#" + r.ProjectID + "#" + r.RatedBy
}
