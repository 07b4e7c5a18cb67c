package entities

import (
	"math"
	"time"
)

const (
	// InitialRating is granted to every newly registered contractor.
	InitialRating = 5.00

	// RatingFloor and RatingCeil bound the rating after any adjustment.
	RatingFloor = 0.00
	RatingCeil  = 5.00

	// SuspensionThreshold triggers an automatic suspension whenever a rating
	// adjustment lands below it. Suspension is sticky: recovering above the
	// threshold never clears it, only an administrative reinstatement does.
	SuspensionThreshold = 3.80
)

// Contractor is the persistent rating/suspension record of one contractor.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Rating rules:
//   - Rating holds two-decimal precision, like the source-of-record ledger.
//   - Rating and the suspension fields are mutated only through the rating
//     ledger; Version backs its compare-and-swap update.
//
// AIRating/AIRiskScore are inert placeholders surfaced to clients but never
// computed by this service.

type Contractor struct {
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
	AIRatingUpdatedAt      *time.Time `json:"ai_rating_updated_at,omitempty"`
	Version                int64      `json:"-"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// RoundRating normalizes a rating to two decimals.
func RoundRating(v float64) float64 {
	return math.Round(v*100) / 100
}

// ClampRating bounds a rating to [RatingFloor, RatingCeil].
func ClampRating(v float64) float64 {
	if v < RatingFloor {
		return RatingFloor
	}
	if v > RatingCeil {
		return RatingCeil
	}
	return v
}
