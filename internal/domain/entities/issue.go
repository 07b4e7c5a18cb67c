package entities

import "time"

// IssueType classifies what caused a reported problem on a project.

type IssueType string

const (
	IssueTypeNaturalDisaster IssueType = "NATURAL_DISASTER"
	IssueTypeContractorFault IssueType = "CONTRACTOR_FAULT"
	IssueTypeDesignFlaw      IssueType = "DESIGN_FLAW"
	IssueTypeMaterialDefect  IssueType = "MATERIAL_DEFECT"
	IssueTypeVandalism       IssueType = "VANDALISM"
	IssueTypeNormalWear      IssueType = "NORMAL_WEAR"
	IssueTypeOther           IssueType = "OTHER"
)

// IssueSeverity grades the impact of an issue.

type IssueSeverity string

const (
	IssueSeverityLow      IssueSeverity = "LOW"
	IssueSeverityMedium   IssueSeverity = "MEDIUM"
	IssueSeverityHigh     IssueSeverity = "HIGH"
	IssueSeverityCritical IssueSeverity = "CRITICAL"
)

// IssueStatus is the report lifecycle: REPORTED -> (VERIFIED) -> one of the
// terminal states. A forgiven issue can never subsequently be penalized.

type IssueStatus string

const (
	IssueStatusReported    IssueStatus = "REPORTED"
	IssueStatusUnderReview IssueStatus = "UNDER_REVIEW"
	IssueStatusVerified    IssueStatus = "VERIFIED"
	IssueStatusForgiven    IssueStatus = "FORGIVEN"
	IssueStatusPenalized   IssueStatus = "PENALIZED"
	IssueStatusResolved    IssueStatus = "RESOLVED"
	IssueStatusClosed      IssueStatus = "CLOSED"
)

// Severity -> rating penalty magnitude for contractor-fault issues.
const (
	penaltyLow      = 0.10
	penaltyMedium   = 0.25
	penaltyHigh     = 0.50
	penaltyCritical = 1.00
)

// IssueEvidence is a file attachment owned by its parent issue. Only its
// presence matters to the adjudication rules; storage of the file itself is
// external.

type IssueEvidence struct {
	ID         string    `json:"id"`
	FileRef    string    `json:"file_ref"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// IssueReport is a reported problem on a project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//   - Evidence lives as a list attribute inside the item, so attachments
//     share the lifetime of the report.

type IssueReport struct {
	ID                string          `json:"id"`
	ProjectID         string          `json:"project_id"`
	Title             string          `json:"title"`
	Description       string          `json:"description,omitempty"`
	IssueType         IssueType       `json:"issue_type"`
	Severity          IssueSeverity   `json:"severity"`
	Status            IssueStatus     `json:"status"`
	IsForgivable      bool            `json:"is_forgivable"`
	ForgivenessReason string          `json:"forgiveness_reason,omitempty"`
	IsForgiven        bool            `json:"is_forgiven"`
	ForgivenBy        string          `json:"forgiven_by,omitempty"`
	ForgivenAt        *time.Time      `json:"forgiven_at,omitempty"`
	ReportedBy        string          `json:"reported_by,omitempty"`
	ReportedAt        time.Time       `json:"reported_at"`
	VerifiedBy        string          `json:"verified_by,omitempty"`
	VerifiedAt        *time.Time      `json:"verified_at,omitempty"`
	RatingImpact      float64         `json:"rating_impact"`
	ResolutionNotes   string          `json:"resolution_notes,omitempty"`
	ResolvedAt        *time.Time      `json:"resolved_at,omitempty"`
	Evidence          []IssueEvidence `json:"evidence,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ReclassifyForgivability re-derives IsForgivable from the issue type.
// Natural disasters are forgivable; contractor fault, design flaws and
// material defects are not; all other types keep whatever forgivability was
// previously set. Runs on every save, not only at creation.
func (i *IssueReport) ReclassifyForgivability() {
	switch i.IssueType {
	case IssueTypeNaturalDisaster:
		i.IsForgivable = true
	case IssueTypeContractorFault, IssueTypeDesignFlaw, IssueTypeMaterialDefect:
		i.IsForgivable = false
	}
}

// PenaltyForSeverity maps severity to the rating penalty magnitude.
// Unrecognized severities take the medium penalty.
func PenaltyForSeverity(s IssueSeverity) float64 {
	switch s {
	case IssueSeverityLow:
		return penaltyLow
	case IssueSeverityHigh:
		return penaltyHigh
	case IssueSeverityCritical:
		return penaltyCritical
	default:
		return penaltyMedium
	}
}
