package response

import (
	"time"

	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase"
)

type EvidenceResponse struct {
	ID         string    `json:"id"`
	FileRef    string    `json:"file_ref"`
	UploadedBy string    `json:"uploaded_by,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type IssueResponse struct {
	ID                string             `json:"id"`
	ProjectID         string             `json:"project_id"`
	Title             string             `json:"title"`
	Description       string             `json:"description,omitempty"`
	IssueType         string             `json:"issue_type"`
	Severity          string             `json:"severity"`
	Status            string             `json:"status"`
	IsForgivable      bool               `json:"is_forgivable"`
	ForgivenessReason string             `json:"forgiveness_reason,omitempty"`
	IsForgiven        bool               `json:"is_forgiven"`
	ForgivenBy        string             `json:"forgiven_by,omitempty"`
	ForgivenAt        *time.Time         `json:"forgiven_at,omitempty"`
	ReportedBy        string             `json:"reported_by,omitempty"`
	ReportedAt        time.Time          `json:"reported_at"`
	VerifiedBy        string             `json:"verified_by,omitempty"`
	VerifiedAt        *time.Time         `json:"verified_at,omitempty"`
	RatingImpact      float64            `json:"rating_impact"`
	ResolutionNotes   string             `json:"resolution_notes,omitempty"`
	ResolvedAt        *time.Time         `json:"resolved_at,omitempty"`
	Evidence          []EvidenceResponse `json:"evidence,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

func FromIssue(i entities.IssueReport) IssueResponse {
	out := IssueResponse{
		ID:                i.ID,
		ProjectID:         i.ProjectID,
		Title:             i.Title,
		Description:       i.Description,
		IssueType:         string(i.IssueType),
		Severity:          string(i.Severity),
		Status:            string(i.Status),
		IsForgivable:      i.IsForgivable,
		ForgivenessReason: i.ForgivenessReason,
		IsForgiven:        i.IsForgiven,
		ForgivenBy:        i.ForgivenBy,
		ForgivenAt:        i.ForgivenAt,
		ReportedBy:        i.ReportedBy,
		ReportedAt:        i.ReportedAt,
		VerifiedBy:        i.VerifiedBy,
		VerifiedAt:        i.VerifiedAt,
		RatingImpact:      i.RatingImpact,
		ResolutionNotes:   i.ResolutionNotes,
		ResolvedAt:        i.ResolvedAt,
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
	for _, ev := range i.Evidence {
		out.Evidence = append(out.Evidence, EvidenceResponse{
			ID:         ev.ID,
			FileRef:    ev.FileRef,
			UploadedBy: ev.UploadedBy,
			UploadedAt: ev.UploadedAt,
		})
	}
	return out
}

func FromIssues(issues []entities.IssueReport) []IssueResponse {
	out := make([]IssueResponse, 0, len(issues))
	for _, i := range issues {
		out = append(out, FromIssue(i))
	}
	return out
}

type PenaltyOutcomeResponse struct {
	Issue     IssueResponse `json:"issue"`
	Penalty   float64       `json:"penalty_applied"`
	NewRating float64       `json:"new_contractor_rating"`
}

func FromPenaltyOutcome(o usecase.PenaltyOutcome) PenaltyOutcomeResponse {
	return PenaltyOutcomeResponse{
		Issue:     FromIssue(o.Issue),
		Penalty:   o.Penalty,
		NewRating: o.NewRating,
	}
}
