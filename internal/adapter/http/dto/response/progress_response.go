package response

import (
	"time"

	"fundtracker/internal/domain/entities"
)

type ProgressImageResponse struct {
	ID         string    `json:"id"`
	FileRef    string    `json:"file_ref"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type ProgressResponse struct {
	ID                string                  `json:"id"`
	ProjectID         string                  `json:"project_id"`
	PhysicalProgress  int                     `json:"physical_progress"`
	FinancialProgress int                     `json:"financial_progress"`
	ReportURL         string                  `json:"report_url,omitempty"`
	Status            string                  `json:"status"`
	SubmittedBy       string                  `json:"submitted_by"`
	SubmittedAt       time.Time               `json:"submitted_at"`
	ReviewedBy        string                  `json:"reviewed_by,omitempty"`
	ReviewedAt        *time.Time              `json:"reviewed_at,omitempty"`
	Images            []ProgressImageResponse `json:"images,omitempty"`
}

func FromProgress(p entities.ProgressReport) ProgressResponse {
	var images []ProgressImageResponse
	for _, img := range p.Images {
		images = append(images, ProgressImageResponse{
			ID:         img.ID,
			FileRef:    img.FileRef,
			UploadedBy: img.UploadedBy,
			UploadedAt: img.UploadedAt,
		})
	}
	return ProgressResponse{
		ID:                p.ID,
		ProjectID:         p.ProjectID,
		PhysicalProgress:  p.PhysicalProgress,
		FinancialProgress: p.FinancialProgress,
		ReportURL:         p.ReportURL,
		Status:            string(p.Status),
		SubmittedBy:       p.SubmittedBy,
		SubmittedAt:       p.SubmittedAt,
		ReviewedBy:        p.ReviewedBy,
		ReviewedAt:        p.ReviewedAt,
		Images:            images,
	}
}

func FromProgressReports(ps []entities.ProgressReport) []ProgressResponse {
	out := make([]ProgressResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProgress(p))
	}
	return out
}
