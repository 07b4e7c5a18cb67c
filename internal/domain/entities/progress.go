package entities

import "time"

// ProgressStatus is the review lifecycle of a submitted progress report.

type ProgressStatus string

const (
	ProgressStatusPending  ProgressStatus = "PENDING"
	ProgressStatusApproved ProgressStatus = "APPROVED"
	ProgressStatusRejected ProgressStatus = "REJECTED"
)

// ProgressReport is a periodic physical/financial progress submission for a
// project. Both percentages are bounded to [0, 100].
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// BlockchainTxHash is an inert reference field carried for clients; nothing
// in this service writes to or reads from a chain.

// ProgressImage is a site-photo reference owned by its parent report.
// Storage of the file itself is external, like issue evidence.

type ProgressImage struct {
	ID         string    `json:"id"`
	FileRef    string    `json:"file_ref"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type ProgressReport struct {
	ID                string          `json:"id"`
	ProjectID         string          `json:"project_id"`
	PhysicalProgress  int             `json:"physical_progress"`
	FinancialProgress int             `json:"financial_progress"`
	ReportURL         string          `json:"report_url,omitempty"`
	Status            ProgressStatus  `json:"status"`
	SubmittedBy       string          `json:"submitted_by"`
	SubmittedAt       time.Time       `json:"submitted_at"`
	ReviewedBy        string          `json:"reviewed_by,omitempty"`
	ReviewedAt        *time.Time      `json:"reviewed_at,omitempty"`
	BlockchainTxHash  string          `json:"blockchain_tx_hash,omitempty"`
	Images            []ProgressImage `json:"images,omitempty"`
}
