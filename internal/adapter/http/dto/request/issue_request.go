package request

type ReportIssueRequest struct {
	ProjectID   string `json:"project_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	IssueType   string `json:"issue_type" binding:"required"`
	Severity    string `json:"severity" binding:"required"`
}

type ForgiveIssueRequest struct {
	Reason string `json:"reason"`
}

type ResolveIssueRequest struct {
	Notes string `json:"notes"`
}

// EvidenceRequest attaches one file reference to an issue, rating, or
// progress report.
type EvidenceRequest struct {
	FileRef string `json:"file_ref" binding:"required"`
}
