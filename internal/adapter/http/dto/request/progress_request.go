package request

type SubmitProgressRequest struct {
	ProjectID         string `json:"project_id" binding:"required"`
	PhysicalProgress  int    `json:"physical_progress"`
	FinancialProgress int    `json:"financial_progress"`
	ReportURL         string `json:"report_url"`
}
