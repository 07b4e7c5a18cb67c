package request

import "time"

type CreateProjectRequest struct {
	Name        string     `json:"name" binding:"required"`
	Location    string     `json:"location"`
	Ministry    string     `json:"ministry"`
	TotalBudget float64    `json:"total_budget"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// UpdateProjectRequest carries optional field changes; absent fields leave
// the stored value untouched. Contract size and minimum rating are derived
// server-side and have no place here.
type UpdateProjectRequest struct {
	Name        *string    `json:"name"`
	Location    *string    `json:"location"`
	Ministry    *string    `json:"ministry"`
	TotalBudget *float64   `json:"total_budget"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type AssignContractorRequest struct {
	ContractorID string `json:"contractor_id" binding:"required"`
}
