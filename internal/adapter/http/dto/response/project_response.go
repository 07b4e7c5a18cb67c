package response

import (
	"time"

	"fundtracker/internal/domain/entities"
)

type ProjectResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Location            string    `json:"location,omitempty"`
	Ministry            string    `json:"ministry,omitempty"`
	ContractorID        string    `json:"contractor_id,omitempty"`
	TotalBudget         float64   `json:"total_budget"`
	ContractSize        string    `json:"contract_size"`
	MinContractorRating float64   `json:"min_contractor_rating"`
	StartDate           time.Time `json:"start_date,omitempty"`
	EndDate             time.Time `json:"end_date,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Location:            p.Location,
		Ministry:            p.Ministry,
		ContractorID:        p.ContractorID,
		TotalBudget:         p.TotalBudget,
		ContractSize:        string(p.ContractSize),
		MinContractorRating: p.MinContractorRating,
		StartDate:           p.StartDate,
		EndDate:             p.EndDate,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
