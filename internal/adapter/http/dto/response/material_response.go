package response

import (
	"time"

	"fundtracker/internal/domain/entities"
)

type MaterialResponse struct {
	ID               string    `json:"id"`
	ProjectID        string    `json:"project_id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Unit             string    `json:"unit,omitempty"`
	PlannedQuantity  float64   `json:"planned_quantity"`
	ActualQuantity   float64   `json:"actual_quantity"`
	UnitPrice        float64   `json:"unit_price"`
	TotalPlannedCost float64   `json:"total_planned_cost"`
	TotalActualCost  float64   `json:"total_actual_cost"`
	CostVariance     float64   `json:"cost_variance"`
	SupplierName     string    `json:"supplier_name,omitempty"`
	SupplierContact  string    `json:"supplier_contact,omitempty"`
	QualityGrade     string    `json:"quality_grade,omitempty"`
	Verified         bool      `json:"verified"`
	VerifiedBy       string    `json:"verified_by,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromMaterial(m entities.Material) MaterialResponse {
	return MaterialResponse{
		ID:               m.ID,
		ProjectID:        m.ProjectID,
		Name:             m.Name,
		Description:      m.Description,
		Unit:             m.Unit,
		PlannedQuantity:  m.PlannedQuantity,
		ActualQuantity:   m.ActualQuantity,
		UnitPrice:        m.UnitPrice,
		TotalPlannedCost: m.TotalPlannedCost,
		TotalActualCost:  m.TotalActualCost,
		CostVariance:     m.CostVariance(),
		SupplierName:     m.SupplierName,
		SupplierContact:  m.SupplierContact,
		QualityGrade:     m.QualityGrade,
		Verified:         m.Verified,
		VerifiedBy:       m.VerifiedBy,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func FromMaterials(ms []entities.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMaterial(m))
	}
	return out
}

type MaterialPaymentResponse struct {
	ID               string     `json:"id"`
	MaterialID       string     `json:"material_id"`
	Amount           float64    `json:"amount"`
	Status           string     `json:"status"`
	PaymentReference string     `json:"payment_reference,omitempty"`
	PaymentDate      *time.Time `json:"payment_date,omitempty"`
	RecordedBy       string     `json:"recorded_by,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func FromMaterialPayment(p entities.MaterialPayment) MaterialPaymentResponse {
	return MaterialPaymentResponse{
		ID:               p.ID,
		MaterialID:       p.MaterialID,
		Amount:           p.Amount,
		Status:           string(p.Status),
		PaymentReference: p.PaymentReference,
		PaymentDate:      p.PaymentDate,
		RecordedBy:       p.RecordedBy,
		CreatedAt:        p.CreatedAt,
	}
}

func FromMaterialPayments(ps []entities.MaterialPayment) []MaterialPaymentResponse {
	out := make([]MaterialPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromMaterialPayment(p))
	}
	return out
}
