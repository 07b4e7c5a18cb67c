package entities

import "time"

// Material tracks planned versus actual cost of one material line on a
// project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// TotalPlannedCost and TotalActualCost are derived from quantities and unit
// price; they are recomputed on every save and never accepted from callers.

type Material struct {
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
	SupplierName     string    `json:"supplier_name,omitempty"`
	SupplierContact  string    `json:"supplier_contact,omitempty"`
	QualityGrade     string    `json:"quality_grade,omitempty"`
	Verified         bool      `json:"verified"`
	VerifiedBy       string    `json:"verified_by,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// RecomputeTotals re-derives both cost fields from quantities and unit
// price. Every material mutator calls this before persisting.
func (m *Material) RecomputeTotals() {
	m.TotalPlannedCost = m.PlannedQuantity * m.UnitPrice
	m.TotalActualCost = m.ActualQuantity * m.UnitPrice
}

// CostVariance is actual minus planned total cost.
func (m Material) CostVariance() float64 {
	return m.TotalActualCost - m.TotalPlannedCost
}

// MaterialPaymentStatus is the settlement state of one payment record.

type MaterialPaymentStatus string

const (
	MaterialPaymentStatusPending   MaterialPaymentStatus = "PENDING"
	MaterialPaymentStatusCompleted MaterialPaymentStatus = "COMPLETED"
	MaterialPaymentStatusFailed    MaterialPaymentStatus = "FAILED"
)

// MaterialPayment is an append-only disbursement record against a material
// line. Payments are bookkeeping for transparency; no charge is executed by
// this service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (material_id-index): material_id

type MaterialPayment struct {
	ID               string                `json:"id"`
	MaterialID       string                `json:"material_id"`
	Amount           float64               `json:"amount"`
	Status           MaterialPaymentStatus `json:"status"`
	PaymentReference string                `json:"payment_reference,omitempty"`
	PaymentDate      *time.Time            `json:"payment_date,omitempty"`
	RecordedBy       string                `json:"recorded_by,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
}
