package request

import "time"

type CreateMaterialRequest struct {
	ProjectID       string  `json:"project_id" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Unit            string  `json:"unit"`
	PlannedQuantity float64 `json:"planned_quantity"`
	ActualQuantity  float64 `json:"actual_quantity"`
	UnitPrice       float64 `json:"unit_price"`
	SupplierName    string  `json:"supplier_name"`
	SupplierContact string  `json:"supplier_contact"`
	QualityGrade    string  `json:"quality_grade"`
}

// UpdateMaterialRequest updates quantities and price; totals are derived
// server-side on every save.
type UpdateMaterialRequest struct {
	PlannedQuantity *float64 `json:"planned_quantity"`
	ActualQuantity  *float64 `json:"actual_quantity"`
	UnitPrice       *float64 `json:"unit_price"`
}

type RecordPaymentRequest struct {
	Amount           float64    `json:"amount" binding:"required"`
	Status           string     `json:"status"`
	PaymentReference string     `json:"payment_reference"`
	PaymentDate      *time.Time `json:"payment_date"`
}
