package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMaterialNotFound     = errors.New("material not found")
	ErrInvalidMaterialInput = errors.New("invalid material input")
	ErrInvalidPaymentInput  = errors.New("invalid payment input")
)

// IMaterialUseCase tracks material cost lines per project and their
// government verification.

type IMaterialUseCase interface {
	Create(ctx context.Context, cmd CreateMaterialCommand) (entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.Material, error)
	UpdateQuantities(ctx context.Context, id string, cmd UpdateMaterialCommand) (entities.Material, error)
	Verify(ctx context.Context, id, actorID string) (entities.Material, error)
	RecordPayment(ctx context.Context, materialID string, cmd RecordPaymentCommand) (entities.MaterialPayment, error)
	ListPayments(ctx context.Context, materialID string) ([]entities.MaterialPayment, error)
}

type CreateMaterialCommand struct {
	ProjectID       string
	Name            string
	Description     string
	Unit            string
	PlannedQuantity float64
	ActualQuantity  float64
	UnitPrice       float64
	SupplierName    string
	SupplierContact string
	QualityGrade    string
	ActorID         string
}

type UpdateMaterialCommand struct {
	PlannedQuantity *float64
	ActualQuantity  *float64
	UnitPrice       *float64
	ActorID         string
}

type RecordPaymentCommand struct {
	Amount           float64
	Status           entities.MaterialPaymentStatus
	PaymentReference string
	PaymentDate      *time.Time
	ActorID          string
}

type MaterialUseCase struct {
	materials interfaces.IMaterialRepository
	payments  interfaces.IMaterialPaymentRepository
	projects  interfaces.IProjectRepository
	identity  interfaces.IIdentityResolver
	audit     interfaces.IAuditSink
	clock     interfaces.IClock
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(materials interfaces.IMaterialRepository, payments interfaces.IMaterialPaymentRepository, projects interfaces.IProjectRepository, identity interfaces.IIdentityResolver, audit interfaces.IAuditSink, clock interfaces.IClock) *MaterialUseCase {
	return &MaterialUseCase{materials: materials, payments: payments, projects: projects, identity: identity, audit: audit, clock: clock}
}

func (u *MaterialUseCase) Create(ctx context.Context, cmd CreateMaterialCommand) (entities.Material, error) {
	cmd.ProjectID = strings.TrimSpace(cmd.ProjectID)
	cmd.Name = strings.TrimSpace(cmd.Name)
	if cmd.ProjectID == "" || cmd.Name == "" {
		return entities.Material{}, ErrInvalidMaterialInput
	}
	if cmd.PlannedQuantity < 0 || cmd.ActualQuantity < 0 || cmd.UnitPrice < 0 {
		return entities.Material{}, ErrInvalidMaterialInput
	}

	project, err := u.projects.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return entities.Material{}, err
	}
	if project.ID == "" {
		return entities.Material{}, ErrProjectNotFound
	}

	now := u.clock.Now()
	m := entities.Material{
		ID:              uuid.NewString(),
		ProjectID:       cmd.ProjectID,
		Name:            cmd.Name,
		Description:     cmd.Description,
		Unit:            cmd.Unit,
		PlannedQuantity: cmd.PlannedQuantity,
		ActualQuantity:  cmd.ActualQuantity,
		UnitPrice:       cmd.UnitPrice,
		SupplierName:    cmd.SupplierName,
		SupplierContact: cmd.SupplierContact,
		QualityGrade:    cmd.QualityGrade,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	m.RecomputeTotals()

	created, err := u.materials.Create(ctx, m)
	if err != nil {
		return entities.Material{}, err
	}

	u.recordAudit(ctx, cmd.ActorID, entities.AuditActionCreate, created.ID,
		fmt.Sprintf("Added material %q to project %s", created.Name, created.ProjectID))
	return created, nil
}

func (u *MaterialUseCase) GetByID(ctx context.Context, id string) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	m, err := u.materials.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if m.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	return m, nil
}

func (u *MaterialUseCase) ListByProject(ctx context.Context, projectID string) ([]entities.Material, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrProjectNotFound
	}
	return u.materials.ListByProjectID(ctx, projectID)
}

func (u *MaterialUseCase) UpdateQuantities(ctx context.Context, id string, cmd UpdateMaterialCommand) (entities.Material, error) {
	m, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}

	if cmd.PlannedQuantity != nil {
		if *cmd.PlannedQuantity < 0 {
			return entities.Material{}, ErrInvalidMaterialInput
		}
		m.PlannedQuantity = *cmd.PlannedQuantity
	}
	if cmd.ActualQuantity != nil {
		if *cmd.ActualQuantity < 0 {
			return entities.Material{}, ErrInvalidMaterialInput
		}
		m.ActualQuantity = *cmd.ActualQuantity
	}
	if cmd.UnitPrice != nil {
		if *cmd.UnitPrice < 0 {
			return entities.Material{}, ErrInvalidMaterialInput
		}
		m.UnitPrice = *cmd.UnitPrice
	}

	// Derived totals follow quantities on every save.
	m.RecomputeTotals()
	m.UpdatedAt = u.clock.Now()

	updated, err := u.materials.Update(ctx, m)
	if err != nil {
		return entities.Material{}, err
	}

	u.recordAudit(ctx, cmd.ActorID, entities.AuditActionUpdate, updated.ID,
		fmt.Sprintf("Updated material %q; cost variance %.2f", updated.Name, updated.CostVariance()))
	return updated, nil
}

func (u *MaterialUseCase) Verify(ctx context.Context, id, actorID string) (entities.Material, error) {
	if err := requireGovernment(ctx, u.identity, actorID); err != nil {
		return entities.Material{}, err
	}

	m, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}

	m.Verified = true
	m.VerifiedBy = actorID
	m.UpdatedAt = u.clock.Now()

	updated, err := u.materials.Update(ctx, m)
	if err != nil {
		return entities.Material{}, err
	}

	u.recordAudit(ctx, actorID, entities.AuditActionUpdate, updated.ID,
		fmt.Sprintf("Verified material: %s for project %s", updated.Name, updated.ProjectID))
	return updated, nil
}

// RecordPayment appends a disbursement record against a material line. The
// record is bookkeeping only; no external charge is made.
func (u *MaterialUseCase) RecordPayment(ctx context.Context, materialID string, cmd RecordPaymentCommand) (entities.MaterialPayment, error) {
	if cmd.Amount <= 0 {
		return entities.MaterialPayment{}, ErrInvalidPaymentInput
	}
	switch cmd.Status {
	case "":
		cmd.Status = entities.MaterialPaymentStatusPending
	case entities.MaterialPaymentStatusPending, entities.MaterialPaymentStatusCompleted, entities.MaterialPaymentStatusFailed:
	default:
		return entities.MaterialPayment{}, ErrInvalidPaymentInput
	}

	m, err := u.GetByID(ctx, materialID)
	if err != nil {
		return entities.MaterialPayment{}, err
	}

	p := entities.MaterialPayment{
		ID:               uuid.NewString(),
		MaterialID:       m.ID,
		Amount:           cmd.Amount,
		Status:           cmd.Status,
		PaymentReference: strings.TrimSpace(cmd.PaymentReference),
		PaymentDate:      cmd.PaymentDate,
		RecordedBy:       cmd.ActorID,
		CreatedAt:        u.clock.Now(),
	}

	created, err := u.payments.Create(ctx, p)
	if err != nil {
		return entities.MaterialPayment{}, err
	}

	u.recordAudit(ctx, cmd.ActorID, entities.AuditActionCreate, created.ID,
		fmt.Sprintf("Recorded %s payment of %.2f for material %q", created.Status, created.Amount, m.Name))
	return created, nil
}

func (u *MaterialUseCase) ListPayments(ctx context.Context, materialID string) ([]entities.MaterialPayment, error) {
	m, err := u.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	return u.payments.ListByMaterialID(ctx, m.ID)
}

func (u *MaterialUseCase) recordAudit(ctx context.Context, actorID string, action entities.AuditAction, targetID, description string) {
	err := u.audit.Record(ctx, entities.AuditEntry{
		ActorID:     actorID,
		Action:      action,
		TargetType:  "Material",
		TargetID:    targetID,
		Description: description,
		At:          u.clock.Now(),
	})
	if err != nil {
		log.Printf("[material][usecase] audit record failed material_id=%s err=%v", targetID, err)
	}
}
