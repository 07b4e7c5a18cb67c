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
	ErrProjectNotFound       = errors.New("project not found")
	ErrInvalidProjectInput   = errors.New("invalid project input")
	ErrContractorNotEligible = errors.New("contractor not eligible for this contract size")
	ErrContractorSuspended   = errors.New("contractor is suspended")
	ErrNoContractorAssigned  = errors.New("no contractor assigned to this project")
	ErrInvalidBudget         = errors.New("budget must not be negative")
)

// IProjectUseCase manages projects and keeps the budget-derived contract
// sizing fields consistent on every mutation.

type IProjectUseCase interface {
	Create(ctx context.Context, cmd CreateProjectCommand) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Update(ctx context.Context, id string, cmd UpdateProjectCommand) (entities.Project, error)
	AssignContractor(ctx context.Context, projectID, contractorID, actorID string) (entities.Project, error)
}

type CreateProjectCommand struct {
	Name        string
	Location    string
	Ministry    string
	TotalBudget float64
	StartDate   time.Time
	EndDate     time.Time
	ActorID     string
}

// UpdateProjectCommand carries optional field changes; nil leaves a field
// untouched. Derived sizing fields are deliberately absent: they are
// recomputed, never accepted.
type UpdateProjectCommand struct {
	Name        *string
	Location    *string
	Ministry    *string
	TotalBudget *float64
	StartDate   *time.Time
	EndDate     *time.Time
	ActorID     string
}

type ProjectUseCase struct {
	projects    interfaces.IProjectRepository
	eligibility IEligibilityUseCase
	identity    interfaces.IIdentityResolver
	audit       interfaces.IAuditSink
	clock       interfaces.IClock
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(projects interfaces.IProjectRepository, eligibility IEligibilityUseCase, identity interfaces.IIdentityResolver, audit interfaces.IAuditSink, clock interfaces.IClock) *ProjectUseCase {
	return &ProjectUseCase{projects: projects, eligibility: eligibility, identity: identity, audit: audit, clock: clock}
}

func (u *ProjectUseCase) Create(ctx context.Context, cmd CreateProjectCommand) (entities.Project, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if cmd.Name == "" {
		return entities.Project{}, ErrInvalidProjectInput
	}
	if cmd.TotalBudget < 0 {
		return entities.Project{}, ErrInvalidBudget
	}

	now := u.clock.Now()
	p := entities.Project{
		ID:          uuid.NewString(),
		Name:        cmd.Name,
		Location:    strings.TrimSpace(cmd.Location),
		Ministry:    strings.TrimSpace(cmd.Ministry),
		TotalBudget: cmd.TotalBudget,
		StartDate:   cmd.StartDate,
		EndDate:     cmd.EndDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	p.RecomputeContractSizing()

	created, err := u.projects.Create(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}

	u.recordAudit(ctx, cmd.ActorID, entities.AuditActionCreate, created.ID,
		fmt.Sprintf("Created project %q with budget %.2f (%s contract)", created.Name, created.TotalBudget, created.ContractSize))
	return created, nil
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) Update(ctx context.Context, id string, cmd UpdateProjectCommand) (entities.Project, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	if cmd.Name != nil {
		if strings.TrimSpace(*cmd.Name) == "" {
			return entities.Project{}, ErrInvalidProjectInput
		}
		p.Name = strings.TrimSpace(*cmd.Name)
	}
	if cmd.Location != nil {
		p.Location = strings.TrimSpace(*cmd.Location)
	}
	if cmd.Ministry != nil {
		p.Ministry = strings.TrimSpace(*cmd.Ministry)
	}
	if cmd.TotalBudget != nil {
		if *cmd.TotalBudget < 0 {
			return entities.Project{}, ErrInvalidBudget
		}
		p.TotalBudget = *cmd.TotalBudget
	}
	if cmd.StartDate != nil {
		p.StartDate = *cmd.StartDate
	}
	if cmd.EndDate != nil {
		p.EndDate = *cmd.EndDate
	}

	// Derived fields follow the budget on every save.
	p.RecomputeContractSizing()
	p.UpdatedAt = u.clock.Now()

	updated, err := u.projects.Update(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}

	u.recordAudit(ctx, cmd.ActorID, entities.AuditActionUpdate, updated.ID,
		fmt.Sprintf("Updated project %q; budget %.2f (%s contract)", updated.Name, updated.TotalBudget, updated.ContractSize))
	return updated, nil
}

// AssignContractor proposes a contractor for the project and enforces the
// eligibility policy against the project's contract size.
func (u *ProjectUseCase) AssignContractor(ctx context.Context, projectID, contractorID, actorID string) (entities.Project, error) {
	if err := requireGovernment(ctx, u.identity, actorID); err != nil {
		return entities.Project{}, err
	}

	p, err := u.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}

	result, err := u.eligibility.Check(ctx, contractorID, p.ContractSize)
	if err != nil {
		return entities.Project{}, err
	}
	if !result.Eligible {
		if result.Reason == ReasonSuspended {
			return entities.Project{}, ErrContractorSuspended
		}
		return entities.Project{}, ErrContractorNotEligible
	}

	p.ContractorID = strings.TrimSpace(contractorID)
	p.UpdatedAt = u.clock.Now()
	updated, err := u.projects.Update(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}

	u.recordAudit(ctx, actorID, entities.AuditActionUpdate, updated.ID,
		fmt.Sprintf("Assigned contractor %s to project %q", updated.ContractorID, updated.Name))
	return updated, nil
}

func (u *ProjectUseCase) recordAudit(ctx context.Context, actorID string, action entities.AuditAction, targetID, description string) {
	err := u.audit.Record(ctx, entities.AuditEntry{
		ActorID:     actorID,
		Action:      action,
		TargetType:  "Project",
		TargetID:    targetID,
		Description: description,
		At:          u.clock.Now(),
	})
	if err != nil {
		log.Printf("[project][usecase] audit record failed project_id=%s err=%v", targetID, err)
	}
}
