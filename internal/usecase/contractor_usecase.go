package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidContractorInput = errors.New("invalid contractor input")
	ErrContractorNotSuspended = errors.New("contractor is not suspended")
)

// IContractorUseCase manages contractor accounts: registration, lookup,
// the suspended directory and administrative reinstatement. Rating and
// suspension mutations themselves belong to the rating ledger; the one
// exception is Reinstate, the sole un-suspend path.

type IContractorUseCase interface {
	Register(ctx context.Context, cmd RegisterContractorCommand) (entities.Contractor, error)
	GetByID(ctx context.Context, id string) (entities.Contractor, error)
	ListSuspended(ctx context.Context) ([]entities.Contractor, error)
	Reinstate(ctx context.Context, id, actorID string) (entities.Contractor, error)
}

type RegisterContractorCommand struct {
	UserID            string
	YearsOfExperience int
	SkillLevel        string
	ActorID           string
}

type ContractorUseCase struct {
	contractors interfaces.IContractorRepository
	identity    interfaces.IIdentityResolver
	audit       interfaces.IAuditSink
	clock       interfaces.IClock
}

var _ IContractorUseCase = (*ContractorUseCase)(nil)

func NewContractorUseCase(contractors interfaces.IContractorRepository, identity interfaces.IIdentityResolver, audit interfaces.IAuditSink, clock interfaces.IClock) *ContractorUseCase {
	return &ContractorUseCase{contractors: contractors, identity: identity, audit: audit, clock: clock}
}

func (u *ContractorUseCase) Register(ctx context.Context, cmd RegisterContractorCommand) (entities.Contractor, error) {
	cmd.UserID = strings.TrimSpace(cmd.UserID)
	if cmd.UserID == "" || cmd.YearsOfExperience < 0 {
		return entities.Contractor{}, ErrInvalidContractorInput
	}

	now := u.clock.Now()
	c := entities.Contractor{
		ID:                uuid.NewString(),
		UserID:            cmd.UserID,
		Rating:            entities.InitialRating,
		YearsOfExperience: cmd.YearsOfExperience,
		SkillLevel:        cmd.SkillLevel,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	created, err := u.contractors.Create(ctx, c)
	if err != nil {
		return entities.Contractor{}, err
	}

	u.recordAudit(ctx, cmd.ActorID, entities.AuditActionCreate, created.ID, "Registered contractor account")
	return created, nil
}

func (u *ContractorUseCase) GetByID(ctx context.Context, id string) (entities.Contractor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contractor{}, ErrContractorNotFound
	}
	c, err := u.contractors.GetByID(ctx, id)
	if err != nil {
		return entities.Contractor{}, err
	}
	if c.ID == "" {
		return entities.Contractor{}, ErrContractorNotFound
	}
	return c, nil
}

func (u *ContractorUseCase) ListSuspended(ctx context.Context) ([]entities.Contractor, error) {
	return u.contractors.ListSuspended(ctx)
}

// Reinstate clears a suspension. Government only; suspensions never clear
// on rating recovery alone.
func (u *ContractorUseCase) Reinstate(ctx context.Context, id, actorID string) (entities.Contractor, error) {
	if err := requireGovernment(ctx, u.identity, actorID); err != nil {
		return entities.Contractor{}, err
	}

	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Contractor{}, err
	}
	if !c.IsSuspended {
		return entities.Contractor{}, ErrContractorNotSuspended
	}

	reinstated, err := u.contractors.Reinstate(ctx, c.ID)
	if err != nil {
		return entities.Contractor{}, err
	}

	u.recordAudit(ctx, actorID, entities.AuditActionUpdate, c.ID, "Reinstated contractor; suspension cleared administratively")
	return reinstated, nil
}

func (u *ContractorUseCase) recordAudit(ctx context.Context, actorID string, action entities.AuditAction, targetID, description string) {
	err := u.audit.Record(ctx, entities.AuditEntry{
		ActorID:     actorID,
		Action:      action,
		TargetType:  "Contractor",
		TargetID:    targetID,
		Description: description,
		At:          u.clock.Now(),
	})
	if err != nil {
		log.Printf("[contractor][usecase] audit record failed contractor_id=%s err=%v", targetID, err)
	}
}
