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
	ErrCertificateNotFound       = errors.New("certificate not found")
	ErrSkillNotFound             = errors.New("skill not found")
	ErrInvalidQualificationInput = errors.New("invalid qualification input")
)

// IQualificationUseCase manages the certificates and skills on a
// contractor's profile. Both are filed by anyone but only verified by
// government actors; the verified flag is never accepted from callers.

type IQualificationUseCase interface {
	AddCertificate(ctx context.Context, cmd AddCertificateCommand) (entities.ContractorCertificate, error)
	ListCertificates(ctx context.Context, contractorID string) ([]entities.ContractorCertificate, error)
	VerifyCertificate(ctx context.Context, id, actorID string) (entities.ContractorCertificate, error)
	AddSkill(ctx context.Context, cmd AddSkillCommand) (entities.ContractorSkill, error)
	ListSkills(ctx context.Context, contractorID string) ([]entities.ContractorSkill, error)
	VerifySkill(ctx context.Context, id, actorID string) (entities.ContractorSkill, error)
}

type AddCertificateCommand struct {
	ContractorID     string
	Name             string
	IssuingAuthority string
	IssueDate        *time.Time
	ExpiryDate       *time.Time
	ActorID          string
}

type AddSkillCommand struct {
	ContractorID     string
	SkillName        string
	ProficiencyLevel string
	YearsOfPractice  int
	ActorID          string
}

type QualificationUseCase struct {
	certificates interfaces.ICertificateRepository
	skills       interfaces.ISkillRepository
	contractors  interfaces.IContractorRepository
	identity     interfaces.IIdentityResolver
	audit        interfaces.IAuditSink
	clock        interfaces.IClock
}

var _ IQualificationUseCase = (*QualificationUseCase)(nil)

func NewQualificationUseCase(certificates interfaces.ICertificateRepository, skills interfaces.ISkillRepository, contractors interfaces.IContractorRepository, identity interfaces.IIdentityResolver, audit interfaces.IAuditSink, clock interfaces.IClock) *QualificationUseCase {
	return &QualificationUseCase{certificates: certificates, skills: skills, contractors: contractors, identity: identity, audit: audit, clock: clock}
}

func (u *QualificationUseCase) AddCertificate(ctx context.Context, cmd AddCertificateCommand) (entities.ContractorCertificate, error) {
	cmd.ContractorID = strings.TrimSpace(cmd.ContractorID)
	cmd.Name = strings.TrimSpace(cmd.Name)
	if cmd.ContractorID == "" || cmd.Name == "" {
		return entities.ContractorCertificate{}, ErrInvalidQualificationInput
	}
	if err := u.requireContractor(ctx, cmd.ContractorID); err != nil {
		return entities.ContractorCertificate{}, err
	}

	now := u.clock.Now()
	cert := entities.ContractorCertificate{
		ID:               uuid.NewString(),
		ContractorID:     cmd.ContractorID,
		Name:             cmd.Name,
		IssuingAuthority: strings.TrimSpace(cmd.IssuingAuthority),
		IssueDate:        cmd.IssueDate,
		ExpiryDate:       cmd.ExpiryDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.certificates.Create(ctx, cert)
	if err != nil {
		return entities.ContractorCertificate{}, err
	}

	u.recordAudit(ctx, cmd.ActorID, entities.AuditActionCreate, "Certificate", created.ID,
		fmt.Sprintf("Filed certificate %q for contractor %s", created.Name, created.ContractorID))
	return created, nil
}

func (u *QualificationUseCase) ListCertificates(ctx context.Context, contractorID string) ([]entities.ContractorCertificate, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return nil, ErrContractorNotFound
	}
	return u.certificates.ListByContractorID(ctx, contractorID)
}

func (u *QualificationUseCase) VerifyCertificate(ctx context.Context, id, actorID string) (entities.ContractorCertificate, error) {
	if err := requireGovernment(ctx, u.identity, actorID); err != nil {
		return entities.ContractorCertificate{}, err
	}

	cert, err := u.certificates.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.ContractorCertificate{}, err
	}
	if cert.ID == "" {
		return entities.ContractorCertificate{}, ErrCertificateNotFound
	}

	cert.Verified = true
	cert.VerifiedBy = actorID
	cert.UpdatedAt = u.clock.Now()

	updated, err := u.certificates.Update(ctx, cert)
	if err != nil {
		return entities.ContractorCertificate{}, err
	}

	u.recordAudit(ctx, actorID, entities.AuditActionUpdate, "Certificate", updated.ID,
		fmt.Sprintf("Verified certificate %q for contractor %s", updated.Name, updated.ContractorID))
	return updated, nil
}

func (u *QualificationUseCase) AddSkill(ctx context.Context, cmd AddSkillCommand) (entities.ContractorSkill, error) {
	cmd.ContractorID = strings.TrimSpace(cmd.ContractorID)
	cmd.SkillName = strings.TrimSpace(cmd.SkillName)
	if cmd.ContractorID == "" || cmd.SkillName == "" || cmd.YearsOfPractice < 0 {
		return entities.ContractorSkill{}, ErrInvalidQualificationInput
	}
	if err := u.requireContractor(ctx, cmd.ContractorID); err != nil {
		return entities.ContractorSkill{}, err
	}

	now := u.clock.Now()
	skill := entities.ContractorSkill{
		ID:               uuid.NewString(),
		ContractorID:     cmd.ContractorID,
		SkillName:        cmd.SkillName,
		ProficiencyLevel: strings.TrimSpace(cmd.ProficiencyLevel),
		YearsOfPractice:  cmd.YearsOfPractice,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.skills.Create(ctx, skill)
	if err != nil {
		return entities.ContractorSkill{}, err
	}

	u.recordAudit(ctx, cmd.ActorID, entities.AuditActionCreate, "Skill", created.ID,
		fmt.Sprintf("Declared skill %q for contractor %s", created.SkillName, created.ContractorID))
	return created, nil
}

func (u *QualificationUseCase) ListSkills(ctx context.Context, contractorID string) ([]entities.ContractorSkill, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return nil, ErrContractorNotFound
	}
	return u.skills.ListByContractorID(ctx, contractorID)
}

func (u *QualificationUseCase) VerifySkill(ctx context.Context, id, actorID string) (entities.ContractorSkill, error) {
	if err := requireGovernment(ctx, u.identity, actorID); err != nil {
		return entities.ContractorSkill{}, err
	}

	skill, err := u.skills.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.ContractorSkill{}, err
	}
	if skill.ID == "" {
		return entities.ContractorSkill{}, ErrSkillNotFound
	}

	skill.Verified = true
	skill.VerifiedBy = actorID
	skill.UpdatedAt = u.clock.Now()

	updated, err := u.skills.Update(ctx, skill)
	if err != nil {
		return entities.ContractorSkill{}, err
	}

	u.recordAudit(ctx, actorID, entities.AuditActionUpdate, "Skill", updated.ID,
		fmt.Sprintf("Verified skill %q for contractor %s", updated.SkillName, updated.ContractorID))
	return updated, nil
}

func (u *QualificationUseCase) requireContractor(ctx context.Context, contractorID string) error {
	c, err := u.contractors.GetByID(ctx, contractorID)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrContractorNotFound
	}
	return nil
}

func (u *QualificationUseCase) recordAudit(ctx context.Context, actorID string, action entities.AuditAction, targetType, targetID, description string) {
	err := u.audit.Record(ctx, entities.AuditEntry{
		ActorID:     actorID,
		Action:      action,
		TargetType:  targetType,
		TargetID:    targetID,
		Description: description,
		At:          u.clock.Now(),
	})
	if err != nil {
		log.Printf("[qualification][usecase] audit record failed target_id=%s err=%v", targetID, err)
	}
}
