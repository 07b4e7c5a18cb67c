package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProgressNotFound       = errors.New("progress report not found")
	ErrProgressOutOfRange     = errors.New("progress values must be between 0 and 100")
	ErrInvalidProgressInput   = errors.New("invalid progress input")
	ErrReportingWindowClosed  = errors.New("progress reports can only be submitted after 17:00")
	ErrSubmitterSuspended     = errors.New("suspended contractors cannot submit progress reports")
	ErrProgressAlreadyDecided = errors.New("progress report already reviewed")
)

// Contractors may only file progress reports after this local hour.
const reportingWindowOpensAt = 17

// IProgressUseCase manages progress report submission and government
// review.

type IProgressUseCase interface {
	Submit(ctx context.Context, cmd SubmitProgressCommand) (entities.ProgressReport, error)
	GetByID(ctx context.Context, id string) (entities.ProgressReport, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.ProgressReport, error)
	ListPending(ctx context.Context) ([]entities.ProgressReport, error)
	Approve(ctx context.Context, id, actorID string) (entities.ProgressReport, error)
	Reject(ctx context.Context, id, actorID string) (entities.ProgressReport, error)
	AddImage(ctx context.Context, id, fileRef, actorID string) (entities.ProgressReport, error)
}

type SubmitProgressCommand struct {
	ProjectID         string
	PhysicalProgress  int
	FinancialProgress int
	ReportURL         string
	ActorID           string
}

type ProgressUseCase struct {
	progress    interfaces.IProgressRepository
	projects    interfaces.IProjectRepository
	contractors interfaces.IContractorRepository
	identity    interfaces.IIdentityResolver
	audit       interfaces.IAuditSink
	clock       interfaces.IClock
}

var _ IProgressUseCase = (*ProgressUseCase)(nil)

func NewProgressUseCase(progress interfaces.IProgressRepository, projects interfaces.IProjectRepository, contractors interfaces.IContractorRepository, identity interfaces.IIdentityResolver, audit interfaces.IAuditSink, clock interfaces.IClock) *ProgressUseCase {
	return &ProgressUseCase{progress: progress, projects: projects, contractors: contractors, identity: identity, audit: audit, clock: clock}
}

// Submit files a new PENDING report. Contractor submitters are held to the
// after-17:00 reporting window and must not be suspended.
func (u *ProgressUseCase) Submit(ctx context.Context, cmd SubmitProgressCommand) (entities.ProgressReport, error) {
	cmd.ProjectID = strings.TrimSpace(cmd.ProjectID)
	cmd.ActorID = strings.TrimSpace(cmd.ActorID)
	if cmd.ProjectID == "" || cmd.ActorID == "" {
		return entities.ProgressReport{}, ErrInvalidProgressInput
	}
	if cmd.PhysicalProgress < 0 || cmd.PhysicalProgress > 100 || cmd.FinancialProgress < 0 || cmd.FinancialProgress > 100 {
		return entities.ProgressReport{}, ErrProgressOutOfRange
	}

	project, err := u.projects.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return entities.ProgressReport{}, err
	}
	if project.ID == "" {
		return entities.ProgressReport{}, ErrProjectNotFound
	}

	role, err := u.identity.ResolveRole(ctx, cmd.ActorID)
	if err != nil {
		return entities.ProgressReport{}, err
	}
	if role == entities.RoleContractor {
		if u.clock.Now().Hour() < reportingWindowOpensAt {
			return entities.ProgressReport{}, ErrReportingWindowClosed
		}
		account, err := u.contractors.GetByUserID(ctx, cmd.ActorID)
		if err != nil {
			return entities.ProgressReport{}, err
		}
		if account.ID != "" && account.IsSuspended {
			return entities.ProgressReport{}, ErrSubmitterSuspended
		}
	}

	p := entities.ProgressReport{
		ID:                uuid.NewString(),
		ProjectID:         cmd.ProjectID,
		PhysicalProgress:  cmd.PhysicalProgress,
		FinancialProgress: cmd.FinancialProgress,
		ReportURL:         strings.TrimSpace(cmd.ReportURL),
		Status:            entities.ProgressStatusPending,
		SubmittedBy:       cmd.ActorID,
		SubmittedAt:       u.clock.Now(),
	}

	created, err := u.progress.Create(ctx, p)
	if err != nil {
		return entities.ProgressReport{}, err
	}

	u.recordAudit(ctx, cmd.ActorID, entities.AuditActionCreate, created.ID,
		fmt.Sprintf("Submitted progress report for project %s (physical %d%%, financial %d%%)", created.ProjectID, created.PhysicalProgress, created.FinancialProgress))
	return created, nil
}

func (u *ProgressUseCase) GetByID(ctx context.Context, id string) (entities.ProgressReport, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProgressReport{}, ErrProgressNotFound
	}
	p, err := u.progress.GetByID(ctx, id)
	if err != nil {
		return entities.ProgressReport{}, err
	}
	if p.ID == "" {
		return entities.ProgressReport{}, ErrProgressNotFound
	}
	return p, nil
}

func (u *ProgressUseCase) ListByProject(ctx context.Context, projectID string) ([]entities.ProgressReport, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrProjectNotFound
	}
	return u.progress.ListByProjectID(ctx, projectID)
}

func (u *ProgressUseCase) ListPending(ctx context.Context) ([]entities.ProgressReport, error) {
	return u.progress.ListPending(ctx)
}

func (u *ProgressUseCase) Approve(ctx context.Context, id, actorID string) (entities.ProgressReport, error) {
	return u.review(ctx, id, actorID, entities.ProgressStatusApproved)
}

func (u *ProgressUseCase) Reject(ctx context.Context, id, actorID string) (entities.ProgressReport, error) {
	return u.review(ctx, id, actorID, entities.ProgressStatusRejected)
}

func (u *ProgressUseCase) review(ctx context.Context, id, actorID string, status entities.ProgressStatus) (entities.ProgressReport, error) {
	if err := requireGovernment(ctx, u.identity, actorID); err != nil {
		return entities.ProgressReport{}, err
	}

	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ProgressReport{}, err
	}
	if p.Status != entities.ProgressStatusPending {
		return entities.ProgressReport{}, ErrProgressAlreadyDecided
	}

	now := u.clock.Now()
	p.Status = status
	p.ReviewedBy = actorID
	p.ReviewedAt = &now

	updated, err := u.progress.Update(ctx, p)
	if err != nil {
		return entities.ProgressReport{}, err
	}

	verb := "Approved"
	if status == entities.ProgressStatusRejected {
		verb = "Rejected"
	}
	u.recordAudit(ctx, actorID, entities.AuditActionUpdate, updated.ID,
		fmt.Sprintf("%s progress report for project %s", verb, updated.ProjectID))
	return updated, nil
}

// AddImage attaches a site-photo reference to a report. Images append like
// issue evidence; they are never removed.
func (u *ProgressUseCase) AddImage(ctx context.Context, id, fileRef, actorID string) (entities.ProgressReport, error) {
	fileRef = strings.TrimSpace(fileRef)
	if fileRef == "" {
		return entities.ProgressReport{}, ErrInvalidProgressInput
	}

	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ProgressReport{}, err
	}

	img := entities.ProgressImage{
		ID:         uuid.NewString(),
		FileRef:    fileRef,
		UploadedBy: actorID,
		UploadedAt: u.clock.Now(),
	}

	updated, err := u.progress.AddImage(ctx, p.ID, img)
	if err != nil {
		return entities.ProgressReport{}, err
	}

	u.recordAudit(ctx, actorID, entities.AuditActionCreate, updated.ID,
		fmt.Sprintf("Attached image to progress report for project %s", updated.ProjectID))
	return updated, nil
}

func (u *ProgressUseCase) recordAudit(ctx context.Context, actorID string, action entities.AuditAction, targetID, description string) {
	err := u.audit.Record(ctx, entities.AuditEntry{
		ActorID:     actorID,
		Action:      action,
		TargetType:  "Progress",
		TargetID:    targetID,
		Description: description,
		At:          u.clock.Now(),
	})
	if err != nil {
		log.Printf("[progress][usecase] audit record failed progress_id=%s err=%v", targetID, err)
	}
}
