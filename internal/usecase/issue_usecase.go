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
	ErrIssueNotFound        = errors.New("issue not found")
	ErrInvalidIssueInput    = errors.New("invalid issue input")
	ErrIssueNotForgivable   = errors.New("this issue type cannot be forgiven")
	ErrIssueAlreadyForgiven = errors.New("this issue has been forgiven")
)

// PenaltyOutcome reports what a penalize action did to the linked account.
type PenaltyOutcome struct {
	Issue     entities.IssueReport `json:"issue"`
	Penalty   float64              `json:"penalty_applied"`
	NewRating float64              `json:"new_contractor_rating"`
}

// IIssueUseCase adjudicates issue reports: forgivability classification,
// verification, forgiveness and severity-based penalties driven into the
// rating ledger.

type IIssueUseCase interface {
	Report(ctx context.Context, cmd ReportIssueCommand) (entities.IssueReport, error)
	GetByID(ctx context.Context, id string) (entities.IssueReport, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.IssueReport, error)
	AddEvidence(ctx context.Context, issueID, fileRef, actorID string) (entities.IssueReport, error)
	Verify(ctx context.Context, issueID, actorID string) (entities.IssueReport, error)
	Forgive(ctx context.Context, issueID, reason, actorID string) (entities.IssueReport, error)
	Penalize(ctx context.Context, issueID, actorID string) (PenaltyOutcome, error)
	Resolve(ctx context.Context, issueID, notes, actorID string) (entities.IssueReport, error)
}

type ReportIssueCommand struct {
	ProjectID   string
	Title       string
	Description string
	IssueType   entities.IssueType
	Severity    entities.IssueSeverity
	ActorID     string
}

type IssueUseCase struct {
	issues   interfaces.IIssueRepository
	projects interfaces.IProjectRepository
	ledger   IRatingLedger
	identity interfaces.IIdentityResolver
	audit    interfaces.IAuditSink
	clock    interfaces.IClock
}

var _ IIssueUseCase = (*IssueUseCase)(nil)

func NewIssueUseCase(issues interfaces.IIssueRepository, projects interfaces.IProjectRepository, ledger IRatingLedger, identity interfaces.IIdentityResolver, audit interfaces.IAuditSink, clock interfaces.IClock) *IssueUseCase {
	return &IssueUseCase{issues: issues, projects: projects, ledger: ledger, identity: identity, audit: audit, clock: clock}
}

func (u *IssueUseCase) Report(ctx context.Context, cmd ReportIssueCommand) (entities.IssueReport, error) {
	cmd.ProjectID = strings.TrimSpace(cmd.ProjectID)
	cmd.Title = strings.TrimSpace(cmd.Title)
	if cmd.ProjectID == "" || cmd.Title == "" || cmd.IssueType == "" || cmd.Severity == "" {
		return entities.IssueReport{}, ErrInvalidIssueInput
	}

	project, err := u.projects.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return entities.IssueReport{}, err
	}
	if project.ID == "" {
		return entities.IssueReport{}, ErrProjectNotFound
	}

	now := u.clock.Now()
	issue := entities.IssueReport{
		ID:          uuid.NewString(),
		ProjectID:   cmd.ProjectID,
		Title:       cmd.Title,
		Description: cmd.Description,
		IssueType:   cmd.IssueType,
		Severity:    cmd.Severity,
		Status:      entities.IssueStatusReported,
		ReportedBy:  cmd.ActorID,
		ReportedAt:  now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	issue.ReclassifyForgivability()

	created, err := u.issues.Create(ctx, issue)
	if err != nil {
		return entities.IssueReport{}, err
	}

	u.recordAudit(ctx, cmd.ActorID, entities.AuditActionCreate, created.ID,
		fmt.Sprintf("Reported %s/%s issue: %s", created.IssueType, created.Severity, created.Title))
	return created, nil
}

func (u *IssueUseCase) GetByID(ctx context.Context, id string) (entities.IssueReport, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.IssueReport{}, ErrIssueNotFound
	}
	issue, err := u.issues.GetByID(ctx, id)
	if err != nil {
		return entities.IssueReport{}, err
	}
	if issue.ID == "" {
		return entities.IssueReport{}, ErrIssueNotFound
	}
	return issue, nil
}

func (u *IssueUseCase) ListByProject(ctx context.Context, projectID string) ([]entities.IssueReport, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrProjectNotFound
	}
	return u.issues.ListByProjectID(ctx, projectID)
}

func (u *IssueUseCase) AddEvidence(ctx context.Context, issueID, fileRef, actorID string) (entities.IssueReport, error) {
	fileRef = strings.TrimSpace(fileRef)
	if fileRef == "" {
		return entities.IssueReport{}, ErrInvalidIssueInput
	}

	issue, err := u.GetByID(ctx, issueID)
	if err != nil {
		return entities.IssueReport{}, err
	}

	updated, err := u.issues.AddEvidence(ctx, issue.ID, entities.IssueEvidence{
		ID:         uuid.NewString(),
		FileRef:    fileRef,
		UploadedBy: actorID,
		UploadedAt: u.clock.Now(),
	})
	if err != nil {
		return entities.IssueReport{}, err
	}

	u.recordAudit(ctx, actorID, entities.AuditActionUpdate, issue.ID, "Attached evidence to issue: "+issue.Title)
	return updated, nil
}

// Verify marks a report as confirmed by the government reviewer.
func (u *IssueUseCase) Verify(ctx context.Context, issueID, actorID string) (entities.IssueReport, error) {
	if err := requireGovernment(ctx, u.identity, actorID); err != nil {
		return entities.IssueReport{}, err
	}

	issue, err := u.GetByID(ctx, issueID)
	if err != nil {
		return entities.IssueReport{}, err
	}

	now := u.clock.Now()
	issue.Status = entities.IssueStatusVerified
	issue.VerifiedBy = actorID
	issue.VerifiedAt = &now
	issue.ReclassifyForgivability()
	issue.UpdatedAt = now

	updated, err := u.issues.Update(ctx, issue)
	if err != nil {
		return entities.IssueReport{}, err
	}

	u.recordAudit(ctx, actorID, entities.AuditActionUpdate, updated.ID, "Verified issue: "+updated.Title)
	return updated, nil
}

// Forgive waives the penalty for a forgivable issue. Re-forgiving an
// already-forgiven issue is a no-op returning the stored record, so retried
// admin actions stay safe.
func (u *IssueUseCase) Forgive(ctx context.Context, issueID, reason, actorID string) (entities.IssueReport, error) {
	if err := requireGovernment(ctx, u.identity, actorID); err != nil {
		return entities.IssueReport{}, err
	}

	issue, err := u.GetByID(ctx, issueID)
	if err != nil {
		return entities.IssueReport{}, err
	}
	if !issue.IsForgivable {
		return entities.IssueReport{}, ErrIssueNotForgivable
	}
	if issue.IsForgiven {
		return issue, nil
	}

	now := u.clock.Now()
	issue.IsForgiven = true
	issue.ForgivenessReason = reason
	issue.ForgivenBy = actorID
	issue.ForgivenAt = &now
	issue.Status = entities.IssueStatusForgiven
	issue.ReclassifyForgivability()
	issue.UpdatedAt = now

	updated, err := u.issues.Update(ctx, issue)
	if err != nil {
		return entities.IssueReport{}, err
	}

	u.recordAudit(ctx, actorID, entities.AuditActionUpdate, updated.ID,
		fmt.Sprintf("Forgave issue: %s. Reason: %s", updated.Title, reason))
	return updated, nil
}

// Penalize applies the severity-based penalty for a contractor-fault issue
// to the contractor assigned to the issue's project. Forgiven issues are
// rejected before the penalty computation runs.
func (u *IssueUseCase) Penalize(ctx context.Context, issueID, actorID string) (PenaltyOutcome, error) {
	if err := requireGovernment(ctx, u.identity, actorID); err != nil {
		return PenaltyOutcome{}, err
	}

	issue, err := u.GetByID(ctx, issueID)
	if err != nil {
		return PenaltyOutcome{}, err
	}
	if issue.IsForgiven {
		return PenaltyOutcome{}, ErrIssueAlreadyForgiven
	}

	project, err := u.projects.GetByID(ctx, issue.ProjectID)
	if err != nil {
		return PenaltyOutcome{}, err
	}
	if project.ID == "" {
		return PenaltyOutcome{}, ErrProjectNotFound
	}
	if project.ContractorID == "" {
		return PenaltyOutcome{}, ErrNoContractorAssigned
	}

	outcome, err := u.applyPenalty(ctx, issue, project.ContractorID, actorID)
	if err != nil {
		return PenaltyOutcome{}, err
	}

	if outcome.Penalty > 0 {
		u.recordAudit(ctx, actorID, entities.AuditActionUpdate, issue.ID,
			fmt.Sprintf("Penalized contractor for issue: %s. Rating impact: -%.2f", issue.Title, outcome.Penalty))
	}
	return outcome, nil
}

// applyPenalty is the adjudication core: no-op zero for forgiven issues and
// for every type except contractor fault; otherwise it stores the severity
// penalty on the issue and drives it into the ledger as a negative
// adjustment.
func (u *IssueUseCase) applyPenalty(ctx context.Context, issue entities.IssueReport, contractorID, actorID string) (PenaltyOutcome, error) {
	if issue.IsForgiven || issue.IssueType != entities.IssueTypeContractorFault {
		return PenaltyOutcome{Issue: issue, Penalty: 0}, nil
	}

	penalty := entities.PenaltyForSeverity(issue.Severity)

	newRating, err := u.ledger.AdjustRating(ctx, contractorID, penalty, false,
		fmt.Sprintf("penalty for issue %q (%s severity)", issue.Title, issue.Severity), actorID)
	if err != nil {
		return PenaltyOutcome{}, err
	}

	issue.RatingImpact = penalty
	issue.Status = entities.IssueStatusPenalized
	issue.UpdatedAt = u.clock.Now()
	updated, err := u.issues.Update(ctx, issue)
	if err != nil {
		return PenaltyOutcome{}, err
	}

	return PenaltyOutcome{Issue: updated, Penalty: penalty, NewRating: newRating}, nil
}

// Resolve closes out an issue with resolution notes.
func (u *IssueUseCase) Resolve(ctx context.Context, issueID, notes, actorID string) (entities.IssueReport, error) {
	if err := requireGovernment(ctx, u.identity, actorID); err != nil {
		return entities.IssueReport{}, err
	}

	issue, err := u.GetByID(ctx, issueID)
	if err != nil {
		return entities.IssueReport{}, err
	}

	now := u.clock.Now()
	issue.Status = entities.IssueStatusResolved
	issue.ResolutionNotes = notes
	issue.ResolvedAt = &now
	issue.ReclassifyForgivability()
	issue.UpdatedAt = now

	updated, err := u.issues.Update(ctx, issue)
	if err != nil {
		return entities.IssueReport{}, err
	}

	u.recordAudit(ctx, actorID, entities.AuditActionUpdate, updated.ID, "Resolved issue: "+updated.Title)
	return updated, nil
}

func (u *IssueUseCase) recordAudit(ctx context.Context, actorID string, action entities.AuditAction, targetID, description string) {
	err := u.audit.Record(ctx, entities.AuditEntry{
		ActorID:     actorID,
		Action:      action,
		TargetType:  "IssueReport",
		TargetID:    targetID,
		Description: description,
		At:          u.clock.Now(),
	})
	if err != nil {
		log.Printf("[issue][usecase] audit record failed issue_id=%s err=%v", targetID, err)
	}
}
