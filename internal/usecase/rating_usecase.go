package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRatingNotFound        = errors.New("rating not found")
	ErrInvalidRatingInput    = errors.New("invalid rating input")
	ErrRatingValueOutOfRange = errors.New("rating value must be between 1 and 5")
	ErrDuplicateReview       = errors.New("a review already exists for this contractor, project and reviewer")
	ErrEvidenceMissing       = errors.New("evidence is required for negative ratings but not provided")
)

// VerifyOutcome is the result of verifying and applying a review.
type VerifyOutcome struct {
	Rating    entities.ContractorRating `json:"rating"`
	Applied   bool                      `json:"applied"`
	NewRating float64                   `json:"new_contractor_rating"`
}

// IRatingUseCase implements the proof-gated review flow: a negative review
// cannot take effect until evidence is attached, and its verified delta is
// always routed through the rating ledger.

type IRatingUseCase interface {
	Create(ctx context.Context, cmd CreateRatingCommand) (entities.ContractorRating, error)
	GetByID(ctx context.Context, id string) (entities.ContractorRating, error)
	ListByContractor(ctx context.Context, contractorID string) ([]entities.ContractorRating, error)
	RecordEvidence(ctx context.Context, ratingID, fileRef, actorID string) (entities.ContractorRating, error)
	VerifyAndApply(ctx context.Context, ratingID, actorID string) (VerifyOutcome, error)
}

type CreateRatingCommand struct {
	ContractorID string
	ProjectID    string
	RatingValue  int
	Comment      string
	ActorID      string
}

type RatingUseCase struct {
	ratings     interfaces.IRatingRepository
	contractors interfaces.IContractorRepository
	ledger      IRatingLedger
	identity    interfaces.IIdentityResolver
	audit       interfaces.IAuditSink
	clock       interfaces.IClock
}

var _ IRatingUseCase = (*RatingUseCase)(nil)

func NewRatingUseCase(ratings interfaces.IRatingRepository, contractors interfaces.IContractorRepository, ledger IRatingLedger, identity interfaces.IIdentityResolver, audit interfaces.IAuditSink, clock interfaces.IClock) *RatingUseCase {
	return &RatingUseCase{ratings: ratings, contractors: contractors, ledger: ledger, identity: identity, audit: audit, clock: clock}
}

// Create records a review event. At most one review may exist per
// (contractor, project, reviewer) triple; the repository's conditional put
// enforces that and surfaces a duplicate here.
func (u *RatingUseCase) Create(ctx context.Context, cmd CreateRatingCommand) (entities.ContractorRating, error) {
	cmd.ContractorID = strings.TrimSpace(cmd.ContractorID)
	cmd.ProjectID = strings.TrimSpace(cmd.ProjectID)
	cmd.ActorID = strings.TrimSpace(cmd.ActorID)
	if cmd.ContractorID == "" || cmd.ProjectID == "" || cmd.ActorID == "" {
		return entities.ContractorRating{}, ErrInvalidRatingInput
	}
	if cmd.RatingValue < 1 || cmd.RatingValue > 5 {
		return entities.ContractorRating{}, ErrRatingValueOutOfRange
	}

	c, err := u.contractors.GetByID(ctx, cmd.ContractorID)
	if err != nil {
		return entities.ContractorRating{}, err
	}
	if c.ID == "" {
		return entities.ContractorRating{}, ErrContractorNotFound
	}

	now := u.clock.Now()
	negative := entities.IsNegativeValue(cmd.RatingValue)
	r := entities.ContractorRating{
		ID:               uuid.NewString(),
		ContractorID:     cmd.ContractorID,
		ProjectID:        cmd.ProjectID,
		RatedBy:          cmd.ActorID,
		RatingValue:      cmd.RatingValue,
		Comment:          cmd.Comment,
		IsNegative:       negative,
		EvidenceRequired: negative,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.ratings.Create(ctx, r)
	if errors.Is(err, interfaces.ErrUniqueKeyViolation) {
		return entities.ContractorRating{}, ErrDuplicateReview
	}
	if err != nil {
		return entities.ContractorRating{}, err
	}

	u.recordAudit(ctx, cmd.ActorID, entities.AuditActionCreate, created.ID,
		fmt.Sprintf("Submitted rating %d for contractor %s", created.RatingValue, created.ContractorID))
	return created, nil
}

func (u *RatingUseCase) GetByID(ctx context.Context, id string) (entities.ContractorRating, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContractorRating{}, ErrRatingNotFound
	}
	r, err := u.ratings.GetByID(ctx, id)
	if err != nil {
		return entities.ContractorRating{}, err
	}
	if r.ID == "" {
		return entities.ContractorRating{}, ErrRatingNotFound
	}
	return r, nil
}

func (u *RatingUseCase) ListByContractor(ctx context.Context, contractorID string) ([]entities.ContractorRating, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return nil, ErrContractorNotFound
	}
	return u.ratings.ListByContractorID(ctx, contractorID)
}

// RecordEvidence attaches proof to the review and latches the persisted
// evidence_provided flag. The latch is one-way and authoritative for
// verification; it is never reset.
func (u *RatingUseCase) RecordEvidence(ctx context.Context, ratingID, fileRef, actorID string) (entities.ContractorRating, error) {
	fileRef = strings.TrimSpace(fileRef)
	if fileRef == "" {
		return entities.ContractorRating{}, ErrInvalidRatingInput
	}

	r, err := u.GetByID(ctx, ratingID)
	if err != nil {
		return entities.ContractorRating{}, err
	}

	updated, err := u.ratings.AddEvidence(ctx, r.ID, entities.RatingEvidence{
		ID:         uuid.NewString(),
		FileRef:    fileRef,
		UploadedBy: actorID,
		UploadedAt: u.clock.Now(),
	})
	if err != nil {
		return entities.ContractorRating{}, err
	}

	u.recordAudit(ctx, actorID, entities.AuditActionUpdate, r.ID, "Attached evidence to rating review")
	return updated, nil
}

// VerifyAndApply marks the review verified and applies its delta to the
// contractor. The evidence gate reads the persisted latch, not request
// data, so an upload racing the verification cannot slip through.
func (u *RatingUseCase) VerifyAndApply(ctx context.Context, ratingID, actorID string) (VerifyOutcome, error) {
	if err := requireGovernment(ctx, u.identity, actorID); err != nil {
		return VerifyOutcome{}, err
	}

	r, err := u.GetByID(ctx, ratingID)
	if err != nil {
		return VerifyOutcome{}, err
	}
	if r.IsNegative && r.EvidenceRequired && !r.EvidenceProvided {
		return VerifyOutcome{}, ErrEvidenceMissing
	}

	verified, err := u.ratings.MarkVerified(ctx, r.ID, actorID)
	if err != nil {
		return VerifyOutcome{}, err
	}

	applied, newRating, err := u.applyToContractor(ctx, verified, actorID)
	if err != nil {
		return VerifyOutcome{}, err
	}

	u.recordAudit(ctx, actorID, entities.AuditActionUpdate, verified.ID,
		fmt.Sprintf("Verified and applied rating %d for contractor %s", verified.RatingValue, verified.ContractorID))
	return VerifyOutcome{Rating: verified, Applied: applied, NewRating: newRating}, nil
}

// applyToContractor converts the 1-5 value into a ledger adjustment. A
// value of exactly 3 still routes a zero-magnitude call through the ledger
// so the adjustment is auditable. Returns false without effect if the
// evidence gate re-check fails.
func (u *RatingUseCase) applyToContractor(ctx context.Context, r entities.ContractorRating, actorID string) (bool, float64, error) {
	if r.EvidenceRequired && !r.EvidenceProvided {
		return false, 0, nil
	}

	points := r.Points()
	isPositive := points >= 0
	newRating, err := u.ledger.AdjustRating(ctx, r.ContractorID, math.Abs(points), isPositive,
		fmt.Sprintf("verified review %d/5 on project %s", r.RatingValue, r.ProjectID), actorID)
	if err != nil {
		return false, 0, err
	}
	return true, newRating, nil
}

func (u *RatingUseCase) recordAudit(ctx context.Context, actorID string, action entities.AuditAction, targetID, description string) {
	err := u.audit.Record(ctx, entities.AuditEntry{
		ActorID:     actorID,
		Action:      action,
		TargetType:  "ContractorRating",
		TargetID:    targetID,
		Description: description,
		At:          u.clock.Now(),
	})
	if err != nil {
		log.Printf("[rating][usecase] audit record failed rating_id=%s err=%v", targetID, err)
	}
}
