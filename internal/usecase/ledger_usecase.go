package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase/interfaces"
)

var (
	ErrContractorNotFound = errors.New("contractor not found")
	ErrInvalidMagnitude   = errors.New("adjustment magnitude must not be negative")
	ErrAdjustConflict     = errors.New("conflicting concurrent rating adjustments")
)

const (
	// Gains are dampened, losses are amplified.
	positiveGainFactor = 0.5
	negativeLossFactor = 1.5

	maxAdjustAttempts = 3
)

// IRatingLedger owns every mutation of a contractor's rating and suspension
// fields. All other components route score changes through AdjustRating.

type IRatingLedger interface {
	AdjustRating(ctx context.Context, contractorID string, magnitude float64, isPositive bool, reason, actorID string) (float64, error)
}

type RatingLedger struct {
	contractors interfaces.IContractorRepository
	audit       interfaces.IAuditSink
	clock       interfaces.IClock
}

var _ IRatingLedger = (*RatingLedger)(nil)

func NewRatingLedger(contractors interfaces.IContractorRepository, audit interfaces.IAuditSink, clock interfaces.IClock) *RatingLedger {
	return &RatingLedger{contractors: contractors, audit: audit, clock: clock}
}

// AdjustRating applies one bounded, asymmetric score change:
//   - positive: effective delta = magnitude * 0.5
//   - negative: effective delta = magnitude * 1.5
//
// The result is clamped to [0.00, 5.00] at two-decimal precision. Landing
// below the suspension threshold suspends the contractor in the same
// operation; a result at or above it never touches the suspension fields,
// so suspension stays sticky until an administrative reinstatement.
//
// The read-adjust-write sequence runs as a compare-and-swap on the item
// version, retried a bounded number of times before surfacing a conflict.
func (u *RatingLedger) AdjustRating(ctx context.Context, contractorID string, magnitude float64, isPositive bool, reason, actorID string) (float64, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return 0, ErrContractorNotFound
	}
	if magnitude < 0 {
		return 0, ErrInvalidMagnitude
	}

	for attempt := 1; attempt <= maxAdjustAttempts; attempt++ {
		c, err := u.contractors.GetByID(ctx, contractorID)
		if err != nil {
			return 0, err
		}
		if c.ID == "" {
			return 0, ErrContractorNotFound
		}

		effective := magnitude * positiveGainFactor
		if !isPositive {
			effective = magnitude * negativeLossFactor
		}

		newRating := c.Rating + effective
		if !isPositive {
			newRating = c.Rating - effective
		}
		newRating = entities.RoundRating(entities.ClampRating(newRating))

		update := interfaces.RatingUpdate{
			NewRating:       newRating,
			ExpectedVersion: c.Version,
		}
		if newRating < entities.SuspensionThreshold && !c.IsSuspended {
			update.Suspend = true
			update.SuspensionReason = fmt.Sprintf("rating dropped to %.2f, below the %.2f threshold", newRating, entities.SuspensionThreshold)
			update.SuspendedAt = u.clock.Now()
		}

		updated, err := u.contractors.UpdateRating(ctx, contractorID, update)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[ledger][usecase] version conflict contractor_id=%s attempt=%d", contractorID, attempt)
			continue
		}
		if err != nil {
			return 0, err
		}

		direction := "+"
		if !isPositive {
			direction = "-"
		}
		u.recordAudit(ctx, actorID, c.ID, fmt.Sprintf(
			"Adjusted rating %s%.2f (magnitude %.2f): %.2f -> %.2f. Reason: %s",
			direction, effective, magnitude, c.Rating, updated.Rating, reason,
		))
		if update.Suspend {
			u.recordAudit(ctx, actorID, c.ID, "Suspended contractor: "+update.SuspensionReason)
		}
		return updated.Rating, nil
	}

	return 0, ErrAdjustConflict
}

func (u *RatingLedger) recordAudit(ctx context.Context, actorID, contractorID, description string) {
	err := u.audit.Record(ctx, entities.AuditEntry{
		ActorID:     actorID,
		Action:      entities.AuditActionUpdate,
		TargetType:  "Contractor",
		TargetID:    contractorID,
		Description: description,
		At:          u.clock.Now(),
	})
	if err != nil {
		log.Printf("[ledger][usecase] audit record failed contractor_id=%s err=%v", contractorID, err)
	}
}
