package response

import (
	"time"

	"fundtracker/internal/domain/entities"
)

type AuditEntryResponse struct {
	ID          string    `json:"id"`
	ActorID     string    `json:"actor_id,omitempty"`
	Action      string    `json:"action"`
	TargetType  string    `json:"target_type"`
	TargetID    string    `json:"target_id"`
	Description string    `json:"description"`
	At          time.Time `json:"at"`
}

func FromAuditEntries(entries []entities.AuditEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditEntryResponse{
			ID:          e.ID,
			ActorID:     e.ActorID,
			Action:      string(e.Action),
			TargetType:  e.TargetType,
			TargetID:    e.TargetID,
			Description: e.Description,
			At:          e.At,
		})
	}
	return out
}
