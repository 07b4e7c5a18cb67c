package entities

import "time"

// AuditAction is the kind of mutation an audit entry records.

type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

// AuditEntry is one append-only audit record. Every mutating operation in
// the service emits one explicitly; there is no implicit on-save logging.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Listed newest first by the read endpoint.

type AuditEntry struct {
	ID          string      `json:"id"`
	ActorID     string      `json:"actor_id,omitempty"`
	Action      AuditAction `json:"action"`
	TargetType  string      `json:"target_type"`
	TargetID    string      `json:"target_id"`
	Description string      `json:"description"`
	At          time.Time   `json:"at"`
}
