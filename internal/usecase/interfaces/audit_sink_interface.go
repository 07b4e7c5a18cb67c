package interfaces

import (
	"context"

	"fundtracker/internal/domain/entities"
)

// IAuditSink receives one entry per core mutation. Entries are appended
// explicitly by usecases, never as a side effect of a storage write.

type IAuditSink interface {
	Record(ctx context.Context, e entities.AuditEntry) error
}

// IAuditLogRepository is the persistent, readable form of the sink.

type IAuditLogRepository interface {
	IAuditSink
	List(ctx context.Context, limit int) ([]entities.AuditEntry, error)
}
