package interfaces

import (
	"context"

	"fundtracker/internal/domain/entities"
)

// IIssueRepository abstracts DynamoDB persistence for IssueReport.
//
// AddEvidence appends an attachment to the item's evidence list; the
// attachment shares the lifetime of the report.

type IIssueRepository interface {
	Create(ctx context.Context, i entities.IssueReport) (entities.IssueReport, error)
	GetByID(ctx context.Context, id string) (entities.IssueReport, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.IssueReport, error)
	Update(ctx context.Context, i entities.IssueReport) (entities.IssueReport, error)
	AddEvidence(ctx context.Context, issueID string, ev entities.IssueEvidence) (entities.IssueReport, error)
}
