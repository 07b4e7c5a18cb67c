package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultIssuesTableName = "issues"
	issuesProjectIDIndex   = "project_id-index"
)

type issueEvidenceItem struct {
	ID         string `dynamodbav:"id"`
	FileRef    string `dynamodbav:"file_ref"`
	UploadedBy string `dynamodbav:"uploaded_by,omitempty"`
	UploadedAt string `dynamodbav:"uploaded_at"`
}

type issueItem struct {
	ID                string              `dynamodbav:"id"`
	ProjectID         string              `dynamodbav:"project_id"`
	Title             string              `dynamodbav:"title"`
	Description       string              `dynamodbav:"description,omitempty"`
	IssueType         string              `dynamodbav:"issue_type"`
	Severity          string              `dynamodbav:"severity"`
	Status            string              `dynamodbav:"status"`
	IsForgivable      bool                `dynamodbav:"is_forgivable"`
	ForgivenessReason string              `dynamodbav:"forgiveness_reason,omitempty"`
	IsForgiven        bool                `dynamodbav:"is_forgiven"`
	ForgivenBy        string              `dynamodbav:"forgiven_by,omitempty"`
	ForgivenAt        string              `dynamodbav:"forgiven_at,omitempty"`
	ReportedBy        string              `dynamodbav:"reported_by,omitempty"`
	ReportedAt        string              `dynamodbav:"reported_at"`
	VerifiedBy        string              `dynamodbav:"verified_by,omitempty"`
	VerifiedAt        string              `dynamodbav:"verified_at,omitempty"`
	RatingImpact      string              `dynamodbav:"rating_impact"`
	ResolutionNotes   string              `dynamodbav:"resolution_notes,omitempty"`
	ResolvedAt        string              `dynamodbav:"resolved_at,omitempty"`
	Evidence          []issueEvidenceItem `dynamodbav:"evidence,omitempty"`
	CreatedAt         string              `dynamodbav:"created_at"`
	UpdatedAt         string              `dynamodbav:"updated_at"`
}

// IssueDynamoRepository persists IssueReport entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// Evidence lives as a list attribute inside the item; AddEvidence appends to
// it with list_append so attachments share the report's lifetime.

type IssueDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IIssueRepository = (*IssueDynamoRepository)(nil)

func NewIssueDynamoRepository(ddb *dynamodb.Client) *IssueDynamoRepository {
	return &IssueDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ISSUES_TABLE", defaultIssuesTableName),
	}
}

func (r *IssueDynamoRepository) Create(ctx context.Context, i entities.IssueReport) (entities.IssueReport, error) {
	it := toIssueItem(i)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.IssueReport{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.IssueReport{}, err
	}
	return i, nil
}

func (r *IssueDynamoRepository) GetByID(ctx context.Context, id string) (entities.IssueReport, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.IssueReport{}, err
	}
	if len(out.Item) == 0 {
		return entities.IssueReport{}, nil
	}

	var it issueItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.IssueReport{}, err
	}
	return fromIssueItem(it), nil
}

func (r *IssueDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.IssueReport, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(issuesProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.IssueReport, 0, len(out.Items))
	for _, raw := range out.Items {
		var it issueItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromIssueItem(it))
	}
	return items, nil
}

func (r *IssueDynamoRepository) Update(ctx context.Context, i entities.IssueReport) (entities.IssueReport, error) {
	it := toIssueItem(i)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.IssueReport{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.IssueReport{}, nil
		}
		return entities.IssueReport{}, err
	}
	return i, nil
}

func (r *IssueDynamoRepository) AddEvidence(ctx context.Context, issueID string, ev entities.IssueEvidence) (entities.IssueReport, error) {
	evAV, err := attributevalue.Marshal(toIssueEvidenceItem(ev))
	if err != nil {
		return entities.IssueReport{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: issueID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #evidence = list_append(if_not_exists(#evidence, :empty), :ev), #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ev":         &types.AttributeValueMemberL{Value: []types.AttributeValue{evAV}},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#evidence":   "evidence",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.IssueReport{}, nil
		}
		return entities.IssueReport{}, err
	}

	var it issueItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.IssueReport{}, err
	}
	return fromIssueItem(it), nil
}

func toIssueEvidenceItem(ev entities.IssueEvidence) issueEvidenceItem {
	return issueEvidenceItem{
		ID:         ev.ID,
		FileRef:    ev.FileRef,
		UploadedBy: ev.UploadedBy,
		UploadedAt: ev.UploadedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromIssueEvidenceItem(it issueEvidenceItem) entities.IssueEvidence {
	uploadedAt, _ := time.Parse(time.RFC3339Nano, it.UploadedAt)
	return entities.IssueEvidence{
		ID:         it.ID,
		FileRef:    it.FileRef,
		UploadedBy: it.UploadedBy,
		UploadedAt: uploadedAt,
	}
}

func toIssueItem(i entities.IssueReport) issueItem {
	it := issueItem{
		ID:                i.ID,
		ProjectID:         i.ProjectID,
		Title:             i.Title,
		Description:       i.Description,
		IssueType:         string(i.IssueType),
		Severity:          string(i.Severity),
		Status:            string(i.Status),
		IsForgivable:      i.IsForgivable,
		ForgivenessReason: i.ForgivenessReason,
		IsForgiven:        i.IsForgiven,
		ForgivenBy:        i.ForgivenBy,
		ForgivenAt:        formatTimePtr(i.ForgivenAt),
		ReportedBy:        i.ReportedBy,
		ReportedAt:        i.ReportedAt.UTC().Format(time.RFC3339Nano),
		VerifiedBy:        i.VerifiedBy,
		VerifiedAt:        formatTimePtr(i.VerifiedAt),
		RatingImpact:      floatToString(i.RatingImpact),
		ResolutionNotes:   i.ResolutionNotes,
		ResolvedAt:        formatTimePtr(i.ResolvedAt),
		CreatedAt:         i.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         i.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, ev := range i.Evidence {
		it.Evidence = append(it.Evidence, toIssueEvidenceItem(ev))
	}
	return it
}

func fromIssueItem(it issueItem) entities.IssueReport {
	reportedAt, _ := time.Parse(time.RFC3339Nano, it.ReportedAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	impact, _ := strconv.ParseFloat(it.RatingImpact, 64)
	i := entities.IssueReport{
		ID:                it.ID,
		ProjectID:         it.ProjectID,
		Title:             it.Title,
		Description:       it.Description,
		IssueType:         entities.IssueType(it.IssueType),
		Severity:          entities.IssueSeverity(it.Severity),
		Status:            entities.IssueStatus(it.Status),
		IsForgivable:      it.IsForgivable,
		ForgivenessReason: it.ForgivenessReason,
		IsForgiven:        it.IsForgiven,
		ForgivenBy:        it.ForgivenBy,
		ForgivenAt:        parseTimePtr(it.ForgivenAt),
		ReportedBy:        it.ReportedBy,
		ReportedAt:        reportedAt,
		VerifiedBy:        it.VerifiedBy,
		VerifiedAt:        parseTimePtr(it.VerifiedAt),
		RatingImpact:      impact,
		ResolutionNotes:   it.ResolutionNotes,
		ResolvedAt:        parseTimePtr(it.ResolvedAt),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
	for _, ev := range it.Evidence {
		i.Evidence = append(i.Evidence, fromIssueEvidenceItem(ev))
	}
	return i
}
