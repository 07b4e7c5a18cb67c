package repository

import (
	"context"
	"sort"
	"time"

	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

const defaultAuditLogsTableName = "audit_logs"

type auditItem struct {
	ID          string `dynamodbav:"id"`
	ActorID     string `dynamodbav:"actor_id,omitempty"`
	Action      string `dynamodbav:"action"`
	TargetType  string `dynamodbav:"target_type"`
	TargetID    string `dynamodbav:"target_id"`
	Description string `dynamodbav:"description"`
	At          string `dynamodbav:"at"`
}

// AuditLogDynamoRepository persists append-only AuditEntry records in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List scans and orders newest first in memory; audit reads are an
// operator-facing admin surface, not a hot path.

type AuditLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb *dynamodb.Client) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_LOGS_TABLE", defaultAuditLogsTableName),
	}
}

func (r *AuditLogDynamoRepository) Record(ctx context.Context, e entities.AuditEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	it := toAuditItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *AuditLogDynamoRepository) List(ctx context.Context, limit int) ([]entities.AuditEntry, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.AuditEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it auditItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromAuditItem(it))
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].At.After(entries[j].At)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func toAuditItem(e entities.AuditEntry) auditItem {
	return auditItem{
		ID:          e.ID,
		ActorID:     e.ActorID,
		Action:      string(e.Action),
		TargetType:  e.TargetType,
		TargetID:    e.TargetID,
		Description: e.Description,
		At:          e.At.UTC().Format(time.RFC3339Nano),
	}
}

func fromAuditItem(it auditItem) entities.AuditEntry {
	at, _ := time.Parse(time.RFC3339Nano, it.At)
	return entities.AuditEntry{
		ID:          it.ID,
		ActorID:     it.ActorID,
		Action:      entities.AuditAction(it.Action),
		TargetType:  it.TargetType,
		TargetID:    it.TargetID,
		Description: it.Description,
		At:          at,
	}
}
