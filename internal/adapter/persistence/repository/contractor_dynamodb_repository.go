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
	defaultContractorsTableName = "contractors"
	contractorsUserIDIndex      = "user_id-index"
)

type contractorItem struct {
	ID                     string   `dynamodbav:"id"`
	UserID                 string   `dynamodbav:"user_id"`
	Rating                 string   `dynamodbav:"rating"`
	IsSuspended            bool     `dynamodbav:"is_suspended"`
	SuspensionReason       string   `dynamodbav:"suspension_reason,omitempty"`
	SuspendedAt            string   `dynamodbav:"suspended_at,omitempty"`
	TotalProjectsCompleted int      `dynamodbav:"total_projects_completed"`
	TotalProjectsFailed    int      `dynamodbav:"total_projects_failed"`
	YearsOfExperience      int      `dynamodbav:"years_of_experience"`
	SkillLevel             string   `dynamodbav:"skill_level,omitempty"`
	AIRating               *float64 `dynamodbav:"ai_rating,omitempty"`
	AIRiskScore            *float64 `dynamodbav:"ai_risk_score,omitempty"`
	AIRatingUpdatedAt      string   `dynamodbav:"ai_rating_updated_at,omitempty"`
	Version                int64    `dynamodbav:"version"`
	CreatedAt              string   `dynamodbav:"created_at"`
	UpdatedAt              string   `dynamodbav:"updated_at"`
}

// ContractorDynamoRepository persists Contractor entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// UpdateRating is conditional on the stored version so that two concurrent
// adjustments can never both apply against the same read state; the loser
// gets interfaces.ErrVersionConflict and the ledger re-reads.

type ContractorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractorRepository = (*ContractorDynamoRepository)(nil)

func NewContractorDynamoRepository(ddb *dynamodb.Client) *ContractorDynamoRepository {
	return &ContractorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTORS_TABLE", defaultContractorsTableName),
	}
}

func (r *ContractorDynamoRepository) Create(ctx context.Context, c entities.Contractor) (entities.Contractor, error) {
	it := toContractorItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Contractor{}, err
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
		return entities.Contractor{}, err
	}
	return c, nil
}

func (r *ContractorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contractor, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contractor{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contractor{}, nil
	}

	var it contractorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contractor{}, err
	}
	return fromContractorItem(it), nil
}

func (r *ContractorDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Contractor, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contractorsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Contractor{}, err
	}
	if len(out.Items) == 0 {
		return entities.Contractor{}, nil
	}

	var it contractorItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Contractor{}, err
	}
	return fromContractorItem(it), nil
}

func (r *ContractorDynamoRepository) ListSuspended(ctx context.Context) ([]entities.Contractor, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#is_suspended = :true"),
		ExpressionAttributeNames: map[string]string{
			"#is_suspended": "is_suspended",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Contractor, 0, len(out.Items))
	for _, raw := range out.Items {
		var it contractorItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromContractorItem(it))
	}
	return items, nil
}

func (r *ContractorDynamoRepository) UpdateRating(ctx context.Context, id string, update interfaces.RatingUpdate) (entities.Contractor, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #rating = :rating, #version = :new_version, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":rating":      &types.AttributeValueMemberS{Value: floatToString(update.NewRating)},
		":new_version": &types.AttributeValueMemberN{Value: strconv.FormatInt(update.ExpectedVersion+1, 10)},
		":updated_at":  &types.AttributeValueMemberS{Value: now},
		":expected":    &types.AttributeValueMemberN{Value: strconv.FormatInt(update.ExpectedVersion, 10)},
	}
	names := map[string]string{
		"#id":         "id",
		"#rating":     "rating",
		"#version":    "version",
		"#updated_at": "updated_at",
	}
	if update.Suspend {
		expr += ", #is_suspended = :suspended, #suspension_reason = :reason, #suspended_at = :suspended_at"
		vals[":suspended"] = &types.AttributeValueMemberBOOL{Value: true}
		vals[":reason"] = &types.AttributeValueMemberS{Value: update.SuspensionReason}
		vals[":suspended_at"] = &types.AttributeValueMemberS{Value: update.SuspendedAt.UTC().Format(time.RFC3339Nano)}
		names["#is_suspended"] = "is_suspended"
		names["#suspension_reason"] = "suspension_reason"
		names["#suspended_at"] = "suspended_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :expected"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Contractor{}, interfaces.ErrVersionConflict
		}
		return entities.Contractor{}, err
	}

	var it contractorItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Contractor{}, err
	}
	return fromContractorItem(it), nil
}

func (r *ContractorDynamoRepository) Reinstate(ctx context.Context, id string) (entities.Contractor, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #is_suspended = :false, #version = #version + :one, #updated_at = :updated_at REMOVE #suspension_reason, #suspended_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false":      &types.AttributeValueMemberBOOL{Value: false},
			":one":        &types.AttributeValueMemberN{Value: "1"},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#is_suspended":      "is_suspended",
			"#suspension_reason": "suspension_reason",
			"#suspended_at":      "suspended_at",
			"#version":           "version",
			"#updated_at":        "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Contractor{}, nil
		}
		return entities.Contractor{}, err
	}

	var it contractorItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Contractor{}, err
	}
	return fromContractorItem(it), nil
}

func toContractorItem(c entities.Contractor) contractorItem {
	it := contractorItem{
		ID:                     c.ID,
		UserID:                 c.UserID,
		Rating:                 floatToString(c.Rating),
		IsSuspended:            c.IsSuspended,
		SuspensionReason:       c.SuspensionReason,
		TotalProjectsCompleted: c.TotalProjectsCompleted,
		TotalProjectsFailed:    c.TotalProjectsFailed,
		YearsOfExperience:      c.YearsOfExperience,
		SkillLevel:             c.SkillLevel,
		AIRating:               c.AIRating,
		AIRiskScore:            c.AIRiskScore,
		Version:                c.Version,
		CreatedAt:              c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:              c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if c.SuspendedAt != nil {
		it.SuspendedAt = c.SuspendedAt.UTC().Format(time.RFC3339Nano)
	}
	if c.AIRatingUpdatedAt != nil {
		it.AIRatingUpdatedAt = c.AIRatingUpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromContractorItem(it contractorItem) entities.Contractor {
	rating, _ := strconv.ParseFloat(it.Rating, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	c := entities.Contractor{
		ID:                     it.ID,
		UserID:                 it.UserID,
		Rating:                 rating,
		IsSuspended:            it.IsSuspended,
		SuspensionReason:       it.SuspensionReason,
		TotalProjectsCompleted: it.TotalProjectsCompleted,
		TotalProjectsFailed:    it.TotalProjectsFailed,
		YearsOfExperience:      it.YearsOfExperience,
		SkillLevel:             it.SkillLevel,
		AIRating:               it.AIRating,
		AIRiskScore:            it.AIRiskScore,
		Version:                it.Version,
		CreatedAt:              createdAt,
		UpdatedAt:              updatedAt,
	}
	c.SuspendedAt = parseTimePtr(it.SuspendedAt)
	c.AIRatingUpdatedAt = parseTimePtr(it.AIRatingUpdatedAt)
	return c
}
