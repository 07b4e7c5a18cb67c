package repository

import (
	"context"
	"errors"
	"time"

	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRatingsTableName  = "ratings"
	ratingsContractorIDIndex = "contractor_id-index"

	// Marker items share the ratings table; their PK is the composite
	// review key prefixed so they can never collide with review ids.
	ratingUniquePrefix = "uniq#"
)

type ratingEvidenceItem struct {
	ID         string `dynamodbav:"id"`
	FileRef    string `dynamodbav:"file_ref"`
	UploadedBy string `dynamodbav:"uploaded_by,omitempty"`
	UploadedAt string `dynamodbav:"uploaded_at"`
}

type ratingItem struct {
	ID               string               `dynamodbav:"id"`
	ContractorID     string               `dynamodbav:"contractor_id"`
	ProjectID        string               `dynamodbav:"project_id"`
	RatedBy          string               `dynamodbav:"rated_by"`
	RatingValue      int                  `dynamodbav:"rating_value"`
	Comment          string               `dynamodbav:"comment,omitempty"`
	IsNegative       bool                 `dynamodbav:"is_negative"`
	EvidenceRequired bool                 `dynamodbav:"evidence_required"`
	EvidenceProvided bool                 `dynamodbav:"evidence_provided"`
	IsVerified       bool                 `dynamodbav:"is_verified"`
	VerifiedBy       string               `dynamodbav:"verified_by,omitempty"`
	VerifiedAt       string               `dynamodbav:"verified_at,omitempty"`
	Evidence         []ratingEvidenceItem `dynamodbav:"evidence,omitempty"`
	CreatedAt        string               `dynamodbav:"created_at"`
	UpdatedAt        string               `dynamodbav:"updated_at"`
}

// RatingDynamoRepository persists ContractorRating entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contractor_id-index (PK: contractor_id)
//
// Create writes the review and a "uniq#<contractor>#<project>#<reviewer>"
// marker item in one transaction, both conditional on not existing. A second
// review for the same triple fails the marker's condition and surfaces as
// interfaces.ErrUniqueKeyViolation.

type RatingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRatingRepository = (*RatingDynamoRepository)(nil)

func NewRatingDynamoRepository(ddb *dynamodb.Client) *RatingDynamoRepository {
	return &RatingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RATINGS_TABLE", defaultRatingsTableName),
	}
}

func (r *RatingDynamoRepository) Create(ctx context.Context, rating entities.ContractorRating) (entities.ContractorRating, error) {
	it := toRatingItem(rating)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ContractorRating{}, err
	}

	marker := map[string]types.AttributeValue{
		"id":        &types.AttributeValueMemberS{Value: ratingUniquePrefix + rating.UniqueKey()},
		"rating_id": &types.AttributeValueMemberS{Value: rating.ID},
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                marker,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return entities.ContractorRating{}, interfaces.ErrUniqueKeyViolation
				}
			}
		}
		return entities.ContractorRating{}, err
	}
	return rating, nil
}

func (r *RatingDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContractorRating, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContractorRating{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContractorRating{}, nil
	}

	var it ratingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ContractorRating{}, err
	}
	return fromRatingItem(it), nil
}

func (r *RatingDynamoRepository) ListByContractorID(ctx context.Context, contractorID string) ([]entities.ContractorRating, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ratingsContractorIDIndex),
		KeyConditionExpression: aws.String("contractor_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: contractorID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ContractorRating, 0, len(out.Items))
	for _, raw := range out.Items {
		var it ratingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRatingItem(it))
	}
	return items, nil
}

// AddEvidence appends the attachment and latches evidence_provided in the
// same write. The latch is never reset afterwards.
func (r *RatingDynamoRepository) AddEvidence(ctx context.Context, ratingID string, ev entities.RatingEvidence) (entities.ContractorRating, error) {
	evAV, err := attributevalue.Marshal(toRatingEvidenceItem(ev))
	if err != nil {
		return entities.ContractorRating{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: ratingID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #evidence = list_append(if_not_exists(#evidence, :empty), :ev), #evidence_provided = :true, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ev":         &types.AttributeValueMemberL{Value: []types.AttributeValue{evAV}},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#evidence":          "evidence",
			"#evidence_provided": "evidence_provided",
			"#updated_at":        "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ContractorRating{}, nil
		}
		return entities.ContractorRating{}, err
	}

	var it ratingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ContractorRating{}, err
	}
	return fromRatingItem(it), nil
}

func (r *RatingDynamoRepository) MarkVerified(ctx context.Context, ratingID, verifiedBy string) (entities.ContractorRating, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: ratingID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #is_verified = :true, #verified_by = :by, #verified_at = :at, #updated_at = :at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
			":by":   &types.AttributeValueMemberS{Value: verifiedBy},
			":at":   &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#is_verified": "is_verified",
			"#verified_by": "verified_by",
			"#verified_at": "verified_at",
			"#updated_at":  "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ContractorRating{}, nil
		}
		return entities.ContractorRating{}, err
	}

	var it ratingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ContractorRating{}, err
	}
	return fromRatingItem(it), nil
}

func toRatingEvidenceItem(ev entities.RatingEvidence) ratingEvidenceItem {
	return ratingEvidenceItem{
		ID:         ev.ID,
		FileRef:    ev.FileRef,
		UploadedBy: ev.UploadedBy,
		UploadedAt: ev.UploadedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRatingEvidenceItem(it ratingEvidenceItem) entities.RatingEvidence {
	uploadedAt, _ := time.Parse(time.RFC3339Nano, it.UploadedAt)
	return entities.RatingEvidence{
		ID:         it.ID,
		FileRef:    it.FileRef,
		UploadedBy: it.UploadedBy,
		UploadedAt: uploadedAt,
	}
}

func toRatingItem(r entities.ContractorRating) ratingItem {
	it := ratingItem{
		ID:               r.ID,
		ContractorID:     r.ContractorID,
		ProjectID:        r.ProjectID,
		RatedBy:          r.RatedBy,
		RatingValue:      r.RatingValue,
		Comment:          r.Comment,
		IsNegative:       r.IsNegative,
		EvidenceRequired: r.EvidenceRequired,
		EvidenceProvided: r.EvidenceProvided,
		IsVerified:       r.IsVerified,
		VerifiedBy:       r.VerifiedBy,
		VerifiedAt:       formatTimePtr(r.VerifiedAt),
		CreatedAt:        r.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, ev := range r.Evidence {
		it.Evidence = append(it.Evidence, toRatingEvidenceItem(ev))
	}
	return it
}

func fromRatingItem(it ratingItem) entities.ContractorRating {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	r := entities.ContractorRating{
		ID:               it.ID,
		ContractorID:     it.ContractorID,
		ProjectID:        it.ProjectID,
		RatedBy:          it.RatedBy,
		RatingValue:      it.RatingValue,
		Comment:          it.Comment,
		IsNegative:       it.IsNegative,
		EvidenceRequired: it.EvidenceRequired,
		EvidenceProvided: it.EvidenceProvided,
		IsVerified:       it.IsVerified,
		VerifiedBy:       it.VerifiedBy,
		VerifiedAt:       parseTimePtr(it.VerifiedAt),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
	for _, ev := range it.Evidence {
		r.Evidence = append(r.Evidence, fromRatingEvidenceItem(ev))
	}
	return r
}
