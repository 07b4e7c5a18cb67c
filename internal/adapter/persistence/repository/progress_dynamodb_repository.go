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
	defaultProgressTableName = "progress"
	progressProjectIDIndex   = "project_id-index"
)

type progressImageItem struct {
	ID         string `dynamodbav:"id"`
	FileRef    string `dynamodbav:"file_ref"`
	UploadedBy string `dynamodbav:"uploaded_by"`
	UploadedAt string `dynamodbav:"uploaded_at"`
}

type progressItem struct {
	ID                string              `dynamodbav:"id"`
	ProjectID         string              `dynamodbav:"project_id"`
	PhysicalProgress  int                 `dynamodbav:"physical_progress"`
	FinancialProgress int                 `dynamodbav:"financial_progress"`
	ReportURL         string              `dynamodbav:"report_url,omitempty"`
	Status            string              `dynamodbav:"status"`
	SubmittedBy       string              `dynamodbav:"submitted_by"`
	SubmittedAt       string              `dynamodbav:"submitted_at"`
	ReviewedBy        string              `dynamodbav:"reviewed_by,omitempty"`
	ReviewedAt        string              `dynamodbav:"reviewed_at,omitempty"`
	BlockchainTxHash  string              `dynamodbav:"blockchain_tx_hash,omitempty"`
	Images            []progressImageItem `dynamodbav:"images,omitempty"`
}

// ProgressDynamoRepository persists ProgressReport entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)

type ProgressDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProgressRepository = (*ProgressDynamoRepository)(nil)

func NewProgressDynamoRepository(ddb *dynamodb.Client) *ProgressDynamoRepository {
	return &ProgressDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROGRESS_TABLE", defaultProgressTableName),
	}
}

func (r *ProgressDynamoRepository) Create(ctx context.Context, p entities.ProgressReport) (entities.ProgressReport, error) {
	it := toProgressItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ProgressReport{}, err
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
		return entities.ProgressReport{}, err
	}
	return p, nil
}

func (r *ProgressDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProgressReport, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProgressReport{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProgressReport{}, nil
	}

	var it progressItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProgressReport{}, err
	}
	return fromProgressItem(it), nil
}

func (r *ProgressDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.ProgressReport, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(progressProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ProgressReport, 0, len(out.Items))
	for _, raw := range out.Items {
		var it progressItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProgressItem(it))
	}
	return items, nil
}

func (r *ProgressDynamoRepository) ListPending(ctx context.Context) ([]entities.ProgressReport, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.ProgressStatusPending)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ProgressReport, 0, len(out.Items))
	for _, raw := range out.Items {
		var it progressItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProgressItem(it))
	}
	return items, nil
}

func (r *ProgressDynamoRepository) Update(ctx context.Context, p entities.ProgressReport) (entities.ProgressReport, error) {
	it := toProgressItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ProgressReport{}, err
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
			return entities.ProgressReport{}, nil
		}
		return entities.ProgressReport{}, err
	}
	return p, nil
}

// AddImage appends one image reference to the item's images list, creating
// the list on first use.
func (r *ProgressDynamoRepository) AddImage(ctx context.Context, progressID string, img entities.ProgressImage) (entities.ProgressReport, error) {
	imgAV, err := attributevalue.Marshal(toProgressImageItem(img))
	if err != nil {
		return entities.ProgressReport{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: progressID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #images = list_append(if_not_exists(#images, :empty), :img)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":img":   &types.AttributeValueMemberL{Value: []types.AttributeValue{imgAV}},
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#images": "images",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ProgressReport{}, nil
		}
		return entities.ProgressReport{}, err
	}

	var it progressItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ProgressReport{}, err
	}
	return fromProgressItem(it), nil
}

func toProgressImageItem(img entities.ProgressImage) progressImageItem {
	return progressImageItem{
		ID:         img.ID,
		FileRef:    img.FileRef,
		UploadedBy: img.UploadedBy,
		UploadedAt: img.UploadedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProgressImageItem(it progressImageItem) entities.ProgressImage {
	uploadedAt, _ := time.Parse(time.RFC3339Nano, it.UploadedAt)
	return entities.ProgressImage{
		ID:         it.ID,
		FileRef:    it.FileRef,
		UploadedBy: it.UploadedBy,
		UploadedAt: uploadedAt,
	}
}

func toProgressItem(p entities.ProgressReport) progressItem {
	var images []progressImageItem
	for _, img := range p.Images {
		images = append(images, toProgressImageItem(img))
	}
	return progressItem{
		ID:                p.ID,
		ProjectID:         p.ProjectID,
		PhysicalProgress:  p.PhysicalProgress,
		FinancialProgress: p.FinancialProgress,
		ReportURL:         p.ReportURL,
		Status:            string(p.Status),
		SubmittedBy:       p.SubmittedBy,
		SubmittedAt:       p.SubmittedAt.UTC().Format(time.RFC3339Nano),
		ReviewedBy:        p.ReviewedBy,
		ReviewedAt:        formatTimePtr(p.ReviewedAt),
		BlockchainTxHash:  p.BlockchainTxHash,
		Images:            images,
	}
}

func fromProgressItem(it progressItem) entities.ProgressReport {
	submittedAt, _ := time.Parse(time.RFC3339Nano, it.SubmittedAt)
	var images []entities.ProgressImage
	for _, img := range it.Images {
		images = append(images, fromProgressImageItem(img))
	}
	return entities.ProgressReport{
		ID:                it.ID,
		ProjectID:         it.ProjectID,
		PhysicalProgress:  it.PhysicalProgress,
		FinancialProgress: it.FinancialProgress,
		ReportURL:         it.ReportURL,
		Status:            entities.ProgressStatus(it.Status),
		SubmittedBy:       it.SubmittedBy,
		SubmittedAt:       submittedAt,
		ReviewedBy:        it.ReviewedBy,
		ReviewedAt:        parseTimePtr(it.ReviewedAt),
		BlockchainTxHash:  it.BlockchainTxHash,
		Images:            images,
	}
}
