package repository

import (
	"context"
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
	defaultMaterialPaymentsTableName = "material_payments"
	materialPaymentsMaterialIDIndex  = "material_id-index"
)

type materialPaymentItem struct {
	ID               string `dynamodbav:"id"`
	MaterialID       string `dynamodbav:"material_id"`
	Amount           string `dynamodbav:"amount"`
	Status           string `dynamodbav:"status"`
	PaymentReference string `dynamodbav:"payment_reference,omitempty"`
	PaymentDate      string `dynamodbav:"payment_date,omitempty"`
	RecordedBy       string `dynamodbav:"recorded_by,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// MaterialPaymentDynamoRepository persists MaterialPayment records in
// DynamoDB. Records are append-only; there is no update path.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: material_id-index (PK: material_id)

type MaterialPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaterialPaymentRepository = (*MaterialPaymentDynamoRepository)(nil)

func NewMaterialPaymentDynamoRepository(ddb *dynamodb.Client) *MaterialPaymentDynamoRepository {
	return &MaterialPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MATERIAL_PAYMENTS_TABLE", defaultMaterialPaymentsTableName),
	}
}

func (r *MaterialPaymentDynamoRepository) Create(ctx context.Context, p entities.MaterialPayment) (entities.MaterialPayment, error) {
	it := toMaterialPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.MaterialPayment{}, err
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
		return entities.MaterialPayment{}, err
	}
	return p, nil
}

func (r *MaterialPaymentDynamoRepository) ListByMaterialID(ctx context.Context, materialID string) ([]entities.MaterialPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(materialPaymentsMaterialIDIndex),
		KeyConditionExpression: aws.String("material_id = :mid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberS{Value: materialID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.MaterialPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it materialPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromMaterialPaymentItem(it))
	}
	return items, nil
}

func toMaterialPaymentItem(p entities.MaterialPayment) materialPaymentItem {
	return materialPaymentItem{
		ID:               p.ID,
		MaterialID:       p.MaterialID,
		Amount:           floatToString(p.Amount),
		Status:           string(p.Status),
		PaymentReference: p.PaymentReference,
		PaymentDate:      formatTimePtr(p.PaymentDate),
		RecordedBy:       p.RecordedBy,
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMaterialPaymentItem(it materialPaymentItem) entities.MaterialPayment {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.MaterialPayment{
		ID:               it.ID,
		MaterialID:       it.MaterialID,
		Amount:           amount,
		Status:           entities.MaterialPaymentStatus(it.Status),
		PaymentReference: it.PaymentReference,
		PaymentDate:      parseTimePtr(it.PaymentDate),
		RecordedBy:       it.RecordedBy,
		CreatedAt:        createdAt,
	}
}
