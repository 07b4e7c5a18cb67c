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
	defaultMaterialsTableName = "materials"
	materialsProjectIDIndex   = "project_id-index"
)

type materialItem struct {
	ID               string `dynamodbav:"id"`
	ProjectID        string `dynamodbav:"project_id"`
	Name             string `dynamodbav:"name"`
	Description      string `dynamodbav:"description,omitempty"`
	Unit             string `dynamodbav:"unit,omitempty"`
	PlannedQuantity  string `dynamodbav:"planned_quantity"`
	ActualQuantity   string `dynamodbav:"actual_quantity"`
	UnitPrice        string `dynamodbav:"unit_price"`
	TotalPlannedCost string `dynamodbav:"total_planned_cost"`
	TotalActualCost  string `dynamodbav:"total_actual_cost"`
	SupplierName     string `dynamodbav:"supplier_name,omitempty"`
	SupplierContact  string `dynamodbav:"supplier_contact,omitempty"`
	QualityGrade     string `dynamodbav:"quality_grade,omitempty"`
	Verified         bool   `dynamodbav:"verified"`
	VerifiedBy       string `dynamodbav:"verified_by,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// MaterialDynamoRepository persists Material entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)

type MaterialDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaterialRepository = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(ddb *dynamodb.Client) *MaterialDynamoRepository {
	return &MaterialDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MATERIALS_TABLE", defaultMaterialsTableName),
	}
}

func (r *MaterialDynamoRepository) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	it := toMaterialItem(m)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Material{}, err
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
		return entities.Material{}, err
	}
	return m, nil
}

func (r *MaterialDynamoRepository) GetByID(ctx context.Context, id string) (entities.Material, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Material{}, err
	}
	if len(out.Item) == 0 {
		return entities.Material{}, nil
	}

	var it materialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Material, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(materialsProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Material, 0, len(out.Items))
	for _, raw := range out.Items {
		var it materialItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromMaterialItem(it))
	}
	return items, nil
}

func (r *MaterialDynamoRepository) Update(ctx context.Context, m entities.Material) (entities.Material, error) {
	it := toMaterialItem(m)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Material{}, err
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
			return entities.Material{}, nil
		}
		return entities.Material{}, err
	}
	return m, nil
}

func toMaterialItem(m entities.Material) materialItem {
	return materialItem{
		ID:               m.ID,
		ProjectID:        m.ProjectID,
		Name:             m.Name,
		Description:      m.Description,
		Unit:             m.Unit,
		PlannedQuantity:  floatToString(m.PlannedQuantity),
		ActualQuantity:   floatToString(m.ActualQuantity),
		UnitPrice:        floatToString(m.UnitPrice),
		TotalPlannedCost: floatToString(m.TotalPlannedCost),
		TotalActualCost:  floatToString(m.TotalActualCost),
		SupplierName:     m.SupplierName,
		SupplierContact:  m.SupplierContact,
		QualityGrade:     m.QualityGrade,
		Verified:         m.Verified,
		VerifiedBy:       m.VerifiedBy,
		CreatedAt:        m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMaterialItem(it materialItem) entities.Material {
	plannedQty, _ := strconv.ParseFloat(it.PlannedQuantity, 64)
	actualQty, _ := strconv.ParseFloat(it.ActualQuantity, 64)
	unitPrice, _ := strconv.ParseFloat(it.UnitPrice, 64)
	totalPlanned, _ := strconv.ParseFloat(it.TotalPlannedCost, 64)
	totalActual, _ := strconv.ParseFloat(it.TotalActualCost, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Material{
		ID:               it.ID,
		ProjectID:        it.ProjectID,
		Name:             it.Name,
		Description:      it.Description,
		Unit:             it.Unit,
		PlannedQuantity:  plannedQty,
		ActualQuantity:   actualQty,
		UnitPrice:        unitPrice,
		TotalPlannedCost: totalPlanned,
		TotalActualCost:  totalActual,
		SupplierName:     it.SupplierName,
		SupplierContact:  it.SupplierContact,
		QualityGrade:     it.QualityGrade,
		Verified:         it.Verified,
		VerifiedBy:       it.VerifiedBy,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
