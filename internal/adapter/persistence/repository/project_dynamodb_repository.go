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

const defaultProjectsTableName = "projects"

type projectItem struct {
	ID                  string `dynamodbav:"id"`
	Name                string `dynamodbav:"name"`
	Location            string `dynamodbav:"location,omitempty"`
	Ministry            string `dynamodbav:"ministry,omitempty"`
	ContractorID        string `dynamodbav:"contractor_id,omitempty"`
	TotalBudget         string `dynamodbav:"total_budget"`
	ContractSize        string `dynamodbav:"contract_size"`
	MinContractorRating string `dynamodbav:"min_contractor_rating"`
	StartDate           string `dynamodbav:"start_date,omitempty"`
	EndDate             string `dynamodbav:"end_date,omitempty"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Update replaces the whole item; the usecase recomputes the derived sizing
// fields before every save, so the stored item is always self-consistent.

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	it := toProjectItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	it := toProjectItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
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
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	return p, nil
}

func toProjectItem(p entities.Project) projectItem {
	it := projectItem{
		ID:                  p.ID,
		Name:                p.Name,
		Location:            p.Location,
		Ministry:            p.Ministry,
		ContractorID:        p.ContractorID,
		TotalBudget:         floatToString(p.TotalBudget),
		ContractSize:        string(p.ContractSize),
		MinContractorRating: floatToString(p.MinContractorRating),
		CreatedAt:           p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !p.StartDate.IsZero() {
		it.StartDate = p.StartDate.UTC().Format(time.RFC3339Nano)
	}
	if !p.EndDate.IsZero() {
		it.EndDate = p.EndDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromProjectItem(it projectItem) entities.Project {
	budget, _ := strconv.ParseFloat(it.TotalBudget, 64)
	minRating, _ := strconv.ParseFloat(it.MinContractorRating, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	startDate, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	endDate, _ := time.Parse(time.RFC3339Nano, it.EndDate)
	return entities.Project{
		ID:                  it.ID,
		Name:                it.Name,
		Location:            it.Location,
		Ministry:            it.Ministry,
		ContractorID:        it.ContractorID,
		TotalBudget:         budget,
		ContractSize:        entities.ContractSize(it.ContractSize),
		MinContractorRating: minRating,
		StartDate:           startDate,
		EndDate:             endDate,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}
