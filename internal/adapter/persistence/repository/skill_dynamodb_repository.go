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
	defaultSkillsTableName  = "contractor_skills"
	skillsContractorIDIndex = "contractor_id-index"
)

type skillItem struct {
	ID               string `dynamodbav:"id"`
	ContractorID     string `dynamodbav:"contractor_id"`
	SkillName        string `dynamodbav:"skill_name"`
	ProficiencyLevel string `dynamodbav:"proficiency_level,omitempty"`
	YearsOfPractice  int    `dynamodbav:"years_of_practice"`
	Verified         bool   `dynamodbav:"verified"`
	VerifiedBy       string `dynamodbav:"verified_by,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// SkillDynamoRepository persists ContractorSkill entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contractor_id-index (PK: contractor_id)

type SkillDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISkillRepository = (*SkillDynamoRepository)(nil)

func NewSkillDynamoRepository(ddb *dynamodb.Client) *SkillDynamoRepository {
	return &SkillDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SKILLS_TABLE", defaultSkillsTableName),
	}
}

func (r *SkillDynamoRepository) Create(ctx context.Context, s entities.ContractorSkill) (entities.ContractorSkill, error) {
	it := toSkillItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ContractorSkill{}, err
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
		return entities.ContractorSkill{}, err
	}
	return s, nil
}

func (r *SkillDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContractorSkill, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContractorSkill{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContractorSkill{}, nil
	}

	var it skillItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ContractorSkill{}, err
	}
	return fromSkillItem(it), nil
}

func (r *SkillDynamoRepository) ListByContractorID(ctx context.Context, contractorID string) ([]entities.ContractorSkill, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(skillsContractorIDIndex),
		KeyConditionExpression: aws.String("contractor_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: contractorID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ContractorSkill, 0, len(out.Items))
	for _, raw := range out.Items {
		var it skillItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSkillItem(it))
	}
	return items, nil
}

func (r *SkillDynamoRepository) Update(ctx context.Context, s entities.ContractorSkill) (entities.ContractorSkill, error) {
	it := toSkillItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ContractorSkill{}, err
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
			return entities.ContractorSkill{}, nil
		}
		return entities.ContractorSkill{}, err
	}
	return s, nil
}

func toSkillItem(s entities.ContractorSkill) skillItem {
	return skillItem{
		ID:               s.ID,
		ContractorID:     s.ContractorID,
		SkillName:        s.SkillName,
		ProficiencyLevel: s.ProficiencyLevel,
		YearsOfPractice:  s.YearsOfPractice,
		Verified:         s.Verified,
		VerifiedBy:       s.VerifiedBy,
		CreatedAt:        s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSkillItem(it skillItem) entities.ContractorSkill {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ContractorSkill{
		ID:               it.ID,
		ContractorID:     it.ContractorID,
		SkillName:        it.SkillName,
		ProficiencyLevel: it.ProficiencyLevel,
		YearsOfPractice:  it.YearsOfPractice,
		Verified:         it.Verified,
		VerifiedBy:       it.VerifiedBy,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
