package repository

import (
	"context"
	"time"

	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type userItem struct {
	ID          string `dynamodbav:"id"`
	Username    string `dynamodbav:"username"`
	Role        string `dynamodbav:"role"`
	NationalID  string `dynamodbav:"national_id,omitempty"`
	NIDVerified bool   `dynamodbav:"nid_verified"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// UserDynamoRepository persists UserProfile entities in DynamoDB and doubles
// as the identity resolver: an actor id resolves to the stored user's role.
//
// Table requirements:
//   - PK: id (string)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var (
	_ interfaces.IUserRepository   = (*UserDynamoRepository)(nil)
	_ interfaces.IIdentityResolver = (*UserDynamoRepository)(nil)
)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.UserProfile) (entities.UserProfile, error) {
	it := toUserItem(u)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.UserProfile{}, err
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
		return entities.UserProfile{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.UserProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.UserProfile{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UserProfile{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) ResolveRole(ctx context.Context, actorID string) (entities.Role, error) {
	u, err := r.GetByID(ctx, actorID)
	if err != nil {
		return "", err
	}
	if u.ID == "" {
		return "", interfaces.ErrUnknownActor
	}
	return u.Role, nil
}

func toUserItem(u entities.UserProfile) userItem {
	return userItem{
		ID:          u.ID,
		Username:    u.Username,
		Role:        string(u.Role),
		NationalID:  u.NationalID,
		NIDVerified: u.NIDVerified,
		CreatedAt:   u.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromUserItem(it userItem) entities.UserProfile {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.UserProfile{
		ID:          it.ID,
		Username:    it.Username,
		Role:        entities.Role(it.Role),
		NationalID:  it.NationalID,
		NIDVerified: it.NIDVerified,
		CreatedAt:   createdAt,
	}
}
