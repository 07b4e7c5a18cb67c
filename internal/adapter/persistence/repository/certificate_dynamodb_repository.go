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
	defaultCertificatesTableName  = "contractor_certificates"
	certificatesContractorIDIndex = "contractor_id-index"
)

type certificateItem struct {
	ID               string `dynamodbav:"id"`
	ContractorID     string `dynamodbav:"contractor_id"`
	Name             string `dynamodbav:"name"`
	IssuingAuthority string `dynamodbav:"issuing_authority,omitempty"`
	IssueDate        string `dynamodbav:"issue_date,omitempty"`
	ExpiryDate       string `dynamodbav:"expiry_date,omitempty"`
	Verified         bool   `dynamodbav:"verified"`
	VerifiedBy       string `dynamodbav:"verified_by,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// CertificateDynamoRepository persists ContractorCertificate entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contractor_id-index (PK: contractor_id)

type CertificateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICertificateRepository = (*CertificateDynamoRepository)(nil)

func NewCertificateDynamoRepository(ddb *dynamodb.Client) *CertificateDynamoRepository {
	return &CertificateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CERTIFICATES_TABLE", defaultCertificatesTableName),
	}
}

func (r *CertificateDynamoRepository) Create(ctx context.Context, c entities.ContractorCertificate) (entities.ContractorCertificate, error) {
	it := toCertificateItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ContractorCertificate{}, err
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
		return entities.ContractorCertificate{}, err
	}
	return c, nil
}

func (r *CertificateDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContractorCertificate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContractorCertificate{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContractorCertificate{}, nil
	}

	var it certificateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ContractorCertificate{}, err
	}
	return fromCertificateItem(it), nil
}

func (r *CertificateDynamoRepository) ListByContractorID(ctx context.Context, contractorID string) ([]entities.ContractorCertificate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(certificatesContractorIDIndex),
		KeyConditionExpression: aws.String("contractor_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: contractorID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ContractorCertificate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it certificateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCertificateItem(it))
	}
	return items, nil
}

func (r *CertificateDynamoRepository) Update(ctx context.Context, c entities.ContractorCertificate) (entities.ContractorCertificate, error) {
	it := toCertificateItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ContractorCertificate{}, err
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
			return entities.ContractorCertificate{}, nil
		}
		return entities.ContractorCertificate{}, err
	}
	return c, nil
}

func toCertificateItem(c entities.ContractorCertificate) certificateItem {
	return certificateItem{
		ID:               c.ID,
		ContractorID:     c.ContractorID,
		Name:             c.Name,
		IssuingAuthority: c.IssuingAuthority,
		IssueDate:        formatTimePtr(c.IssueDate),
		ExpiryDate:       formatTimePtr(c.ExpiryDate),
		Verified:         c.Verified,
		VerifiedBy:       c.VerifiedBy,
		CreatedAt:        c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCertificateItem(it certificateItem) entities.ContractorCertificate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ContractorCertificate{
		ID:               it.ID,
		ContractorID:     it.ContractorID,
		Name:             it.Name,
		IssuingAuthority: it.IssuingAuthority,
		IssueDate:        parseTimePtr(it.IssueDate),
		ExpiryDate:       parseTimePtr(it.ExpiryDate),
		Verified:         it.Verified,
		VerifiedBy:       it.VerifiedBy,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
