package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/lotline/auctioneer/pkg/models"
	"github.com/lotline/auctioneer/pkg/storage"
)

// CreatePreapproval records a new credential-setup attempt.
func (s *Store) CreatePreapproval(ctx context.Context, pa *models.Preapproval) (*models.Preapproval, error) {
	if pa.ID == "" {
		pa.ID = uuid.New().String()
	}
	pa.CreatedAt = time.Now()

	paAV, err := attributevalue.MarshalMap(pa)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal preapproval: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Preapprovals),
		Item:                paAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create preapproval in DynamoDB: %w", err)
	}

	return pa, nil
}

// GetPreapprovalBySecret correlates a provider return callback with the setup
// attempt that issued the secret.
func (s *Store) GetPreapprovalBySecret(ctx context.Context, secret string) (*models.Preapproval, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Preapprovals),
		IndexName:              aws.String(preapprovalSecretIndex),
		KeyConditionExpression: aws.String("secret = :secret"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":secret": &types.AttributeValueMemberS{Value: secret},
		},
		Limit: aws.Int32(1),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query preapproval by secret: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, storage.ErrPreapprovalNotFound
	}

	var pa models.Preapproval
	if err := attributevalue.UnmarshalMap(result.Items[0], &pa); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preapproval: %w", err)
	}

	return &pa, nil
}

// UpdatePreapproval persists the outcome of a setup attempt.
func (s *Store) UpdatePreapproval(ctx context.Context, pa *models.Preapproval) error {
	paAV, err := attributevalue.MarshalMap(pa)
	if err != nil {
		return fmt.Errorf("failed to marshal preapproval: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Preapprovals),
		Item:                paAV,
		ConditionExpression: aws.String("attribute_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return fmt.Errorf("failed to update preapproval in DynamoDB: %w", err)
	}

	return nil
}
