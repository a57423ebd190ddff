package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/lotline/auctioneer/pkg/models"
)

// getProfile retrieves a profile record, or nil when none exists.
func (s *Store) getProfile(ctx context.Context, userID string) (*models.Profile, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile user ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Profiles),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get profile from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var profile models.Profile
	if err := attributevalue.UnmarshalMap(result.Item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

// FindOrCreateProfile retrieves a bidder's profile, lazily creating it with a
// zero pre-approved balance on first lookup. A lost creation race falls back
// to reading the row the winner wrote.
func (s *Store) FindOrCreateProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.getProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	fresh := &models.Profile{
		UserID:    userID,
		Version:   1,
		CreatedAt: time.Now(),
	}

	profileAV, err := attributevalue.MarshalMap(fresh)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Profiles),
		Item:                profileAV,
		ConditionExpression: aws.String("attribute_not_exists(user_id)"),
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return s.FindOrCreateProfile(ctx, userID)
		}
		return nil, fmt.Errorf("failed to create profile in DynamoDB: %w", err)
	}

	return fresh, nil
}

// SetProfilePreapproval stores a freshly authorized credential on the profile.
// Written only by the credential-setup callback; settlement debits through
// ApplySettlement instead.
func (s *Store) SetProfilePreapproval(ctx context.Context, userID, key string, amount int64, expiry time.Time) error {
	if _, err := s.FindOrCreateProfile(ctx, userID); err != nil {
		return fmt.Errorf("failed to resolve profile for preapproval: %w", err)
	}

	expiryAV, err := attributevalue.Marshal(expiry)
	if err != nil {
		return fmt.Errorf("failed to marshal preapproval expiry: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Profiles),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression: aws.String("SET preapproval_key = :key, preapproval_amount = :amount, preapproval_expiry = :expiry, version = version + :inc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":key":    &types.AttributeValueMemberS{Value: key},
			":amount": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", amount)},
			":expiry": expiryAV,
			":inc":    &types.AttributeValueMemberN{Value: "1"},
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		return fmt.Errorf("failed to set profile preapproval: %w", err)
	}

	return nil
}
