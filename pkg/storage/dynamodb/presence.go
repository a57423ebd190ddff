package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/lotline/auctioneer/pkg/models"
)

// presenceTTL is how long a viewer counts as active after their last heartbeat.
const presenceTTL = 600 * time.Second

// TouchClient upserts the viewer's last-seen timestamp and prunes presence
// rows older than the TTL.
func (s *Store) TouchClient(ctx context.Context, userID string) error {
	client := models.Client{UserID: userID, Updated: time.Now()}
	clientAV, err := attributevalue.MarshalMap(client)
	if err != nil {
		return fmt.Errorf("failed to marshal client: %w", err)
	}

	if _, err := s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.Tables.Clients),
		Item:      clientAV,
	}); err != nil {
		return fmt.Errorf("failed to touch client: %w", err)
	}

	stale, err := s.scanClients(ctx, "updated < :cutoff")
	if err != nil {
		return err
	}

	for _, c := range stale {
		key, err := attributevalue.MarshalMap(map[string]string{"user_id": c.UserID})
		if err != nil {
			return fmt.Errorf("failed to marshal client key: %w", err)
		}
		if _, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(s.Tables.Clients),
			Key:       key,
		}); err != nil {
			return fmt.Errorf("failed to prune stale client %s: %w", c.UserID, err)
		}
	}

	return nil
}

// ListActiveClients retrieves the viewers seen within the presence TTL.
func (s *Store) ListActiveClients(ctx context.Context) ([]models.Client, error) {
	return s.scanClients(ctx, "updated >= :cutoff")
}

func (s *Store) scanClients(ctx context.Context, filter string) ([]models.Client, error) {
	cutoff, err := time.Now().Add(-presenceTTL).MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal presence cutoff: %w", err)
	}

	result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(s.Tables.Clients),
		FilterExpression: aws.String(filter),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cutoff": &types.AttributeValueMemberS{Value: string(cutoff)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan clients table: %w", err)
	}

	var clients []models.Client
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &clients); err != nil {
		return nil, fmt.Errorf("failed to unmarshal clients: %w", err)
	}

	return clients, nil
}
