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
	"github.com/google/uuid"
	"github.com/lotline/auctioneer/pkg/models"
	"github.com/lotline/auctioneer/pkg/storage"
)

// CreateBid appends a new bid record. Amounts stay unvalidated at this layer,
// but the append itself is transactional with a condition check that the item
// is still INPROGRESS, so a bid can never land on an auction that a
// concurrent poller already finished. Returns storage.ErrStatusConflict when
// the item has left the block.
func (s *Store) CreateBid(ctx context.Context, bid *models.Bid) (*models.Bid, error) {
	if bid.ID == "" {
		bid.ID = uuid.New().String()
	}
	bid.CreatedAt = time.Now()

	bidAV, err := attributevalue.MarshalMap(bid)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bid: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Append the bid record.
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Bids),
					Item:                bidAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				// Operation 2: Verify the item is still on the block.
				ConditionCheck: &types.ConditionCheck{
					TableName: aws.String(s.Tables.Items),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: bid.ItemID},
					},
					ConditionExpression: aws.String("#status = :inprogress"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":inprogress": &types.AttributeValueMemberS{Value: string(models.ItemInProgress)},
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var txc *types.TransactionCanceledException
		if errors.As(err, &txc) {
			for _, reason := range txc.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return nil, storage.ErrStatusConflict
				}
			}
		}
		return nil, fmt.Errorf("failed to create bid in DynamoDB: %w", err)
	}

	return bid, nil
}

// ListBidsByItem retrieves all bids placed on an item.
func (s *Store) ListBidsByItem(ctx context.Context, itemID string) ([]models.Bid, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Bids),
		IndexName:              aws.String(bidItemIndex),
		KeyConditionExpression: aws.String("item_id = :item_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":item_id": &types.AttributeValueMemberS{Value: itemID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query bids for item: %w", err)
	}

	var bids []models.Bid
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &bids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bids: %w", err)
	}

	return bids, nil
}
