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

// CreateItem creates a new READY item record.
func (s *Store) CreateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.Status = models.ItemReady
	item.CreatedAt = time.Now()

	itemAV, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Items),
		Item:                itemAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create item in DynamoDB: %w", err)
	}

	return item, nil
}

// GetItem retrieves an item from DynamoDB by its ID.
func (s *Store) GetItem(ctx context.Context, itemID string) (*models.Item, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": itemID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Items),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get item from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrItemNotFound
	}

	var item models.Item
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}

	return &item, nil
}

// firstItemByStatus queries the status GSI for the item of the given status
// with the earliest started timestamp.
func (s *Store) firstItemByStatus(ctx context.Context, status models.ItemStatus) (*models.Item, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Items),
		IndexName:              aws.String(itemStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ScanIndexForward: aws.Bool(true),
		Limit:            aws.Int32(1),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query items by status: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, storage.ErrItemNotFound
	}

	var item models.Item
	if err := attributevalue.UnmarshalMap(result.Items[0], &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}

	return &item, nil
}

// GetCurrentItem retrieves the single INPROGRESS item.
func (s *Store) GetCurrentItem(ctx context.Context) (*models.Item, error) {
	return s.firstItemByStatus(ctx, models.ItemInProgress)
}

// NextReadyItem retrieves the READY item with the earliest started timestamp.
func (s *Store) NextReadyItem(ctx context.Context) (*models.Item, error) {
	return s.firstItemByStatus(ctx, models.ItemReady)
}

// ListItems retrieves all items from the storage.
func (s *Store) ListItems(ctx context.Context) ([]models.Item, error) {
	result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.Tables.Items),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan items table: %w", err)
	}

	var items []models.Item
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal items: %w", err)
	}

	return items, nil
}

// ListUnsettledItems retrieves FINISHED items whose auction started more than
// maxAge ago. These are won lots still awaiting payment.
func (s *Store) ListUnsettledItems(ctx context.Context, maxAge time.Duration) ([]models.Item, error) {
	cutoffTime := time.Now().Add(-maxAge)
	cutoffTimeStr, err := cutoffTime.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Items),
		IndexName:              aws.String(itemStatusIndex),
		KeyConditionExpression: aws.String("#status = :status AND started < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.ItemFinished)},
			":cutoff": &types.AttributeValueMemberS{Value: string(cutoffTimeStr)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for unsettled items: %w", err)
	}

	var items []models.Item
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal unsettled items: %w", err)
	}

	return items, nil
}

// PromoteItem transitions an item READY -> INPROGRESS and stamps its started
// timestamp. The conditional expression makes promotion safe under concurrent
// pollers: all but one lose the condition and get ErrStatusConflict.
func (s *Store) PromoteItem(ctx context.Context, itemID string, startedAt time.Time) (*models.Item, error) {
	startedAV, err := attributevalue.Marshal(startedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal started timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Items),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: itemID},
		},
		UpdateExpression:    aws.String("SET #status = :inprogress, started = :started"),
		ConditionExpression: aws.String("#status = :ready"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":inprogress": &types.AttributeValueMemberS{Value: string(models.ItemInProgress)},
			":ready":      &types.AttributeValueMemberS{Value: string(models.ItemReady)},
			":started":    startedAV,
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrStatusConflict
		}
		return nil, fmt.Errorf("failed to promote item: %w", err)
	}

	var item models.Item
	if err := attributevalue.UnmarshalMap(result.Attributes, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal promoted item: %w", err)
	}

	return &item, nil
}

// TransitionItemStatus performs a compare-and-swap on the item status.
func (s *Store) TransitionItemStatus(ctx context.Context, itemID string, from, to models.ItemStatus) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Items),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: itemID},
		},
		UpdateExpression:    aws.String("SET #status = :to"),
		ConditionExpression: aws.String("#status = :from"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":to":   &types.AttributeValueMemberS{Value: string(to)},
			":from": &types.AttributeValueMemberS{Value: string(from)},
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrStatusConflict
		}
		return fmt.Errorf("failed to transition item status: %w", err)
	}

	return nil
}

// RecycleItem transitions an unbid item INPROGRESS -> READY and resets its
// started timestamp so the item re-enters the back of the queue instead of
// immediately re-expiring against a stale start time.
func (s *Store) RecycleItem(ctx context.Context, itemID string, startedAt time.Time) error {
	startedAV, err := attributevalue.Marshal(startedAt)
	if err != nil {
		return fmt.Errorf("failed to marshal started timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Items),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: itemID},
		},
		UpdateExpression:    aws.String("SET #status = :ready, started = :started"),
		ConditionExpression: aws.String("#status = :inprogress"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ready":      &types.AttributeValueMemberS{Value: string(models.ItemReady)},
			":inprogress": &types.AttributeValueMemberS{Value: string(models.ItemInProgress)},
			":started":    startedAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrStatusConflict
		}
		return fmt.Errorf("failed to recycle item: %w", err)
	}

	return nil
}
