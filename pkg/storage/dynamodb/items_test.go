package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/lotline/auctioneer/pkg/models"
	"github.com/lotline/auctioneer/pkg/storage"
	"github.com/lotline/auctioneer/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testTables() Tables {
	return Tables{
		Items:        "items",
		Bids:         "bids",
		Profiles:     "profiles",
		Clients:      "clients",
		Preapprovals: "preapprovals",
		Connections:  "connections",
	}
}

func TestCreateItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("PutItem", mock.Anything, mock.AnythingOfType("*dynamodb.PutItemInput")).Return(&dynamodb.PutItemOutput{}, nil).Once()

		created, err := store.CreateItem(context.Background(), &models.Item{Title: "Lamp"})

		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, models.ItemReady, created.Status)
		assert.False(t, created.CreatedAt.IsZero())
		mockClient.AssertExpectations(t)
	})

	t.Run("Put Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("put failed"))

		_, err := store.CreateItem(context.Background(), &models.Item{Title: "Lamp"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create item")
	})
}

func TestGetItem(t *testing.T) {
	item := &models.Item{ID: "item-1", Title: "Lamp", Status: models.ItemInProgress}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		itemAV, _ := attributevalue.MarshalMap(item)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: itemAV}, nil).Once()

		got, err := store.GetItem(context.Background(), "item-1")

		assert.NoError(t, err)
		assert.Equal(t, "item-1", got.ID)
		assert.Equal(t, models.ItemInProgress, got.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil).Once()

		_, err := store.GetItem(context.Background(), "item-1")

		assert.ErrorIs(t, err, storage.ErrItemNotFound)
	})
}

func TestGetCurrentItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		item := &models.Item{ID: "item-1", Status: models.ItemInProgress}
		itemAV, _ := attributevalue.MarshalMap(item)
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return *input.IndexName == "status-started-index"
		})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{itemAV}}, nil).Once()

		got, err := store.GetCurrentItem(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "item-1", got.ID)
		mockClient.AssertExpectations(t)
	})

	t.Run("No Active Auction", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{}, nil).Once()

		_, err := store.GetCurrentItem(context.Background())

		assert.ErrorIs(t, err, storage.ErrItemNotFound)
	})
}

func TestPromoteItem(t *testing.T) {
	startedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		promoted := &models.Item{ID: "item-1", Status: models.ItemInProgress, Started: startedAt}
		promotedAV, _ := attributevalue.MarshalMap(promoted)
		mockClient.On("UpdateItem", mock.Anything, mock.AnythingOfType("*dynamodb.UpdateItemInput")).Return(&dynamodb.UpdateItemOutput{Attributes: promotedAV}, nil).Once()

		got, err := store.PromoteItem(context.Background(), "item-1", startedAt)

		assert.NoError(t, err)
		assert.Equal(t, models.ItemInProgress, got.Status)
		assert.True(t, got.Started.Equal(startedAt))
		mockClient.AssertExpectations(t)
	})

	t.Run("Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{}).Once()

		_, err := store.PromoteItem(context.Background(), "item-1", startedAt)

		assert.ErrorIs(t, err, storage.ErrStatusConflict)
	})
}

func TestTransitionItemStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("UpdateItem", mock.Anything, mock.AnythingOfType("*dynamodb.UpdateItemInput")).Return(&dynamodb.UpdateItemOutput{}, nil).Once()

		err := store.TransitionItemStatus(context.Background(), "item-1", models.ItemInProgress, models.ItemFinished)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{}).Once()

		err := store.TransitionItemStatus(context.Background(), "item-1", models.ItemFinished, models.ItemSettling)

		assert.ErrorIs(t, err, storage.ErrStatusConflict)
	})
}

func TestRecycleItem(t *testing.T) {
	startedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("UpdateItem", mock.Anything, mock.AnythingOfType("*dynamodb.UpdateItemInput")).Return(&dynamodb.UpdateItemOutput{}, nil).Once()

		err := store.RecycleItem(context.Background(), "item-1", startedAt)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{}).Once()

		err := store.RecycleItem(context.Background(), "item-1", startedAt)

		assert.ErrorIs(t, err, storage.ErrStatusConflict)
	})
}

func TestListUnsettledItems(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		item := &models.Item{ID: "item-1", Status: models.ItemFinished}
		itemAV, _ := attributevalue.MarshalMap(item)
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return *input.IndexName == "status-started-index"
		})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{itemAV}}, nil).Once()

		items, err := store.ListUnsettledItems(context.Background(), 30*time.Minute)

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "item-1", items[0].ID)
		mockClient.AssertExpectations(t)
	})
}
