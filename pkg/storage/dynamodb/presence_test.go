package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/lotline/auctioneer/pkg/models"
	"github.com/lotline/auctioneer/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTouchClient(t *testing.T) {
	t.Run("No Stale Clients", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("PutItem", mock.Anything, mock.AnythingOfType("*dynamodb.PutItemInput")).Return(&dynamodb.PutItemOutput{}, nil).Once()
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{}, nil).Once()

		err := store.TouchClient(context.Background(), "frank")

		assert.NoError(t, err)
		mockClient.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
		mockClient.AssertExpectations(t)
	})

	t.Run("Prunes Stale Clients", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		stale := models.Client{UserID: "ghost", Updated: time.Now().Add(-time.Hour)}
		staleAV, _ := attributevalue.MarshalMap(stale)

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil).Once()
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{staleAV}}, nil).Once()
		mockClient.On("DeleteItem", mock.Anything, mock.AnythingOfType("*dynamodb.DeleteItemInput")).Return(&dynamodb.DeleteItemOutput{}, nil).Once()

		err := store.TouchClient(context.Background(), "frank")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})
}

func TestListActiveClients(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		active := models.Client{UserID: "frank", Updated: time.Now()}
		activeAV, _ := attributevalue.MarshalMap(active)
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{activeAV}}, nil).Once()

		clients, err := store.ListActiveClients(context.Background())

		assert.NoError(t, err)
		assert.Len(t, clients, 1)
		assert.Equal(t, "frank", clients[0].UserID)
		mockClient.AssertExpectations(t)
	})
}
