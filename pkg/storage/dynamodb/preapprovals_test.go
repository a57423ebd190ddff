package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/lotline/auctioneer/pkg/models"
	"github.com/lotline/auctioneer/pkg/storage"
	"github.com/lotline/auctioneer/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreatePreapproval(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("PutItem", mock.Anything, mock.AnythingOfType("*dynamodb.PutItemInput")).Return(&dynamodb.PutItemOutput{}, nil).Once()

		pa, err := store.CreatePreapproval(context.Background(), &models.Preapproval{
			UserID: "frank",
			Status: models.PreapprovalNew,
			Secret: "s1",
			Amount: 5000,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, pa.ID)
		assert.False(t, pa.CreatedAt.IsZero())
		mockClient.AssertExpectations(t)
	})
}

func TestGetPreapprovalBySecret(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		paAV, _ := attributevalue.MarshalMap(&models.Preapproval{ID: "pa-1", UserID: "frank", Secret: "s1"})
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return *input.IndexName == "secret-index"
		})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{paAV}}, nil).Once()

		pa, err := store.GetPreapprovalBySecret(context.Background(), "s1")

		assert.NoError(t, err)
		assert.Equal(t, "pa-1", pa.ID)
		mockClient.AssertExpectations(t)
	})

	t.Run("Unknown Secret", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{}, nil).Once()

		_, err := store.GetPreapprovalBySecret(context.Background(), "nope")

		assert.ErrorIs(t, err, storage.ErrPreapprovalNotFound)
	})
}

func TestUpdatePreapproval(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("PutItem", mock.Anything, mock.AnythingOfType("*dynamodb.PutItemInput")).Return(&dynamodb.PutItemOutput{}, nil).Once()

		err := store.UpdatePreapproval(context.Background(), &models.Preapproval{ID: "pa-1", Status: models.PreapprovalCompleted})

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})
}
