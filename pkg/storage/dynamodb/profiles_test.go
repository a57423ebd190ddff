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
	"github.com/lotline/auctioneer/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFindOrCreateProfile(t *testing.T) {
	existing := &models.Profile{UserID: "frank", PreapprovalAmount: 5000, PreapprovalKey: "pa-key", Version: 3}

	t.Run("Existing Profile", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		profileAV, _ := attributevalue.MarshalMap(existing)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: profileAV}, nil).Once()

		profile, err := store.FindOrCreateProfile(context.Background(), "frank")

		assert.NoError(t, err)
		assert.Equal(t, "frank", profile.UserID)
		assert.Equal(t, int64(5000), profile.PreapprovalAmount)
		mockClient.AssertExpectations(t)
	})

	t.Run("Creates On First Lookup", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil).Once()
		mockClient.On("PutItem", mock.Anything, mock.AnythingOfType("*dynamodb.PutItemInput")).Return(&dynamodb.PutItemOutput{}, nil).Once()

		profile, err := store.FindOrCreateProfile(context.Background(), "frank")

		assert.NoError(t, err)
		assert.Equal(t, "frank", profile.UserID)
		assert.Equal(t, int64(0), profile.PreapprovalAmount)
		assert.Equal(t, int64(1), profile.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Lost Creation Race Reads Winner", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil).Once()
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{}).Once()
		winnerAV, _ := attributevalue.MarshalMap(existing)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: winnerAV}, nil).Once()

		profile, err := store.FindOrCreateProfile(context.Background(), "frank")

		assert.NoError(t, err)
		assert.Equal(t, int64(3), profile.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Get Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("get failed"))

		_, err := store.FindOrCreateProfile(context.Background(), "frank")

		assert.Error(t, err)
	})
}

func TestSetProfilePreapproval(t *testing.T) {
	expiry := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		existingAV, _ := attributevalue.MarshalMap(&models.Profile{UserID: "frank", Version: 1})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: existingAV}, nil).Once()
		mockClient.On("UpdateItem", mock.Anything, mock.AnythingOfType("*dynamodb.UpdateItemInput")).Return(&dynamodb.UpdateItemOutput{}, nil).Once()

		err := store.SetProfilePreapproval(context.Background(), "frank", "pa-key", 5000, expiry)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Update Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		existingAV, _ := attributevalue.MarshalMap(&models.Profile{UserID: "frank", Version: 1})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: existingAV}, nil).Once()
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, errors.New("update failed"))

		err := store.SetProfilePreapproval(context.Background(), "frank", "pa-key", 5000, expiry)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to set profile preapproval")
	})
}
