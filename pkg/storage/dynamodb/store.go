package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/lotline/auctioneer/pkg/storage"
)

// DynamoDBAPI captures the subset of the DynamoDB client used by the store.
// Declared as an interface so tests can substitute a mock client.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Tables names the independently keyed record collections.
type Tables struct {
	Items        string
	Bids         string
	Profiles     string
	Clients      string
	Preapprovals string
	Connections  string
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client DynamoDBAPI
	Tables Tables
}

// New creates a new Store.
func New(client DynamoDBAPI, tables Tables) *Store {
	return &Store{
		Client: client,
		Tables: tables,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

const (
	// itemStatusIndex orders items of one status by their started timestamp.
	// Never-started items carry the zero time, which sorts first.
	itemStatusIndex = "status-started-index"

	bidItemIndex           = "item_id-index"
	preapprovalSecretIndex = "secret-index"
	connectionsIndex       = "pk-index"
)
