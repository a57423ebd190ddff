package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/lotline/auctioneer/pkg/notify"
	dynamostore "github.com/lotline/auctioneer/pkg/storage/dynamodb"
	"github.com/lotline/auctioneer/pkg/websockets"
)

var publisher websockets.Publisher

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")
	wsEndpoint := os.Getenv("WEBSOCKET_API_ENDPOINT")
	if connectionsTable == "" || wsEndpoint == "" {
		log.Fatal("DYNAMODB_CONNECTIONS_TABLE_NAME or WEBSOCKET_API_ENDPOINT not set")
	}

	// The notifier only touches the connections table.
	store := dynamostore.New(dbClient, dynamostore.Tables{Connections: connectionsTable})

	publisher, err = websockets.NewPublisher(store, store, wsEndpoint)
	if err != nil {
		log.Fatalf("failed to create websocket publisher: %v", err)
	}
}

// HandleRequest fans queued winner notifications out to connected viewers.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var n notify.Notification
		if err := json.Unmarshal([]byte(message.Body), &n); err != nil {
			log.Printf("ERROR: failed to unmarshal notification from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message.
			return err
		}

		msg := websockets.Message{
			Type:    websockets.MessageTypeNotification,
			Payload: n,
		}
		if err := publisher.Publish(ctx, msg); err != nil {
			log.Printf("ERROR: failed to publish notification for %s: %v", n.UserID, err)
			return err
		}

		log.Printf("Delivered notification for user %s", n.UserID)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
