package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/lotline/auctioneer/pkg/auction"
	"github.com/lotline/auctioneer/pkg/notify"
	"github.com/lotline/auctioneer/pkg/storage"
	dynamostore "github.com/lotline/auctioneer/pkg/storage/dynamodb"
)

var store storage.Storage
var notifier notify.Notifier

// unpaidThreshold is how long a won item may sit unpaid before the winner is
// reminded again.
const unpaidThreshold = 30 * time.Minute

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	sqsClient := sqs.NewFromConfig(cfg)

	queueURL := os.Getenv("SQS_NOTIFICATIONS_QUEUE_URL")
	if queueURL == "" {
		log.Fatal("SQS_NOTIFICATIONS_QUEUE_URL environment variable not set")
	}
	notifier = notify.NewSQSNotifier(sqsClient, queueURL)

	store = dynamostore.New(dbClient, dynamostore.Tables{
		Items: os.Getenv("DYNAMODB_ITEMS_TABLE_NAME"),
		Bids:  os.Getenv("DYNAMODB_BIDS_TABLE_NAME"),
	})
}

// HandleRequest is triggered by an EventBridge Schedule. It finds won items
// whose payment never completed and re-sends the payment reminder. It never
// charges; collection stays a human decision.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting sweep for won but unpaid items...")

	items, err := store.ListUnsettledItems(ctx, unpaidThreshold)
	if err != nil {
		log.Printf("ERROR: failed to list unsettled items: %v", err)
		return err
	}

	if len(items) == 0 {
		log.Println("No unpaid items found.")
		return nil
	}

	log.Printf("Found %d unpaid items. Re-sending payment reminders...", len(items))

	for _, item := range items {
		bids, err := store.ListBidsByItem(ctx, item.ID)
		if err != nil {
			log.Printf("ERROR: failed to list bids for item %s: %v", item.ID, err)
			continue
		}
		high := auction.HighBid(bids)
		if high == nil {
			log.Printf("ERROR: unpaid item %s has no bids, skipping", item.ID)
			continue
		}

		text := fmt.Sprintf("You won %s for $%s. Payment is required.", item.Title, high.AmountDollars())
		if err := notifier.Notify(ctx, high.BidderID, notify.EventStop, text); err != nil {
			log.Printf("ERROR: failed to notify %s for item %s: %v", high.BidderID, item.ID, err)
			// Continue to the next item, don't let one failure stop the batch.
			continue
		}
		log.Printf("Reminded %s about item %s", high.BidderID, item.ID)
	}

	log.Println("Sweep finished.")
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
