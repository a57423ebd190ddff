package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/lotline/auctioneer/pkg/auction"
	"github.com/lotline/auctioneer/pkg/handlers"
	auctionhandler "github.com/lotline/auctioneer/pkg/handlers/auction"
	itemshandler "github.com/lotline/auctioneer/pkg/handlers/items"
	preapprovalshandler "github.com/lotline/auctioneer/pkg/handlers/preapprovals"
	presencehandler "github.com/lotline/auctioneer/pkg/handlers/presence"
	profileshandler "github.com/lotline/auctioneer/pkg/handlers/profiles"
	wshandler "github.com/lotline/auctioneer/pkg/handlers/websockets"
	"github.com/lotline/auctioneer/pkg/notify"
	"github.com/lotline/auctioneer/pkg/payments"
	"github.com/lotline/auctioneer/pkg/settlement"
	dynamostore "github.com/lotline/auctioneer/pkg/storage/dynamodb"
	"github.com/lotline/auctioneer/pkg/websockets"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	tables := dynamostore.Tables{
		Items:        os.Getenv("DYNAMODB_ITEMS_TABLE_NAME"),
		Bids:         os.Getenv("DYNAMODB_BIDS_TABLE_NAME"),
		Profiles:     os.Getenv("DYNAMODB_PROFILES_TABLE_NAME"),
		Clients:      os.Getenv("DYNAMODB_CLIENTS_TABLE_NAME"),
		Preapprovals: os.Getenv("DYNAMODB_PREAPPROVALS_TABLE_NAME"),
		Connections:  os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME"),
	}
	if tables.Items == "" || tables.Bids == "" || tables.Profiles == "" ||
		tables.Clients == "" || tables.Preapprovals == "" || tables.Connections == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	store := dynamostore.New(dbClient, tables)

	// Payment gateway
	gateway := payments.NewClient(os.Getenv("PAYMENTS_ENDPOINT"), os.Getenv("PAYMENTS_API_KEY"))

	// Winner notifications go to SQS when a queue is configured; otherwise the
	// local server just logs them.
	var notifier notify.Notifier = &notify.NoOpNotifier{}
	if queueURL := os.Getenv("SQS_NOTIFICATIONS_QUEUE_URL"); queueURL != "" {
		notifier = notify.NewSQSNotifier(sqs.NewFromConfig(cfg), queueURL)
	}

	// Bid updates are pushed through API Gateway when an endpoint is
	// configured; local development falls back to a no-op publisher.
	var publisher websockets.Publisher = &websockets.NoOpPublisher{}
	if wsEndpoint := os.Getenv("WEBSOCKET_API_ENDPOINT"); wsEndpoint != "" {
		publisher, err = websockets.NewPublisher(store, store, wsEndpoint)
		if err != nil {
			log.Fatalf("failed to create websocket publisher: %v", err)
		}
	}

	engineCfg := auction.Config{}
	if raw := os.Getenv("AUCTION_BID_WAIT_S"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("invalid AUCTION_BID_WAIT_S: %v", err)
		}
		engineCfg.BidWait = time.Duration(seconds) * time.Second
	}

	ledger := auction.NewLedger(store)
	settler := settlement.New(store, store, store, gateway)
	engine := auction.NewEngine(store, ledger, settler, notifier, engineCfg)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	router := handlers.NewRouter(logger, handlers.Handlers{
		Auction:      auctionhandler.NewHandler(engine, publisher),
		Items:        itemshandler.NewHandler(store),
		Profiles:     profileshandler.NewHandler(store),
		Preapprovals: preapprovalshandler.NewHandler(store, store, gateway, os.Getenv("PREAPPROVAL_RETURN_URL")),
		Presence:     presencehandler.NewHandler(store),
		WebSockets:   wshandler.NewHandler(store),
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
