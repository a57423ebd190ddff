package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSAPI captures the subset of the SQS client used by the notifier.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSNotifier implements the Notifier interface using AWS SQS. Delivery to the
// user (websocket push, email, whatever the consumer does) happens out of the
// request path.
type SQSNotifier struct {
	Client   SQSAPI
	QueueURL string
}

// NewSQSNotifier creates a new SQSNotifier.
func NewSQSNotifier(client SQSAPI, queueURL string) *SQSNotifier {
	return &SQSNotifier{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ Notifier = (*SQSNotifier)(nil)

// Notify sends the notification to an SQS queue for later delivery.
func (n *SQSNotifier) Notify(ctx context.Context, userID, event, text string) error {
	body, err := json.Marshal(Notification{UserID: userID, Event: event, Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal notification for SQS: %w", err)
	}

	_, err = n.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(n.QueueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to send notification to SQS: %w", err)
	}

	return nil
}
