package payments

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the provider's verdict on a payment operation.
type Status string

const (
	// StatusCompleted means the charge cleared.
	StatusCompleted Status = "COMPLETED"
	// StatusError covers every provider-side failure.
	StatusError Status = "ERROR"
	// StatusIncomplete means the provider accepted the request but the
	// payment has not cleared yet. Treated the same as a failure by callers.
	StatusIncomplete Status = "INCOMPLETE"
)

// PreapprovalResult is the provider's response to a credential-setup request.
// The raw payloads are kept for the audit record.
type PreapprovalResult struct {
	Key         string
	ApprovalURL string
	RawRequest  string
	RawResponse string
}

// Gateway is the opaque pre-approval payment provider. Charge amounts cross
// this boundary as decimal dollar figures (minor units / 100) because that is
// the provider's wire contract; everything inside the engine stays in integer
// minor units.
type Gateway interface {
	// Charge executes a one-shot payment of amount dollars against a stored
	// credential. Any transport error, including timeout, counts as a failed
	// charge.
	Charge(ctx context.Context, amount decimal.Decimal, preapprovalKey string) (Status, error)

	// CreatePreapproval asks the provider to set up a new spending
	// authorization. The bidder completes it at the returned approval URL.
	CreatePreapproval(ctx context.Context, amount decimal.Decimal, expiry time.Time, returnURL string) (*PreapprovalResult, error)
}
