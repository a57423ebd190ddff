package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemStatus defines the lifecycle states of an auction item.
type ItemStatus string

const (
	// ItemReady means the item is queued and waiting to go on the block.
	ItemReady ItemStatus = "READY"
	// ItemInProgress means the item is the single active auction.
	ItemInProgress ItemStatus = "INPROGRESS"
	// ItemFinished means the auction closed with a winner but payment has not
	// completed. Terminal unless settlement succeeds.
	ItemFinished ItemStatus = "FINISHED"
	// ItemSettling is the transient settlement lease held while the charge is
	// in flight. At most one worker holds it per item.
	ItemSettling ItemStatus = "SETTLING"
	// ItemSettled means the winner was charged successfully. Terminal.
	ItemSettled ItemStatus = "SETTLED"
	// ItemDisabled removes an item from circulation. Terminal.
	ItemDisabled ItemStatus = "DISABLED"
)

// Item represents a single lot in the sequential auction queue.
// The auction engine is the sole writer of Status and Started.
type Item struct {
	ID        string     `dynamodbav:"id"`
	Title     string     `dynamodbav:"title"`
	Image     []byte     `dynamodbav:"image,omitempty"`
	Status    ItemStatus `dynamodbav:"status"`
	Started   time.Time  `dynamodbav:"started"`
	CreatedAt time.Time  `dynamodbav:"created_at"`
}

// Bid is an immutable, append-only record of a single offer on an item.
// Amounts are integer minor units (cents).
type Bid struct {
	ID        string    `dynamodbav:"id"`
	ItemID    string    `dynamodbav:"item_id"`
	BidderID  string    `dynamodbav:"bidder_id"`
	Amount    int64     `dynamodbav:"amount"`
	CreatedAt time.Time `dynamodbav:"created_at"`
}

// AmountDollars renders the bid amount as a fixed two-decimal dollar string.
func (b *Bid) AmountDollars() string {
	return AmountDollars(b.Amount)
}

// Profile tracks a bidder's remaining pre-authorized balance and the opaque
// credential reference used to charge them. Version is an optimistic-lock
// counter bumped on every balance mutation.
type Profile struct {
	UserID            string    `dynamodbav:"user_id"`
	PreapprovalAmount int64     `dynamodbav:"preapproval_amount"`
	PreapprovalExpiry time.Time `dynamodbav:"preapproval_expiry"`
	PreapprovalKey    string    `dynamodbav:"preapproval_key"`
	Version           int64     `dynamodbav:"version"`
	CreatedAt         time.Time `dynamodbav:"created_at"`
}

// PreapprovalStatus defines the states of a credential-setup attempt.
type PreapprovalStatus string

const (
	PreapprovalNew       PreapprovalStatus = "NEW"
	PreapprovalCreated   PreapprovalStatus = "CREATED"
	PreapprovalError     PreapprovalStatus = "ERROR"
	PreapprovalCancelled PreapprovalStatus = "CANCELLED"
	PreapprovalCompleted PreapprovalStatus = "COMPLETED"
)

// Preapproval is the audit record of one interaction with the payment
// provider's credential-setup flow. Secret correlates the provider's
// asynchronous return callback with this attempt.
type Preapproval struct {
	ID             string            `dynamodbav:"id"`
	UserID         string            `dynamodbav:"user_id"`
	Status         PreapprovalStatus `dynamodbav:"status"`
	StatusDetail   string            `dynamodbav:"status_detail,omitempty"`
	Secret         string            `dynamodbav:"secret"`
	DebugRequest   string            `dynamodbav:"debug_request,omitempty"`
	DebugResponse  string            `dynamodbav:"debug_response,omitempty"`
	PreapprovalKey string            `dynamodbav:"preapproval_key,omitempty"`
	Amount         int64             `dynamodbav:"amount"`
	CreatedAt      time.Time         `dynamodbav:"created_at"`
}

// Client is an ephemeral presence record. Rows older than the presence TTL
// are pruned on each heartbeat.
type Client struct {
	UserID  string    `dynamodbav:"user_id"`
	Updated time.Time `dynamodbav:"updated"`
}

// AmountDollars converts an integer minor-unit amount to a two-decimal dollar
// string. All internal arithmetic stays in minor units; this conversion exists
// only for the payment-gateway wire contract and user-facing text.
func AmountDollars(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// DollarAmount returns the decimal dollar figure for a minor-unit amount.
func DollarAmount(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
