// Package api defines the transport types exchanged with clients.
package api

import "time"

// AuctionState is the top-level verdict of a status poll.
type AuctionState string

const (
	StateOK    AuctionState = "OK"
	StateError AuctionState = "ERROR"
)

// AuctionStatus is the poll response. On ERROR only State and Message are
// populated; Remaining is whole seconds rendered as a string.
type AuctionStatus struct {
	State     AuctionState `json:"state"`
	Bid       string       `json:"bid,omitempty"`
	Bidder    string       `json:"bidder,omitempty"`
	Key       string       `json:"key,omitempty"`
	Item      string       `json:"item,omitempty"`
	Message   string       `json:"message"`
	Remaining string       `json:"remaining,omitempty"`
}

// NewBid is the bid-submission request body. Amount is integer minor units.
type NewBid struct {
	ItemKey  string `json:"item_key"`
	BidderID string `json:"bidder_id"`
	Amount   int64  `json:"amount"`
}

// Bid is the transport view of an accepted bid.
type Bid struct {
	ID        string    `json:"id"`
	ItemKey   string    `json:"item_key"`
	BidderID  string    `json:"bidder_id"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// NewItem is the item-creation request body used by the queue loader.
type NewItem struct {
	Title string `json:"title"`
	Image []byte `json:"image,omitempty"`
}

// Item is the transport view of an auction item.
type Item struct {
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Started   time.Time `json:"started,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile is the transport view of a bidder's payment profile. The credential
// key itself is never exposed.
type Profile struct {
	UserID            string    `json:"user_id"`
	PreapprovalAmount int64     `json:"preapproval_amount"`
	PreapprovalExpiry time.Time `json:"preapproval_expiry"`
	HasPreapproval    bool      `json:"has_preapproval"`
}

// NewPreapproval starts a credential-setup flow. Amount is integer minor
// units to authorize.
type NewPreapproval struct {
	UserID string `json:"user_id"`
	Amount int64  `json:"amount"`
}

// PreapprovalCreated points the bidder at the provider's approval page.
type PreapprovalCreated struct {
	ApprovalURL string `json:"approval_url"`
}

// Presence reports the number of recently-active viewers.
type Presence struct {
	Active int `json:"active"`
}
