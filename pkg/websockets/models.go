package websockets

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeBidUpdate announces a newly accepted bid on the active item.
	MessageTypeBidUpdate MessageType = "bidUpdate"
	// MessageTypeNotification carries a user notification (auction won,
	// payment required).
	MessageTypeNotification MessageType = "notification"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// BidUpdatePayload is the payload for a bidUpdate message.
type BidUpdatePayload struct {
	ItemKey string `json:"item_key"`
	Bid     string `json:"bid"`
	Bidder  string `json:"bidder"`
	Amount  int64  `json:"amount"`
}
