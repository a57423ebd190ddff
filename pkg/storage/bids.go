package storage

import (
	"context"

	"github.com/lotline/auctioneer/pkg/models"
)

// BidStore defines the append-only interface for bid records. The store does
// not enforce monotonic amounts; "current high bid" is computed by callers as
// max amount with the earliest creation time breaking ties.
type BidStore interface {
	// CreateBid appends a new bid record, conditional on the item still being
	// INPROGRESS so a bid cannot land after the auction closed. Returns
	// ErrStatusConflict when the item has left the block.
	CreateBid(ctx context.Context, bid *models.Bid) (*models.Bid, error)

	// ListBidsByItem retrieves all bids placed on an item.
	ListBidsByItem(ctx context.Context, itemID string) ([]models.Bid, error)
}
