package auction

import (
	"context"
	"fmt"

	"github.com/lotline/auctioneer/pkg/models"
	"github.com/lotline/auctioneer/pkg/storage"
)

// HighBid selects the current high bid: the highest amount, with the earliest
// creation time breaking ties. Returns nil for an empty ledger. The selection
// tolerates non-monotonic ledgers, which the permissive store allows.
func HighBid(bids []models.Bid) *models.Bid {
	var best *models.Bid
	for i := range bids {
		b := &bids[i]
		if best == nil ||
			b.Amount > best.Amount ||
			(b.Amount == best.Amount && b.CreatedAt.Before(best.CreatedAt)) {
			best = b
		}
	}
	return best
}

// Ledger answers high-bid queries and appends bids for an item.
type Ledger struct {
	bids storage.BidStore
}

// NewLedger creates a Ledger over the given bid store.
func NewLedger(bids storage.BidStore) *Ledger {
	return &Ledger{bids: bids}
}

// HighBid returns the current high bid for an item, or nil when the item has
// no bids.
func (l *Ledger) HighBid(ctx context.Context, itemID string) (*models.Bid, error) {
	bids, err := l.bids.ListBidsByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}
	return HighBid(bids), nil
}

// Record appends a new bid. No monotonicity check happens at this layer;
// ingress validation lives in the engine.
func (l *Ledger) Record(ctx context.Context, itemID, bidderID string, amount int64) (*models.Bid, error) {
	return l.bids.CreateBid(ctx, &models.Bid{
		ItemID:   itemID,
		BidderID: bidderID,
		Amount:   amount,
	})
}
