package storage

import (
	"context"
	"time"

	"github.com/lotline/auctioneer/pkg/models"
)

// ItemReader defines the interface for reading auction items.
type ItemReader interface {
	// GetItem retrieves an item by its ID.
	GetItem(ctx context.Context, itemID string) (*models.Item, error)

	// GetCurrentItem retrieves the single INPROGRESS item, or ErrItemNotFound
	// when no auction is active.
	GetCurrentItem(ctx context.Context) (*models.Item, error)

	// NextReadyItem retrieves the READY item with the earliest started
	// timestamp (never-started items sort first), or ErrItemNotFound when the
	// queue is empty.
	NextReadyItem(ctx context.Context) (*models.Item, error)

	// ListItems retrieves all items.
	ListItems(ctx context.Context) ([]models.Item, error)

	// ListUnsettledItems retrieves FINISHED items whose auction started more
	// than maxAge ago, i.e. won lots still awaiting payment.
	ListUnsettledItems(ctx context.Context, maxAge time.Duration) ([]models.Item, error)
}

// ItemManager defines the privileged item mutations. All status transitions
// are conditional on the expected current status so that concurrent callers
// cannot double-promote or double-finish an item.
type ItemManager interface {
	// CreateItem creates a new READY item.
	CreateItem(ctx context.Context, item *models.Item) (*models.Item, error)

	// PromoteItem transitions an item READY -> INPROGRESS and stamps started.
	// Returns ErrStatusConflict if the item is no longer READY.
	PromoteItem(ctx context.Context, itemID string, startedAt time.Time) (*models.Item, error)

	// TransitionItemStatus performs a compare-and-swap on the item status.
	// Returns ErrStatusConflict if the item is not in the from status.
	TransitionItemStatus(ctx context.Context, itemID string, from, to models.ItemStatus) error

	// RecycleItem transitions an unbid item INPROGRESS -> READY and resets
	// started so the item re-enters the back of the queue.
	RecycleItem(ctx context.Context, itemID string, startedAt time.Time) error
}

// ItemStore combines the reader and manager interfaces.
type ItemStore interface {
	ItemReader
	ItemManager
}
