package auction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/lotline/auctioneer/pkg/api"
	"github.com/lotline/auctioneer/pkg/models"
	"github.com/lotline/auctioneer/pkg/notify"
	"github.com/lotline/auctioneer/pkg/storage"
)

// NoItemsMessage is returned to pollers when the READY queue is empty.
const NoItemsMessage = "No items available for auction. Try again later."

// ErrAdvanceLimit is returned when a single poll would have to advance past
// more expired items than the configured cap allows. It guards against a
// finish path that fails to change an item's status.
var ErrAdvanceLimit = errors.New("auction advance limit reached")

// ErrInvalidAmount is returned for non-positive bid amounts.
var ErrInvalidAmount = errors.New("bid amount must be positive")

// ErrBidTooLow is returned when a bid does not beat the current high bid.
var ErrBidTooLow = errors.New("bid does not beat the current high bid")

// ErrAuctionNotActive is returned when a bid targets an item that is not the
// active auction.
var ErrAuctionNotActive = errors.New("item is not up for auction")

// Settler executes the charge for a finished item against the winning bid
// decided at expiry time. It reports whether payment completed; a false
// result leaves the item won but unpaid.
type Settler interface {
	Settle(ctx context.Context, item *models.Item, win *models.Bid) (bool, error)
}

// Config holds the engine's tunables.
type Config struct {
	// BidWait is the rolling bid window. Every accepted bid re-arms it.
	BidWait time.Duration

	// MaxAdvance caps how many expired items one poll may resolve.
	MaxAdvance int
}

const (
	DefaultBidWait    = 60 * time.Second
	DefaultMaxAdvance = 8
)

// Engine owns the lifecycle of the single active item: promotion from the
// READY queue, lazy expiry evaluation, settlement hand-off and advancing to
// the next lot. All state transitions go through conditional updates in the
// item store, so concurrent pollers cannot double-promote or double-finish.
type Engine struct {
	items    storage.ItemStore
	ledger   *Ledger
	settler  Settler
	notifier notify.Notifier
	cfg      Config

	// now is injectable for tests.
	now func() time.Time
}

// NewEngine creates an auction engine. Zero config fields fall back to the
// defaults.
func NewEngine(items storage.ItemStore, ledger *Ledger, settler Settler, notifier notify.Notifier, cfg Config) *Engine {
	if cfg.BidWait <= 0 {
		cfg.BidWait = DefaultBidWait
	}
	if cfg.MaxAdvance <= 0 {
		cfg.MaxAdvance = DefaultMaxAdvance
	}
	return &Engine{
		items:    items,
		ledger:   ledger,
		settler:  settler,
		notifier: notifier,
		cfg:      cfg,
		now:      time.Now,
	}
}

// BidInfo describes the bidding state of the active item at one instant.
type BidInfo struct {
	// Bid is the high bid as a two-decimal dollar string, "0.00" when none.
	Bid string
	// Bidder is the high bidder's identity, "None" when no bids exist.
	Bidder string
	// Remaining is the whole seconds left in the bid window; negative means
	// the window has lapsed.
	Remaining int64
}

// Current returns the single INPROGRESS item, or storage.ErrItemNotFound.
func (e *Engine) Current(ctx context.Context) (*models.Item, error) {
	return e.items.GetCurrentItem(ctx)
}

// PromoteNext puts the earliest READY item on the block. It is the only path
// that creates an active auction. Returns storage.ErrItemNotFound when the
// queue is empty and storage.ErrStatusConflict when a concurrent poller won
// the promotion race.
func (e *Engine) PromoteNext(ctx context.Context) (*models.Item, error) {
	next, err := e.items.NextReadyItem(ctx)
	if err != nil {
		return nil, err
	}

	promoted, err := e.items.PromoteItem(ctx, next.ID, e.now())
	if err != nil {
		return nil, err
	}

	slog.Info("item promoted to the block", "item", promoted.Title, "key", promoted.ID)
	return promoted, nil
}

// bidInfo computes the bidding state of an item from its ledger and the clock.
func (e *Engine) bidInfo(ctx context.Context, item *models.Item) (*BidInfo, error) {
	high, err := e.ledger.HighBid(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	info := &BidInfo{Bid: "0.00", Bidder: "None"}
	reference := FirstBidReference(item.Started, e.cfg.BidWait)
	if high != nil {
		info.Bid = high.AmountDollars()
		info.Bidder = high.BidderID
		reference = high.CreatedAt
	}
	info.Remaining = RemainingSeconds(e.now(), reference, e.cfg.BidWait)

	slog.Info("evaluated bid window", "item", item.Title, "remaining", info.Remaining)
	return info, nil
}

// Evaluate is the mutating poll operation: it resolves any lapsed auctions
// (finish, settle, advance) and returns the active item with its bidding
// state. A (nil, nil, nil) result means the queue is empty. The loop is
// bounded by MaxAdvance instead of recursing, so a pathological sequence of
// back-to-back expiries cannot run away.
func (e *Engine) Evaluate(ctx context.Context) (*models.Item, *BidInfo, error) {
	for i := 0; i < e.cfg.MaxAdvance; i++ {
		item, err := e.items.GetCurrentItem(ctx)
		if errors.Is(err, storage.ErrItemNotFound) {
			item, err = e.PromoteNext(ctx)
			if errors.Is(err, storage.ErrItemNotFound) {
				return nil, nil, nil
			}
			if errors.Is(err, storage.ErrStatusConflict) {
				// Lost the promotion race; re-read whoever won.
				continue
			}
		}
		if err != nil {
			return nil, nil, err
		}

		info, err := e.bidInfo(ctx, item)
		if err != nil {
			return nil, nil, err
		}

		if info.Remaining < 0 {
			if err := e.finish(ctx, item); err != nil {
				return nil, nil, err
			}
			continue
		}

		return item, info, nil
	}

	return nil, nil, ErrAdvanceLimit
}

// Status wraps Evaluate into the poll response consumed by the presentation
// layer. message is echoed back verbatim.
func (e *Engine) Status(ctx context.Context, message string) (*api.AuctionStatus, error) {
	item, info, err := e.Evaluate(ctx)
	if err != nil {
		return nil, err
	}

	if item == nil {
		return &api.AuctionStatus{
			State:   api.StateError,
			Message: NoItemsMessage,
		}, nil
	}

	return &api.AuctionStatus{
		State:     api.StateOK,
		Bid:       info.Bid,
		Bidder:    info.Bidder,
		Key:       item.ID,
		Item:      item.Title,
		Message:   message,
		Remaining: strconv.FormatInt(info.Remaining, 10),
	}, nil
}

// finish is the terminal evaluation for an item whose bid window lapsed.
// With a high bid the item moves INPROGRESS -> FINISHED and settlement runs;
// without bids it is recycled to the back of the READY queue. Both paths are
// compare-and-swap transitions, so of N concurrent pollers observing the same
// expired item exactly one executes the consequences.
func (e *Engine) finish(ctx context.Context, item *models.Item) error {
	high, err := e.ledger.HighBid(ctx, item.ID)
	if err != nil {
		return err
	}

	if high == nil {
		err := e.items.RecycleItem(ctx, item.ID, e.now())
		if errors.Is(err, storage.ErrStatusConflict) {
			return nil
		}
		return err
	}

	err = e.items.TransitionItemStatus(ctx, item.ID, models.ItemInProgress, models.ItemFinished)
	if errors.Is(err, storage.ErrStatusConflict) {
		// Another poller got here first and owns settlement.
		return nil
	}
	if err != nil {
		return err
	}
	item.Status = models.ItemFinished

	// The bid captured before the FINISHED swap is the winner; settlement
	// charges exactly this bid, never a re-read of the ledger.
	settled, err := e.settler.Settle(ctx, item, high)
	if err != nil {
		slog.Error("settlement failed", "item", item.Title, "error", err)
		settled = false
	}

	dollars := high.AmountDollars()
	text := fmt.Sprintf("You won %s for $%s. Payment is required.", item.Title, dollars)
	if settled {
		text = fmt.Sprintf("You successfully purchased %s for $%s", item.Title, dollars)
	}
	if err := e.notifier.Notify(ctx, high.BidderID, notify.EventStop, text); err != nil {
		slog.Error("failed to notify winner", "bidder", high.BidderID, "error", err)
	}

	return nil
}

// PlaceBid validates and appends a bid on the active item. Validation here is
// the hardened ingress: the ledger itself stays permissive.
func (e *Engine) PlaceBid(ctx context.Context, itemID, bidderID string, amount int64) (*models.Bid, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	item, err := e.items.GetItem(ctx, itemID)
	if errors.Is(err, storage.ErrItemNotFound) {
		return nil, ErrAuctionNotActive
	}
	if err != nil {
		return nil, err
	}
	if item.Status != models.ItemInProgress {
		return nil, ErrAuctionNotActive
	}

	high, err := e.ledger.HighBid(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if high != nil && amount <= high.Amount {
		return nil, ErrBidTooLow
	}

	bid, err := e.ledger.Record(ctx, itemID, bidderID, amount)
	if errors.Is(err, storage.ErrStatusConflict) {
		// The auction closed between the status check and the append.
		return nil, ErrAuctionNotActive
	}
	return bid, err
}
