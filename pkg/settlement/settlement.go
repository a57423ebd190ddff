// Package settlement executes the charge for a finished auction exactly once
// and reconciles the winner's pre-approved balance.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lotline/auctioneer/pkg/auction"
	"github.com/lotline/auctioneer/pkg/models"
	"github.com/lotline/auctioneer/pkg/payments"
	"github.com/lotline/auctioneer/pkg/storage"
)

// chargeTimeout bounds the provider call; hitting it counts as a failed
// charge, never as success.
const chargeTimeout = 20 * time.Second

// Engine charges the winning bidder through the payment gateway and applies
// the result to the record store.
type Engine struct {
	Items    storage.ItemStore
	Profiles storage.ProfileStore
	Store    storage.SettlementStore
	Gateway  payments.Gateway
}

// New creates a settlement engine.
func New(items storage.ItemStore, profiles storage.ProfileStore, store storage.SettlementStore, gateway payments.Gateway) *Engine {
	return &Engine{
		Items:    items,
		Profiles: profiles,
		Store:    store,
		Gateway:  gateway,
	}
}

// Make sure we conform to the interface
var _ auction.Settler = (*Engine)(nil)

// Settle charges win, the bid the caller decided the auction on when the
// window lapsed. The ledger is never re-read here: the winner and amount are
// fixed at expiry time, so a bid that sneaks in afterwards can never change
// who gets charged (the store rejects such appends anyway).
//
// It is safe to call more than once: a SETTLED item reports success without a
// second charge or debit, and the SETTLING lease (a conditional status flip)
// guarantees at most one in-flight charge per item. The gateway call runs
// under that lease alone; no process-wide lock is held, so concurrent bids
// and polls on other items are never blocked by a slow provider.
//
// A false result leaves the item FINISHED: won but unpaid, with no automatic
// retry. Remediation is an external concern.
func (e *Engine) Settle(ctx context.Context, item *models.Item, win *models.Bid) (bool, error) {
	if item.Status == models.ItemSettled {
		return true, nil
	}

	if win == nil {
		return false, fmt.Errorf("item %s has no winning bid to settle", item.ID)
	}

	profile, err := e.Profiles.FindOrCreateProfile(ctx, win.BidderID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve winner profile: %w", err)
	}

	// Acquire the settlement lease. Losing the swap means another worker is
	// settling (or already settled) this item; report whatever it decided.
	err = e.Items.TransitionItemStatus(ctx, item.ID, models.ItemFinished, models.ItemSettling)
	if errors.Is(err, storage.ErrStatusConflict) {
		latest, err := e.Items.GetItem(ctx, item.ID)
		if err != nil {
			return false, fmt.Errorf("failed to re-read contested item: %w", err)
		}
		return latest.Status == models.ItemSettled, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to acquire settlement lease: %w", err)
	}

	slog.Info("settling item", "item", item.Title, "amount", win.Amount, "bidder", win.BidderID)

	chargeCtx, cancel := context.WithTimeout(ctx, chargeTimeout)
	defer cancel()
	status, chargeErr := e.Gateway.Charge(chargeCtx, models.DollarAmount(win.Amount), profile.PreapprovalKey)

	if chargeErr != nil || status != payments.StatusCompleted {
		slog.Warn("charge did not complete", "item", item.Title, "status", status, "error", chargeErr)
		if err := e.Items.TransitionItemStatus(ctx, item.ID, models.ItemSettling, models.ItemFinished); err != nil {
			return false, fmt.Errorf("failed to release settlement lease: %w", err)
		}
		return false, nil
	}

	if err := e.Store.ApplySettlement(ctx, item.ID, profile, win.Amount); err != nil {
		// The charge cleared but the local write failed. Keep the lease so an
		// operator can reconcile; releasing it could trigger a second charge.
		return false, fmt.Errorf("charge completed but settlement write failed: %w", err)
	}

	slog.Info("settled item", "item", item.Title, "amount", win.Amount)
	return true, nil
}
