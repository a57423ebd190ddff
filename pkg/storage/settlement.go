package storage

import (
	"context"

	"github.com/lotline/auctioneer/pkg/models"
)

// SettlementStore defines the highly-privileged write applied after a
// successful charge. The debit and the item status flip commit atomically:
// either the profile balance drops by amount and the item becomes SETTLED, or
// neither happens. It should only be exposed to the settlement engine.
type SettlementStore interface {
	// ApplySettlement debits amount minor units from the profile's remaining
	// pre-approved balance (version-checked) and transitions the item
	// SETTLING -> SETTLED in the same atomic write.
	ApplySettlement(ctx context.Context, itemID string, profile *models.Profile, amount int64) error
}
