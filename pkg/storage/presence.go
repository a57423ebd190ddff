package storage

import (
	"context"

	"github.com/lotline/auctioneer/pkg/models"
)

// PresenceStore tracks recently-active viewers. At most one row exists per
// identity; rows older than the presence TTL are pruned on each touch.
type PresenceStore interface {
	// TouchClient upserts the viewer's last-seen timestamp and prunes stale
	// presence rows.
	TouchClient(ctx context.Context, userID string) error

	// ListActiveClients retrieves the viewers seen within the presence TTL.
	ListActiveClients(ctx context.Context) ([]models.Client, error)
}
