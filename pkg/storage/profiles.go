package storage

import (
	"context"
	"time"

	"github.com/lotline/auctioneer/pkg/models"
)

// ProfileStore defines the interface for bidder payment profiles.
type ProfileStore interface {
	// FindOrCreateProfile retrieves a bidder's profile, creating it with a
	// zero pre-approved balance on first lookup.
	FindOrCreateProfile(ctx context.Context, userID string) (*models.Profile, error)

	// SetProfilePreapproval stores a freshly authorized credential on the
	// profile: the opaque key, the authorized minor-unit balance and its
	// expiry. Used by the credential-setup callback, never by settlement.
	SetProfilePreapproval(ctx context.Context, userID, key string, amount int64, expiry time.Time) error
}
