package storage

import (
	"context"

	"github.com/lotline/auctioneer/pkg/models"
)

// PreapprovalStore defines the audit trail of credential-setup attempts.
type PreapprovalStore interface {
	// CreatePreapproval records a new setup attempt.
	CreatePreapproval(ctx context.Context, pa *models.Preapproval) (*models.Preapproval, error)

	// GetPreapprovalBySecret correlates a provider return callback with the
	// attempt that issued the secret.
	GetPreapprovalBySecret(ctx context.Context, secret string) (*models.Preapproval, error)

	// UpdatePreapproval persists the outcome of a setup attempt: new status,
	// optional detail and the provider's key plus debug payloads.
	UpdatePreapproval(ctx context.Context, pa *models.Preapproval) error
}
