package mapping

import (
	"github.com/lotline/auctioneer/pkg/api"
	"github.com/lotline/auctioneer/pkg/models"
)

// ToApiItem converts a domain Item model to an API Item model.
func ToApiItem(item *models.Item) *api.Item {
	return &api.Item{
		Key:       item.ID,
		Title:     item.Title,
		Status:    string(item.Status),
		Started:   item.Started,
		CreatedAt: item.CreatedAt,
	}
}

// ToDomainNewItem converts an API NewItem model to a domain Item model.
// Status and timestamps are filled in by the store.
func ToDomainNewItem(newItem *api.NewItem) *models.Item {
	return &models.Item{
		Title: newItem.Title,
		Image: newItem.Image,
	}
}

// ToApiBid converts a domain Bid model to an API Bid model.
func ToApiBid(bid *models.Bid) *api.Bid {
	return &api.Bid{
		ID:        bid.ID,
		ItemKey:   bid.ItemID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt,
	}
}

// ToApiProfile converts a domain Profile model to an API Profile model.
// The credential key never leaves the service; only its presence is exposed.
func ToApiProfile(profile *models.Profile) *api.Profile {
	return &api.Profile{
		UserID:            profile.UserID,
		PreapprovalAmount: profile.PreapprovalAmount,
		PreapprovalExpiry: profile.PreapprovalExpiry,
		HasPreapproval:    profile.PreapprovalKey != "",
	}
}
