package auction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lotline/auctioneer/pkg/api"
	engine "github.com/lotline/auctioneer/pkg/auction"
	"github.com/lotline/auctioneer/pkg/mapping"
	"github.com/lotline/auctioneer/pkg/models"
	"github.com/lotline/auctioneer/pkg/websockets"
)

// Engine is the slice of the auction engine the handlers need.
type Engine interface {
	Status(ctx context.Context, message string) (*api.AuctionStatus, error)
	PlaceBid(ctx context.Context, itemID, bidderID string, amount int64) (*models.Bid, error)
}

// Handler holds the dependencies for auction-related handlers.
type Handler struct {
	Engine    Engine
	Publisher websockets.Publisher
}

// NewHandler creates a new auction Handler.
func NewHandler(eng Engine, publisher websockets.Publisher) *Handler {
	return &Handler{Engine: eng, Publisher: publisher}
}

// GetStatus handles the poll that drives the whole auction forward: expiry
// detection, settlement and promotion all happen inside this call.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	message := r.URL.Query().Get("message")

	status, err := h.Engine.Status(r.Context(), message)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to evaluate auction state: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(status); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// PlaceBid handles the logic for submitting a bid on the active item.
func (h *Handler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	var newBid api.NewBid
	if err := json.NewDecoder(r.Body).Decode(&newBid); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	bid, err := h.Engine.PlaceBid(r.Context(), newBid.ItemKey, newBid.BidderID, newBid.Amount)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidAmount), errors.Is(err, engine.ErrBidTooLow):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, engine.ErrAuctionNotActive):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, fmt.Sprintf("Failed to place bid: %v", err), http.StatusInternalServerError)
		}
		return
	}

	// Best-effort broadcast; a failed push never fails the bid.
	if h.Publisher != nil {
		msg := websockets.Message{
			Type: websockets.MessageTypeBidUpdate,
			Payload: websockets.BidUpdatePayload{
				ItemKey: bid.ItemID,
				Bid:     bid.AmountDollars(),
				Bidder:  bid.BidderID,
				Amount:  bid.Amount,
			},
		}
		if err := h.Publisher.Publish(r.Context(), msg); err != nil {
			slog.Error("failed to publish bid update", "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiBid(bid)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
