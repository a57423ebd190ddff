package profiles

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lotline/auctioneer/pkg/mapping"
	"github.com/lotline/auctioneer/pkg/storage"
)

// Handler holds the dependencies for profile-related handlers.
type Handler struct {
	Store storage.ProfileStore
}

// NewHandler creates a new profiles Handler.
func NewHandler(store storage.ProfileStore) *Handler {
	return &Handler{Store: store}
}

// GetProfile handles the logic for retrieving a bidder's payment profile.
// Profiles are created lazily with a zero balance on first lookup.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	profile, err := h.Store.FindOrCreateProfile(r.Context(), userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve profile: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiProfile(profile)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
