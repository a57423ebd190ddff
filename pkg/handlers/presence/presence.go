package presence

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lotline/auctioneer/pkg/api"
	"github.com/lotline/auctioneer/pkg/storage"
)

// Handler holds the dependencies for presence-related handlers.
type Handler struct {
	Store storage.PresenceStore
}

// NewHandler creates a new presence Handler.
func NewHandler(store storage.PresenceStore) *Handler {
	return &Handler{Store: store}
}

// Heartbeat records that a viewer is still watching the auction. Stale
// entries are pruned as a side effect of the write.
func (h *Handler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusUnprocessableEntity)
		return
	}

	if err := h.Store.TouchClient(r.Context(), userID); err != nil {
		http.Error(w, fmt.Sprintf("Failed to record heartbeat: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetActive reports how many viewers have sent a heartbeat recently.
func (h *Handler) GetActive(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Store.ListActiveClients(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list active clients: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(api.Presence{Active: len(clients)}); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
