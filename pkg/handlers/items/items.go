package items

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/lotline/auctioneer/pkg/api"
	"github.com/lotline/auctioneer/pkg/mapping"
	"github.com/lotline/auctioneer/pkg/storage"
)

// Handler holds the dependencies for item-related handlers.
type Handler struct {
	Store storage.ItemStore
}

// NewHandler creates a new items Handler.
func NewHandler(store storage.ItemStore) *Handler {
	return &Handler{Store: store}
}

// CreateItem handles the loader's request to queue a new item for auction.
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var newItem api.NewItem
	if err := json.NewDecoder(r.Body).Decode(&newItem); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if newItem.Title == "" {
		http.Error(w, "Item title is required", http.StatusUnprocessableEntity)
		return
	}

	created, err := h.Store.CreateItem(r.Context(), mapping.ToDomainNewItem(&newItem))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create item: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiItem(created)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListItems handles the logic for retrieving all items.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	domainItems, err := h.Store.ListItems(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve items: %v", err), http.StatusInternalServerError)
		return
	}

	// Sort items by CreatedAt in descending order.
	sort.Slice(domainItems, func(i, j int) bool {
		return domainItems[i].CreatedAt.After(domainItems[j].CreatedAt)
	})

	apiItems := make([]*api.Item, len(domainItems))
	for i, item := range domainItems {
		apiItems[i] = mapping.ToApiItem(&item)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiItems); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
