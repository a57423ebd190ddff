package preapprovals

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/lotline/auctioneer/pkg/api"
	"github.com/lotline/auctioneer/pkg/models"
	"github.com/lotline/auctioneer/pkg/payments"
	"github.com/lotline/auctioneer/pkg/storage"
)

// preapprovalTerm is how long a freshly authorized credential stays valid.
const preapprovalTerm = 365 * 24 * time.Hour

// Handler drives the credential-setup flow: it opens an authorization with
// the payment provider, records the attempt for audit, and credits the
// bidder's profile when the provider's return callback confirms completion.
type Handler struct {
	Preapprovals storage.PreapprovalStore
	Profiles     storage.ProfileStore
	Gateway      payments.Gateway

	// ReturnURL is this service's callback endpoint; the correlation secret
	// is appended as a query parameter.
	ReturnURL string
}

// NewHandler creates a new preapprovals Handler.
func NewHandler(preapprovals storage.PreapprovalStore, profiles storage.ProfileStore, gateway payments.Gateway, returnURL string) *Handler {
	return &Handler{
		Preapprovals: preapprovals,
		Profiles:     profiles,
		Gateway:      gateway,
		ReturnURL:    returnURL,
	}
}

// CreatePreapproval starts a credential-setup attempt with the provider.
func (h *Handler) CreatePreapproval(w http.ResponseWriter, r *http.Request) {
	var req api.NewPreapproval
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.Amount <= 0 {
		http.Error(w, "user_id and a positive amount are required", http.StatusUnprocessableEntity)
		return
	}

	pa, err := h.Preapprovals.CreatePreapproval(r.Context(), &models.Preapproval{
		UserID: req.UserID,
		Status: models.PreapprovalNew,
		Secret: uuid.New().String(),
		Amount: req.Amount,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to record preapproval attempt: %v", err), http.StatusInternalServerError)
		return
	}

	expiry := time.Now().Add(preapprovalTerm)
	returnURL := fmt.Sprintf("%s?secret=%s", h.ReturnURL, pa.Secret)
	result, err := h.Gateway.CreatePreapproval(r.Context(), models.DollarAmount(req.Amount), expiry, returnURL)
	if err != nil {
		pa.Status = models.PreapprovalError
		pa.StatusDetail = err.Error()
		if uerr := h.Preapprovals.UpdatePreapproval(r.Context(), pa); uerr != nil {
			slog.Error("failed to record preapproval error", "error", uerr)
		}
		http.Error(w, "Payment provider rejected the preapproval request", http.StatusBadGateway)
		return
	}

	pa.Status = models.PreapprovalCreated
	pa.PreapprovalKey = result.Key
	pa.DebugRequest = result.RawRequest
	pa.DebugResponse = result.RawResponse
	if err := h.Preapprovals.UpdatePreapproval(r.Context(), pa); err != nil {
		http.Error(w, fmt.Sprintf("Failed to record preapproval: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(api.PreapprovalCreated{ApprovalURL: result.ApprovalURL}); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// HandleReturn is the provider's return callback. The secret issued at setup
// time correlates the callback with the original attempt; an unknown secret
// is rejected outright.
func (h *Handler) HandleReturn(w http.ResponseWriter, r *http.Request) {
	secret := r.URL.Query().Get("secret")
	if secret == "" {
		http.Error(w, "secret is required", http.StatusBadRequest)
		return
	}

	pa, err := h.Preapprovals.GetPreapprovalBySecret(r.Context(), secret)
	if errors.Is(err, storage.ErrPreapprovalNotFound) {
		http.Error(w, "Unknown preapproval", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to look up preapproval: %v", err), http.StatusInternalServerError)
		return
	}

	// Only an attempt that is still awaiting the provider's answer may be
	// resolved; a replayed secret must not re-credit the profile or revive a
	// cancelled attempt.
	if pa.Status != models.PreapprovalCreated {
		http.Error(w, "Preapproval is not awaiting confirmation", http.StatusConflict)
		return
	}

	if r.URL.Query().Get("cancelled") == "true" {
		pa.Status = models.PreapprovalCancelled
		if err := h.Preapprovals.UpdatePreapproval(r.Context(), pa); err != nil {
			http.Error(w, fmt.Sprintf("Failed to update preapproval: %v", err), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		return
	}

	expiry := time.Now().Add(preapprovalTerm)
	if err := h.Profiles.SetProfilePreapproval(r.Context(), pa.UserID, pa.PreapprovalKey, pa.Amount, expiry); err != nil {
		http.Error(w, fmt.Sprintf("Failed to credit profile: %v", err), http.StatusInternalServerError)
		return
	}

	pa.Status = models.PreapprovalCompleted
	if err := h.Preapprovals.UpdatePreapproval(r.Context(), pa); err != nil {
		http.Error(w, fmt.Sprintf("Failed to update preapproval: %v", err), http.StatusInternalServerError)
		return
	}

	slog.Info("preapproval completed", "user", pa.UserID, "amount", pa.Amount)
	w.WriteHeader(http.StatusOK)
}
