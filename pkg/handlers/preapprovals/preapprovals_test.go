package preapprovals_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lotline/auctioneer/pkg/api"
	"github.com/lotline/auctioneer/pkg/handlers/preapprovals"
	"github.com/lotline/auctioneer/pkg/models"
	"github.com/lotline/auctioneer/pkg/payments"
	paymentmocks "github.com/lotline/auctioneer/pkg/payments/mocks"
	"github.com/lotline/auctioneer/pkg/storage"
	"github.com/lotline/auctioneer/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreatePreapproval(t *testing.T) {
	newPA := api.NewPreapproval{UserID: "frank", Amount: 5000}

	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		gateway := new(paymentmocks.Gateway)

		recorded := &models.Preapproval{ID: "pa-1", UserID: "frank", Status: models.PreapprovalNew, Secret: "s1", Amount: 5000}
		mockStorage.On("CreatePreapproval", mock.Anything, mock.AnythingOfType("*models.Preapproval")).Return(recorded, nil)
		gateway.On("CreatePreapproval", mock.Anything, mock.Anything, mock.Anything, mock.MatchedBy(func(returnURL string) bool {
			return returnURL == "https://example.com/return?secret=s1"
		})).Return(&payments.PreapprovalResult{
			Key:         "pa-key",
			ApprovalURL: "https://provider.example/approve/pa-key",
			RawRequest:  `{"amount":"50.00"}`,
			RawResponse: `{"preapproval_key":"pa-key"}`,
		}, nil)
		mockStorage.On("UpdatePreapproval", mock.Anything, mock.MatchedBy(func(pa *models.Preapproval) bool {
			return pa.Status == models.PreapprovalCreated && pa.PreapprovalKey == "pa-key"
		})).Return(nil)

		h := preapprovals.NewHandler(mockStorage, mockStorage, gateway, "https://example.com/return")

		body, _ := json.Marshal(newPA)
		req := httptest.NewRequest(http.MethodPost, "/preapprovals", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.CreatePreapproval(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp api.PreapprovalCreated
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "https://provider.example/approve/pa-key", resp.ApprovalURL)
		mockStorage.AssertExpectations(t)
		gateway.AssertExpectations(t)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		h := preapprovals.NewHandler(new(mocks.Storage), new(mocks.Storage), new(paymentmocks.Gateway), "https://example.com/return")

		body, _ := json.Marshal(api.NewPreapproval{UserID: "frank"})
		req := httptest.NewRequest(http.MethodPost, "/preapprovals", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.CreatePreapproval(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("Provider Rejection Recorded", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		gateway := new(paymentmocks.Gateway)

		recorded := &models.Preapproval{ID: "pa-1", UserID: "frank", Status: models.PreapprovalNew, Secret: "s1", Amount: 5000}
		mockStorage.On("CreatePreapproval", mock.Anything, mock.Anything).Return(recorded, nil)
		gateway.On("CreatePreapproval", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)
		mockStorage.On("UpdatePreapproval", mock.Anything, mock.MatchedBy(func(pa *models.Preapproval) bool {
			return pa.Status == models.PreapprovalError && pa.StatusDetail != ""
		})).Return(nil)

		h := preapprovals.NewHandler(mockStorage, mockStorage, gateway, "https://example.com/return")

		body, _ := json.Marshal(newPA)
		req := httptest.NewRequest(http.MethodPost, "/preapprovals", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.CreatePreapproval(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestHandleReturn(t *testing.T) {
	stored := func() *models.Preapproval {
		return &models.Preapproval{
			ID:             "pa-1",
			UserID:         "frank",
			Status:         models.PreapprovalCreated,
			Secret:         "s1",
			PreapprovalKey: "pa-key",
			Amount:         5000,
		}
	}

	t.Run("Completion Credits Profile", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		mockStorage.On("GetPreapprovalBySecret", mock.Anything, "s1").Return(stored(), nil)
		mockStorage.On("SetProfilePreapproval", mock.Anything, "frank", "pa-key", int64(5000), mock.Anything).Return(nil)
		mockStorage.On("UpdatePreapproval", mock.Anything, mock.MatchedBy(func(pa *models.Preapproval) bool {
			return pa.Status == models.PreapprovalCompleted
		})).Return(nil)

		h := preapprovals.NewHandler(mockStorage, mockStorage, new(paymentmocks.Gateway), "https://example.com/return")

		req := httptest.NewRequest(http.MethodGet, "/preapprovals/return?secret=s1", nil)
		rr := httptest.NewRecorder()

		h.HandleReturn(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Cancellation Skips Profile", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		mockStorage.On("GetPreapprovalBySecret", mock.Anything, "s1").Return(stored(), nil)
		mockStorage.On("UpdatePreapproval", mock.Anything, mock.MatchedBy(func(pa *models.Preapproval) bool {
			return pa.Status == models.PreapprovalCancelled
		})).Return(nil)

		h := preapprovals.NewHandler(mockStorage, mockStorage, new(paymentmocks.Gateway), "https://example.com/return")

		req := httptest.NewRequest(http.MethodGet, "/preapprovals/return?secret=s1&cancelled=true", nil)
		rr := httptest.NewRecorder()

		h.HandleReturn(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertNotCalled(t, "SetProfilePreapproval", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Replayed Secret Does Not Credit Twice", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		completed := stored()
		completed.Status = models.PreapprovalCompleted
		mockStorage.On("GetPreapprovalBySecret", mock.Anything, "s1").Return(completed, nil)

		h := preapprovals.NewHandler(mockStorage, mockStorage, new(paymentmocks.Gateway), "https://example.com/return")

		req := httptest.NewRequest(http.MethodGet, "/preapprovals/return?secret=s1", nil)
		rr := httptest.NewRecorder()

		h.HandleReturn(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockStorage.AssertNotCalled(t, "SetProfilePreapproval", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockStorage.AssertNotCalled(t, "UpdatePreapproval", mock.Anything, mock.Anything)
	})

	t.Run("Cancelled Secret Cannot Complete", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		cancelled := stored()
		cancelled.Status = models.PreapprovalCancelled
		mockStorage.On("GetPreapprovalBySecret", mock.Anything, "s1").Return(cancelled, nil)

		h := preapprovals.NewHandler(mockStorage, mockStorage, new(paymentmocks.Gateway), "https://example.com/return")

		req := httptest.NewRequest(http.MethodGet, "/preapprovals/return?secret=s1", nil)
		rr := httptest.NewRecorder()

		h.HandleReturn(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockStorage.AssertNotCalled(t, "SetProfilePreapproval", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown Secret", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetPreapprovalBySecret", mock.Anything, "nope").Return(nil, storage.ErrPreapprovalNotFound)

		h := preapprovals.NewHandler(mockStorage, mockStorage, new(paymentmocks.Gateway), "https://example.com/return")

		req := httptest.NewRequest(http.MethodGet, "/preapprovals/return?secret=nope", nil)
		rr := httptest.NewRecorder()

		h.HandleReturn(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Missing Secret", func(t *testing.T) {
		h := preapprovals.NewHandler(new(mocks.Storage), new(mocks.Storage), new(paymentmocks.Gateway), "https://example.com/return")

		req := httptest.NewRequest(http.MethodGet, "/preapprovals/return", nil)
		rr := httptest.NewRecorder()

		h.HandleReturn(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
