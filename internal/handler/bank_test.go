package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

func TestHandleGetBankOpportunities(t *testing.T) {
	t.Run("passes scope and filters", func(t *testing.T) {
		mockSvc := new(MockBankService)
		page := &domain.BankOpportunityPage{
			Rows: []domain.BankOpportunity{
				{RecipeID: 3, ResultItemName: "Bread", TotalIngredients: 2, OwnedIngredients: 1, MissingIngredients: 1, CompletenessPct: 50},
			},
			Total: 1,
			Limit: domain.DefaultPageLimit,
		}
		mockSvc.On("Opportunities", mock.Anything, domain.BankOpportunityFilter{
			Scope:      domain.BankScope{Server: "alpha", ProfileID: "guild-1"},
			MaxMissing: 1,
			NameSearch: "bread",
		}).Return(page, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/bank/opportunities?server=alpha&profileId=guild-1&maxMissing=1&nameSearch=bread", nil)
		w := httptest.NewRecorder()
		HandleGetBankOpportunities(mockSvc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var got domain.BankOpportunityPage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got.Rows, 1)
		assert.Equal(t, 50.0, got.Rows[0].CompletenessPct)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing server", func(t *testing.T) {
		mockSvc := new(MockBankService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bank/opportunities?maxMissing=1", nil)
		w := httptest.NewRecorder()
		HandleGetBankOpportunities(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, CodeMissingParameter, decodeErrorResponse(t, w).Code)
		mockSvc.AssertNotCalled(t, "Opportunities", mock.Anything, mock.Anything)
	})

	t.Run("negative max missing", func(t *testing.T) {
		mockSvc := new(MockBankService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bank/opportunities?server=alpha&maxMissing=-2", nil)
		w := httptest.NewRecorder()
		HandleGetBankOpportunities(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeErrorResponse(t, w)
		assert.Equal(t, CodeInvalidParameter, resp.Code)
		assert.Contains(t, resp.Fields, "maxMissing")
	})

	t.Run("store failure", func(t *testing.T) {
		mockSvc := new(MockBankService)
		mockSvc.On("Opportunities", mock.Anything, mock.Anything).Return(nil, domain.ErrStoreUnavailable)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/bank/opportunities?server=alpha", nil)
		w := httptest.NewRecorder()
		HandleGetBankOpportunities(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandleSyncBank(t *testing.T) {
	t.Run("applies payload", func(t *testing.T) {
		mockSvc := new(MockBankService)
		items := []domain.BankSyncItem{{ItemID: 1, Quantity: 5}, {ItemID: 2, Quantity: 0}}
		mockSvc.On("Sync", mock.Anything, domain.BankScope{Server: "alpha", ProfileID: "p1"}, items).
			Return(&domain.BankSyncResult{Inserted: 1, Deleted: 2}, nil)

		body, _ := json.Marshal(BankSyncRequest{Server: "alpha", ProfileID: "p1", Items: items})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bank/sync", bytes.NewReader(body))
		w := httptest.NewRecorder()
		HandleSyncBank(mockSvc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var got domain.BankSyncResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, domain.BankSyncResult{Inserted: 1, Deleted: 2}, got)
		mockSvc.AssertExpectations(t)
	})

	t.Run("empty payload clears the bank", func(t *testing.T) {
		mockSvc := new(MockBankService)
		mockSvc.On("Sync", mock.Anything, domain.BankScope{Server: "alpha"}, []domain.BankSyncItem{}).
			Return(&domain.BankSyncResult{Deleted: 3}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/bank/sync", bytes.NewBufferString(`{"server":"alpha","items":[]}`))
		w := httptest.NewRecorder()
		HandleSyncBank(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"malformed json", `{"server":`, CodeInvalidBody},
		{"unknown field", `{"server":"alpha","itemz":[]}`, CodeInvalidBody},
		{"missing server", `{"items":[{"item_id":1,"quantity":2}]}`, CodeMissingParameter},
		{"invalid item id", `{"server":"alpha","items":[{"item_id":-4,"quantity":2}]}`, CodeInvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockBankService)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/bank/sync", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			HandleSyncBank(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantCode, decodeErrorResponse(t, w).Code)
			mockSvc.AssertNotCalled(t, "Sync", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
