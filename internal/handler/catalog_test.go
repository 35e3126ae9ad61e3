package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

func TestHandleRecordObservations(t *testing.T) {
	t.Run("records batch", func(t *testing.T) {
		mockSvc := new(MockCatalogService)
		mockSvc.On("RecordObservations", mock.Anything, mock.MatchedBy(func(in []domain.ObservationInput) bool {
			return len(in) == 2 && in[0].Item.Name == "Iron Ore" && in[1].LotCount == 10
		})).Return(int64(2), nil)

		body := `{"observations":[
			{"item":{"name":"Iron Ore"},"server":"alpha","unit_price":12.5,"lot_count":1},
			{"item":{"name":"Coal","catalog_id":44},"server":"alpha","unit_price":3,"lot_count":10}
		]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/observations", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		HandleRecordObservations(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"recorded":2}`, w.Body.String())
		mockSvc.AssertExpectations(t)
	})

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"no observations key", `{}`, CodeMissingParameter},
		{"empty batch", `{"observations":[]}`, CodeInvalidParameter},
		{"negative price", `{"observations":[{"item":{"name":"Ore"},"server":"alpha","unit_price":-1}]}`, CodeInvalidParameter},
		{"missing item name", `{"observations":[{"item":{},"server":"alpha","unit_price":1}]}`, CodeMissingParameter},
		{"untrimmed server", `{"observations":[{"item":{"name":"Ore"},"server":" alpha","unit_price":1}]}`, CodeInvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockCatalogService)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/observations", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			HandleRecordObservations(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantCode, decodeErrorResponse(t, w).Code)
			mockSvc.AssertNotCalled(t, "RecordObservations", mock.Anything, mock.Anything)
		})
	}
}

func TestHandleSyncItems(t *testing.T) {
	t.Run("returns counts", func(t *testing.T) {
		mockSvc := new(MockCatalogService)
		mockSvc.On("SyncItems", mock.Anything, mock.Anything).
			Return(&domain.SyncResult{Created: 1, Updated: 1, Detached: 1}, nil)

		body := `{"items":[{"name":"Iron Ore","catalog_id":7},{"name":"Coal","craft_xp_ratio":-1}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/items", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		HandleSyncItems(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"created":1,"updated":1,"skipped":0,"detached":1}`, w.Body.String())
	})

	t.Run("identity conflict", func(t *testing.T) {
		mockSvc := new(MockCatalogService)
		mockSvc.On("SyncItems", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("failed to upsert item: %w", domain.ErrIdentityConflict))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/items", bytes.NewBufferString(`{"items":[{"name":"Ore"}]}`))
		w := httptest.NewRecorder()
		HandleSyncItems(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, CodeConflict, decodeErrorResponse(t, w).Code)
	})

	t.Run("ratio below sentinel", func(t *testing.T) {
		mockSvc := new(MockCatalogService)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/items", bytes.NewBufferString(`{"items":[{"name":"Ore","craft_xp_ratio":-5}]}`))
		w := httptest.NewRecorder()
		HandleSyncItems(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeErrorResponse(t, w).Fields, "items[0].craft_xp_ratio")
	})
}

func TestHandleSyncRecipes(t *testing.T) {
	t.Run("returns counts", func(t *testing.T) {
		mockSvc := new(MockCatalogService)
		mockSvc.On("SyncRecipes", mock.Anything, mock.MatchedBy(func(in []domain.RecipeInput) bool {
			return len(in) == 1 && in[0].ResultName == "Iron Sword" && len(in[0].Ingredients) == 2
		})).Return(&domain.SyncResult{Created: 1, Skipped: 0}, nil)

		body := `{"recipes":[{"result_name":"Iron Sword","job_id":1,"level":20,
			"ingredients":[{"name":"Iron Ore","quantity":5},{"name":"Coal","quantity":2}]}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/recipes", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		HandleSyncRecipes(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		mockSvc := new(MockCatalogService)
		body := `{"recipes":[{"result_name":"Iron Sword","job_id":1,"level":20,"ingredients":[{"name":"Iron Ore","quantity":0}]}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/recipes", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		HandleSyncRecipes(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeErrorResponse(t, w).Fields, "recipes[0].ingredients[0].quantity")
	})

	t.Run("service rejects self reference", func(t *testing.T) {
		mockSvc := new(MockCatalogService)
		mockSvc.On("SyncRecipes", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, domain.ErrMsgSelfReferencingRecipe))

		body := `{"recipes":[{"result_name":"Dough","job_id":2,"level":1,"ingredients":[{"name":"Dough","quantity":1}]}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/recipes", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		HandleSyncRecipes(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeErrorResponse(t, w).Error, domain.ErrMsgSelfReferencingRecipe)
	})

	t.Run("oversized body", func(t *testing.T) {
		mockSvc := new(MockCatalogService)

		body := `{"recipes":[{"result_name":"Dough","job_id":2,"level":1,"ingredients":[]}]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/recipes", bytes.NewBufferString(body))
		req.Body = http.MaxBytesReader(w, req.Body, 16)
		HandleSyncRecipes(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Equal(t, CodeBodyTooLarge, decodeErrorResponse(t, w).Code)
		mockSvc.AssertNotCalled(t, "SyncRecipes", mock.Anything, mock.Anything)
	})
}
