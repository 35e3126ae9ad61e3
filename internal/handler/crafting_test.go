package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleGetProfitability_Success(t *testing.T) {
	mockSvc := new(MockCraftingService)
	sell := 150.0
	page := &domain.ProfitabilityPage{
		Rows: []domain.ProfitabilityRow{
			{RecipeID: 7, ResultItemID: 70, ResultItemName: "Iron Sword", Level: 20, CraftCost: 100, SellPrice: &sell, Margin: 50, ROI: 50},
		},
		Total:  1,
		Limit:  10,
		Offset: 0,
	}
	mockSvc.On("ListProfitability", mock.Anything, mock.MatchedBy(func(f domain.ProfitabilityFilter) bool {
		return f.Server == "alpha" &&
			f.MinLevel == 10 && f.MaxLevel == 50 &&
			f.JobID != nil && *f.JobID == 1 &&
			f.MinROI != nil && *f.MinROI == 12.5 &&
			f.NameSearch == "sword" &&
			f.SortBy == domain.SortByROI &&
			f.Limit == 10 && f.Offset == 0 &&
			f.RecipeID == nil && f.ResultItemID == nil
	})).Return(page, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/recipes/profitability?server=alpha&minLevel=10&maxLevel=50&jobId=1&minRoi=12.5&nameSearch=sword&sortBy=roi&limit=10", nil)
	w := httptest.NewRecorder()
	HandleGetProfitability(mockSvc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got domain.ProfitabilityPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "Iron Sword", got.Rows[0].ResultItemName)
	assert.Equal(t, 1, got.Total)
	mockSvc.AssertExpectations(t)
}

func TestHandleGetProfitability_ExactLookup(t *testing.T) {
	mockSvc := new(MockCraftingService)
	mockSvc.On("ListProfitability", mock.Anything, mock.MatchedBy(func(f domain.ProfitabilityFilter) bool {
		return f.RecipeID != nil && *f.RecipeID == 7 && f.ResultItemID == nil
	})).Return(&domain.ProfitabilityPage{Rows: []domain.ProfitabilityRow{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/profitability?server=alpha&recipeId=7", nil)
	w := httptest.NewRecorder()
	HandleGetProfitability(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rows":[]`)
	mockSvc.AssertExpectations(t)
}

func TestHandleGetProfitability_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantCode  string
		wantField string
	}{
		{"missing server", "", CodeMissingParameter, "server"},
		{"blank server", "server=%20%20", CodeMissingParameter, "server"},
		{"non numeric level", "server=alpha&minLevel=ten", CodeInvalidParameter, "minLevel"},
		{"level above cap", "server=alpha&maxLevel=201", CodeInvalidParameter, "maxLevel"},
		{"non numeric roi", "server=alpha&minRoi=abc", CodeInvalidParameter, "minRoi"},
		{"nan roi", "server=alpha&minRoi=NaN", CodeInvalidParameter, "minRoi"},
		{"unknown sort key", "server=alpha&sortBy=popularity", CodeInvalidParameter, "sortBy"},
		{"negative offset", "server=alpha&offset=-1", CodeInvalidParameter, "offset"},
		{"zero job id", "server=alpha&jobId=0", CodeInvalidParameter, "jobId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockCraftingService)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/profitability?"+tt.query, nil)
			w := httptest.NewRecorder()
			HandleGetProfitability(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeErrorResponse(t, w)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Contains(t, resp.Fields, tt.wantField)
			mockSvc.AssertNotCalled(t, "ListProfitability", mock.Anything, mock.Anything)
		})
	}
}

func TestHandleGetProfitability_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid range",
			err:        fmt.Errorf("%w: minLevel must not exceed maxLevel", domain.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeInvalidParameter,
		},
		{
			name:       "store failure",
			err:        fmt.Errorf("failed to load recipes: %w", domain.ErrStoreUnavailable),
			wantStatus: http.StatusInternalServerError,
			wantCode:   CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockCraftingService)
			mockSvc.On("ListProfitability", mock.Anything, mock.Anything).Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/profitability?server=alpha&minLevel=50&maxLevel=10", nil)
			w := httptest.NewRecorder()
			HandleGetProfitability(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decodeErrorResponse(t, w).Code)
		})
	}
}

func TestHandleGetProfitability_StoreErrorHidesDetails(t *testing.T) {
	mockSvc := new(MockCraftingService)
	mockSvc.On("ListProfitability", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("pq: relation recipes does not exist: %w", domain.ErrStoreUnavailable))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/profitability?server=alpha", nil)
	w := httptest.NewRecorder()
	HandleGetProfitability(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "relation")
	assert.Equal(t, ErrMsgGenericServerError, decodeErrorResponse(t, w).Error)
}
