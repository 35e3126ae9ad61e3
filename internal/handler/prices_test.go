package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

func TestHandleGetLatestPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    domain.Price
		wantBody string
	}{
		{
			name:     "known price",
			price:    domain.KnownPrice(42.5),
			wantBody: `{"item_id":9,"server":"alpha","price":42.5,"known":true}`,
		},
		{
			name:     "known zero price",
			price:    domain.KnownPrice(0),
			wantBody: `{"item_id":9,"server":"alpha","price":0,"known":true}`,
		},
		{
			name:     "never observed",
			price:    domain.Price{},
			wantBody: `{"item_id":9,"server":"alpha","price":null,"known":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockPricingService)
			mockSvc.On("LatestPrice", mock.Anything, 9, "alpha").Return(tt.price, nil)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/prices/latest?server=alpha&itemId=9", nil)
			w := httptest.NewRecorder()
			HandleGetLatestPrice(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestHandleGetLatestPrice_InvalidParams(t *testing.T) {
	mockSvc := new(MockPricingService)

	for _, query := range []string{"server=alpha", "itemId=9", "server=alpha&itemId=x", "server=alpha&itemId=-3"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/prices/latest?"+query, nil)
		w := httptest.NewRecorder()
		HandleGetLatestPrice(mockSvc).ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
	mockSvc.AssertNotCalled(t, "LatestPrice", mock.Anything, mock.Anything, mock.Anything)
}
