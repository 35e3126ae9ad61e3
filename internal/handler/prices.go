package handler

import (
	"net/http"

	"github.com/osse101/CraftMarket_Go/internal/pricing"
)

// LatestPriceQuery holds the accepted price lookup parameters
type LatestPriceQuery struct {
	Server string `query:"server" validate:"required,server"`
	ItemID int    `query:"itemId" validate:"required,min=1"`
}

// LatestPriceResponse is a spot price lookup. Price is null when the item
// has never been observed on the server.
type LatestPriceResponse struct {
	ItemID int      `json:"item_id"`
	Server string   `json:"server"`
	Price  *float64 `json:"price"`
	Known  bool     `json:"known"`
}

// HandleGetLatestPrice returns the most recent observed unit price
// @Summary Latest price
// @Tags prices
// @Produce json
// @Param server query string true "Game server"
// @Param itemId query int true "Item id"
// @Success 200 {object} LatestPriceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/prices/latest [get]
func HandleGetLatestPrice(svc pricing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := newQueryReader(r)
		params := LatestPriceQuery{
			Server: q.String("server"),
			ItemID: q.Int("itemId", 0),
		}
		if !bindQuery(w, r, q, &params) {
			return
		}

		price, err := svc.LatestPrice(r.Context(), params.ItemID, params.Server)
		if err != nil {
			respondServiceError(w, r, err, ErrMsgLatestPriceFailed)
			return
		}

		respondJSON(w, http.StatusOK, LatestPriceResponse{
			ItemID: params.ItemID,
			Server: params.Server,
			Price:  price.Ptr(),
			Known:  price.Known,
		})
	}
}
