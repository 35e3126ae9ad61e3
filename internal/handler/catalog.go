package handler

import (
	"net/http"

	"github.com/osse101/CraftMarket_Go/internal/catalog"
	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// RecordObservationsRequest is a batch of price sightings
type RecordObservationsRequest struct {
	Observations []domain.ObservationInput `json:"observations" validate:"required,min=1,max=5000,dive"`
}

// RecordObservationsResponse reports how many rows were stored
type RecordObservationsResponse struct {
	Recorded int64 `json:"recorded"`
}

// SyncItemsRequest is a batch of item definitions
type SyncItemsRequest struct {
	Items []domain.ItemInput `json:"items" validate:"required,min=1,max=5000,dive"`
}

// SyncRecipesRequest is a batch of recipe definitions
type SyncRecipesRequest struct {
	Recipes []domain.RecipeInput `json:"recipes" validate:"required,min=1,max=5000,dive"`
}

// HandleRecordObservations ingests price observations
// @Summary Record price observations
// @Description Append-only ingestion; unknown items are created on the fly
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body RecordObservationsRequest true "Observations"
// @Success 201 {object} RecordObservationsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/observations [post]
func HandleRecordObservations(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecordObservationsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Record observations"); err != nil {
			return
		}

		n, err := svc.RecordObservations(r.Context(), req.Observations)
		if err != nil {
			respondServiceError(w, r, err, ErrMsgRecordObservationsFail)
			return
		}
		respondJSON(w, http.StatusCreated, RecordObservationsResponse{Recorded: n})
	}
}

// HandleSyncItems upserts item definitions
// @Summary Sync items
// @Description Upserts items by name; a claimed catalog id is detached from its previous holder
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body SyncItemsRequest true "Items"
// @Success 200 {object} domain.SyncResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/catalog/items [post]
func HandleSyncItems(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SyncItemsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sync items"); err != nil {
			return
		}

		result, err := svc.SyncItems(r.Context(), req.Items)
		if err != nil {
			respondServiceError(w, r, err, ErrMsgSyncItemsFailed)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleSyncRecipes upserts recipe definitions
// @Summary Sync recipes
// @Description Upserts one recipe per result item; locked recipes keep their ingredients
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body SyncRecipesRequest true "Recipes"
// @Success 200 {object} domain.SyncResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/catalog/recipes [post]
func HandleSyncRecipes(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SyncRecipesRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sync recipes"); err != nil {
			return
		}

		result, err := svc.SyncRecipes(r.Context(), req.Recipes)
		if err != nil {
			respondServiceError(w, r, err, ErrMsgSyncRecipesFailed)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}
