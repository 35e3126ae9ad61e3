package handler

import (
	"net/http"

	"github.com/osse101/CraftMarket_Go/internal/crafting"
	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/logger"
)

// ProfitabilityQuery holds the accepted profitability filter parameters
type ProfitabilityQuery struct {
	Server       string   `query:"server" validate:"required,server"`
	MinLevel     int      `query:"minLevel" validate:"min=0,max=200"`
	MaxLevel     int      `query:"maxLevel" validate:"min=0,max=200"`
	JobID        *int     `query:"jobId" validate:"omitempty,min=1"`
	MinROI       *float64 `query:"minRoi"`
	NameSearch   string   `query:"nameSearch" validate:"max=200"`
	RecipeID     *int     `query:"recipeId" validate:"omitempty,min=1"`
	ResultItemID *int     `query:"resultItemId" validate:"omitempty,min=1"`
	SortBy       string   `query:"sortBy" validate:"omitempty,oneof=margin roi level cost estimated_margin estimated_roi"`
	Limit        int      `query:"limit" validate:"min=0"`
	Offset       int      `query:"offset" validate:"min=0"`
}

func readProfitabilityQuery(q *queryReader) ProfitabilityQuery {
	return ProfitabilityQuery{
		Server:       q.String("server"),
		MinLevel:     q.Int("minLevel", 0),
		MaxLevel:     q.Int("maxLevel", 0),
		JobID:        q.OptionalInt("jobId"),
		MinROI:       q.OptionalFloat("minRoi"),
		NameSearch:   q.String("nameSearch"),
		RecipeID:     q.OptionalInt("recipeId"),
		ResultItemID: q.OptionalInt("resultItemId"),
		SortBy:       q.String("sortBy"),
		Limit:        q.Int("limit", 0),
		Offset:       q.Int("offset", 0),
	}
}

func (p ProfitabilityQuery) filter() domain.ProfitabilityFilter {
	return domain.ProfitabilityFilter{
		Server:       p.Server,
		MinLevel:     p.MinLevel,
		MaxLevel:     p.MaxLevel,
		JobID:        p.JobID,
		MinROI:       p.MinROI,
		NameSearch:   p.NameSearch,
		RecipeID:     p.RecipeID,
		ResultItemID: p.ResultItemID,
		SortBy:       p.SortBy,
		Limit:        p.Limit,
		Offset:       p.Offset,
	}
}

// HandleGetProfitability lists recipes with market and estimated margins
// @Summary List recipe profitability
// @Description Market craft cost, sell price and layered estimated cost for every recipe on a server
// @Tags recipes
// @Produce json
// @Param server query string true "Game server"
// @Param minLevel query int false "Minimum recipe level"
// @Param maxLevel query int false "Maximum recipe level (0 means 200)"
// @Param jobId query int false "Profession id"
// @Param minRoi query number false "Minimum market ROI percent"
// @Param nameSearch query string false "Result item name substring (case and accent insensitive)"
// @Param recipeId query int false "Exact recipe id"
// @Param resultItemId query int false "Exact result item id"
// @Param sortBy query string false "margin, roi, level, cost, estimated_margin or estimated_roi"
// @Param limit query int false "Page size (default 50, max 500)"
// @Param offset query int false "Page offset"
// @Success 200 {object} domain.ProfitabilityPage
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/recipes/profitability [get]
func HandleGetProfitability(svc crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := newQueryReader(r)
		params := readProfitabilityQuery(q)
		if !bindQuery(w, r, q, &params) {
			return
		}

		page, err := svc.ListProfitability(r.Context(), params.filter())
		if err != nil {
			respondServiceError(w, r, err, ErrMsgListProfitabilityFailed)
			return
		}

		logger.FromContext(r.Context()).Debug("Profitability listed",
			"server", params.Server,
			"total", page.Total,
			"returned", len(page.Rows))
		respondJSON(w, http.StatusOK, page)
	}
}
