package handler

import (
	"net/http"

	"github.com/osse101/CraftMarket_Go/internal/bank"
	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/logger"
)

// BankOpportunitiesQuery holds the accepted bank match parameters
type BankOpportunitiesQuery struct {
	Server     string   `query:"server" validate:"required,server"`
	ProfileID  string   `query:"profileId" validate:"max=64"`
	MaxMissing int      `query:"maxMissing" validate:"min=0"`
	MinLevel   int      `query:"minLevel" validate:"min=0,max=200"`
	MaxLevel   int      `query:"maxLevel" validate:"min=0,max=200"`
	JobID      *int     `query:"jobId" validate:"omitempty,min=1"`
	MinROI     *float64 `query:"minRoi"`
	NameSearch string   `query:"nameSearch" validate:"max=200"`
	Limit      int      `query:"limit" validate:"min=0"`
	Offset     int      `query:"offset" validate:"min=0"`
}

func (p BankOpportunitiesQuery) filter() domain.BankOpportunityFilter {
	return domain.BankOpportunityFilter{
		Scope:      domain.BankScope{Server: p.Server, ProfileID: p.ProfileID},
		MaxMissing: p.MaxMissing,
		MinLevel:   p.MinLevel,
		MaxLevel:   p.MaxLevel,
		JobID:      p.JobID,
		MinROI:     p.MinROI,
		NameSearch: p.NameSearch,
		Limit:      p.Limit,
		Offset:     p.Offset,
	}
}

// BankSyncRequest replaces the stored bank of one scope
type BankSyncRequest struct {
	Server    string                `json:"server" validate:"required,server"`
	ProfileID string                `json:"profile_id" validate:"max=64"`
	Items     []domain.BankSyncItem `json:"items" validate:"max=10000,dive"`
}

// HandleGetBankOpportunities matches recipes against a bank
// @Summary Bank craft opportunities
// @Description Recipes the bank can craft or is close to crafting, fewest missing ingredients first
// @Tags bank
// @Produce json
// @Param server query string true "Game server"
// @Param profileId query string false "Bank profile (omit for every profile on the server)"
// @Param maxMissing query int false "Maximum missing ingredients (default 0)"
// @Param minLevel query int false "Minimum recipe level"
// @Param maxLevel query int false "Maximum recipe level (0 means 200)"
// @Param jobId query int false "Profession id"
// @Param minRoi query number false "Minimum ROI percent"
// @Param nameSearch query string false "Result item name substring"
// @Param limit query int false "Page size (default 50, max 500)"
// @Param offset query int false "Page offset"
// @Success 200 {object} domain.BankOpportunityPage
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/bank/opportunities [get]
func HandleGetBankOpportunities(svc bank.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := newQueryReader(r)
		params := BankOpportunitiesQuery{
			Server:     q.String("server"),
			ProfileID:  q.String("profileId"),
			MaxMissing: q.Int("maxMissing", 0),
			MinLevel:   q.Int("minLevel", 0),
			MaxLevel:   q.Int("maxLevel", 0),
			JobID:      q.OptionalInt("jobId"),
			MinROI:     q.OptionalFloat("minRoi"),
			NameSearch: q.String("nameSearch"),
			Limit:      q.Int("limit", 0),
			Offset:     q.Int("offset", 0),
		}
		if !bindQuery(w, r, q, &params) {
			return
		}

		page, err := svc.Opportunities(r.Context(), params.filter())
		if err != nil {
			respondServiceError(w, r, err, ErrMsgBankOpportunitiesFailed)
			return
		}
		respondJSON(w, http.StatusOK, page)
	}
}

// HandleSyncBank replaces a bank snapshot
// @Summary Sync bank
// @Description Diffs the payload against stored rows and applies inserts, updates and deletes
// @Tags bank
// @Accept json
// @Produce json
// @Param request body BankSyncRequest true "Bank contents"
// @Success 200 {object} domain.BankSyncResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/bank/sync [post]
func HandleSyncBank(svc bank.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BankSyncRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Bank sync"); err != nil {
			return
		}

		scope := domain.BankScope{Server: req.Server, ProfileID: req.ProfileID}
		result, err := svc.Sync(r.Context(), scope, req.Items)
		if err != nil {
			respondServiceError(w, r, err, ErrMsgBankSyncFailed)
			return
		}

		logger.FromContext(r.Context()).Debug("Bank sync handled",
			"server", scope.Server,
			"items", len(req.Items))
		respondJSON(w, http.StatusOK, result)
	}
}
