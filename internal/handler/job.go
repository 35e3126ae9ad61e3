package handler

import (
	"net/http"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/job"
	"github.com/osse101/CraftMarket_Go/internal/logger"
)

// URL parameter holding the profession id
const paramJobID = "jobID"

type JobHandler struct {
	service job.Service
}

func NewJobHandler(service job.Service) *JobHandler {
	return &JobHandler{
		service: service,
	}
}

// JobsResponse wraps the profession catalog
type JobsResponse struct {
	Jobs []domain.Job `json:"jobs"`
}

// LevelingPlanQuery holds the accepted leveling plan parameters
type LevelingPlanQuery struct {
	Server    string `query:"server" validate:"required,server"`
	FromLevel int    `query:"fromLevel" validate:"min=1,max=199"`
	ToLevel   int    `query:"toLevel" validate:"required,max=200,gtfield=FromLevel"`
}

// HandleListJobs returns every profession
// @Summary List professions
// @Tags jobs
// @Produce json
// @Success 200 {object} JobsResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/jobs [get]
func (h *JobHandler) HandleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.service.ListJobs(r.Context())
	if err != nil {
		respondServiceError(w, r, err, ErrMsgListJobsFailed)
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	respondJSON(w, http.StatusOK, JobsResponse{Jobs: jobs})
}

// HandleGetJob returns one profession
// @Summary Get profession
// @Tags jobs
// @Produce json
// @Param jobID path int true "Profession id"
// @Success 200 {object} domain.Job
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/jobs/{jobID} [get]
func (h *JobHandler) HandleGetJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathInt(w, r, paramJobID)
	if !ok {
		return
	}

	j, err := h.service.GetJob(r.Context(), jobID)
	if err != nil {
		respondServiceError(w, r, err, ErrMsgListJobsFailed)
		return
	}
	respondJSON(w, http.StatusOK, j)
}

// HandleGetLevelingPlan builds the cheapest greedy leveling plan
// @Summary Leveling plan
// @Description Cheapest cost-per-XP recipe sequence from fromLevel to toLevel with a shopping list per step
// @Tags jobs
// @Produce json
// @Param jobID path int true "Profession id"
// @Param server query string true "Game server"
// @Param fromLevel query int false "Starting level (default 1)"
// @Param toLevel query int true "Target level"
// @Success 200 {object} domain.LevelingPlan
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/jobs/{jobID}/leveling-plan [get]
func (h *JobHandler) HandleGetLevelingPlan(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathInt(w, r, paramJobID)
	if !ok {
		return
	}

	q := newQueryReader(r)
	params := LevelingPlanQuery{
		Server:    q.String("server"),
		FromLevel: q.Int("fromLevel", domain.MinJobLevel),
		ToLevel:   q.Int("toLevel", 0),
	}
	if !bindQuery(w, r, q, &params) {
		return
	}

	plan, err := h.service.PlanLeveling(r.Context(), domain.LevelingRequest{
		Server:    params.Server,
		JobID:     jobID,
		FromLevel: params.FromLevel,
		ToLevel:   params.ToLevel,
	})
	if err != nil {
		respondServiceError(w, r, err, ErrMsgLevelingPlanFailed)
		return
	}

	if !plan.Complete {
		logger.FromContext(r.Context()).Info("Returning partial leveling plan",
			"job_id", jobID,
			"reached", plan.ToLevel,
			"target", plan.TargetLevel)
	}
	respondJSON(w, http.StatusOK, plan)
}
