package api

import (
	"net/http"

	reqdto "planboard/internal/handler/dto/request"
	resdto "planboard/internal/handler/dto/response"
	"planboard/internal/handler/httperr"
	"planboard/internal/usecase/commands"
	"planboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkCenterHandler struct {
	commands commands.WorkCenterCommands
	queries  queries.ScheduleQueries
}

func NewWorkCenterHandler(commands commands.WorkCenterCommands, queries queries.ScheduleQueries) *WorkCenterHandler {
	return &WorkCenterHandler{
		commands: commands,
		queries:  queries,
	}
}

// @Summary Create work center
// @Tags work-centers
// @Accept json
// @Produce json
// @Param request body reqdto.CreateWorkCenterRequest true "Work center"
// @Success 201 {object} resdto.WorkCenterResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /work-centers [post]
func (h *WorkCenterHandler) Create(c *gin.Context) {
	var req reqdto.CreateWorkCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "bad_request", "Invalid request format", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), commands.CreateWorkCenterParams{
		Name:               req.Name,
		Department:         req.Department,
		DailyCapacityMin:   req.DailyCapacityMin,
		ConcurrentCapacity: req.ConcurrentCapacity,
	})
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromWorkCenterView(view))
}

// @Summary Update work center
// @Description Partial update; omitted fields are left unchanged
// @Tags work-centers
// @Accept json
// @Produce json
// @Param id path string true "Work center ID"
// @Param request body reqdto.UpdateWorkCenterRequest true "Fields to change"
// @Success 200 {object} resdto.WorkCenterResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /work-centers/{id} [patch]
func (h *WorkCenterHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "bad_request", "Invalid work center ID format", nil)
		return
	}

	var req reqdto.UpdateWorkCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "bad_request", "Invalid request format", nil)
		return
	}

	view, err := h.commands.Update(c.Request.Context(), id, commands.UpdateWorkCenterParams{
		Name:               req.Name,
		Department:         req.Department,
		DailyCapacityMin:   req.DailyCapacityMin,
		ConcurrentCapacity: req.ConcurrentCapacity,
		Active:             req.Active,
	})
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWorkCenterView(view))
}

// @Summary List work centers
// @Tags work-centers
// @Produce json
// @Param include_inactive query bool false "Include deactivated centers"
// @Success 200 {array} resdto.WorkCenterResponse
// @Router /work-centers [get]
func (h *WorkCenterHandler) List(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	views, err := h.queries.ListWorkCenters(c.Request.Context(), includeInactive)
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	out := make([]*resdto.WorkCenterResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromWorkCenterView(v)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Work center capacity
// @Description Minute and lane usage for one work center on one day
// @Tags work-centers
// @Produce json
// @Param id path string true "Work center ID"
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} resdto.CapacityResponse
// @Failure 404 {object} httperr.Response
// @Router /work-centers/{id}/capacity [get]
func (h *WorkCenterHandler) Capacity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "bad_request", "Invalid work center ID format", nil)
		return
	}

	date, err := reqdto.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "bad_request", "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	view, err := h.queries.Capacity(c.Request.Context(), id, date)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCapacityView(view))
}
