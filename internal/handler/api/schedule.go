package api

import (
	"context"
	"net/http"
	"strings"

	reqdto "planboard/internal/handler/dto/request"
	resdto "planboard/internal/handler/dto/response"
	"planboard/internal/handler/httperr"
	"planboard/internal/pkg/errs"
	"planboard/internal/usecase/commands"
	"planboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errBadRequest = errs.New("bad request")

type ScheduleHandler struct {
	commands commands.ScheduleCommands
	queries  queries.ScheduleQueries
}

func NewScheduleHandler(commands commands.ScheduleCommands, queries queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{
		commands: commands,
		queries:  queries,
	}
}

// @Summary Create slot
// @Description Place an order or a blocker on a work center day
// @Tags slots
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSlotRequest true "Slot placement"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /slots [post]
func (h *ScheduleHandler) CreateSlot(c *gin.Context) {
	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "bad_request", "Invalid request format", nil)
		return
	}

	date, err := reqdto.ParseDate(req.Date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "bad_request", "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	view, err := h.commands.CreateSlot(c.Request.Context(), commands.CreateSlotParams{
		WorkCenterID: req.WorkCenterID,
		Date:         date,
		StartMin:     req.StartMin,
		LengthMin:    req.LengthMin,
		OrderID:      req.OrderID,
		Blocked:      req.Blocked,
		Note:         req.GetNote(),
	})
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSlotView(view))
}

// @Summary Move slot
// @Description Re-place a slot on a new date and start offset
// @Tags slots
// @Accept json
// @Produce json
// @Param id path string true "Slot ID"
// @Param request body reqdto.MoveSlotRequest true "New position"
// @Success 200 {object} resdto.SlotResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /slots/{id}/move [patch]
func (h *ScheduleHandler) MoveSlot(c *gin.Context) {
	slotID, ok := h.slotID(c)
	if !ok {
		return
	}

	var req reqdto.MoveSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "bad_request", "Invalid request format", nil)
		return
	}

	date, err := reqdto.ParseDate(req.Date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "bad_request", "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	view, err := h.commands.MoveSlot(c.Request.Context(), commands.MoveSlotParams{
		SlotID:   slotID,
		NewDate:  date,
		StartMin: req.StartMin,
		Version:  req.Version,
	})
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary Delete slot
// @Description Remove a slot that has not entered the run lifecycle
// @Tags slots
// @Param id path string true "Slot ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /slots/{id} [delete]
func (h *ScheduleHandler) DeleteSlot(c *gin.Context) {
	slotID, ok := h.slotID(c)
	if !ok {
		return
	}

	var req reqdto.DeleteSlotRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "bad_request", "Invalid request format", nil)
			return
		}
	}

	if err := h.commands.DeleteSlot(c.Request.Context(), slotID, req.Version); err != nil {
		respondScheduleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Start slot
// @Tags slots
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.SlotResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /slots/{id}/start [post]
func (h *ScheduleHandler) StartSlot(c *gin.Context) {
	h.lifecycle(c, h.commands.Start)
}

// @Summary Pause slot
// @Tags slots
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.SlotResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /slots/{id}/pause [post]
func (h *ScheduleHandler) PauseSlot(c *gin.Context) {
	h.lifecycle(c, h.commands.Pause)
}

// @Summary Stop slot
// @Description Finish the slot and stamp its actual duration
// @Tags slots
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.SlotResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /slots/{id}/stop [post]
func (h *ScheduleHandler) StopSlot(c *gin.Context) {
	h.lifecycle(c, h.commands.Stop)
}

// @Summary Report a production problem
// @Description Missing parts blocks the slot and may escalate to the order; quality only annotates
// @Tags slots
// @Accept json
// @Produce json
// @Param id path string true "Slot ID"
// @Param request body reqdto.ProblemReportRequest true "Problem report"
// @Success 200 {object} resdto.ProblemReportResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /slots/{id}/problems [post]
func (h *ScheduleHandler) ReportProblem(c *gin.Context) {
	slotID, ok := h.slotID(c)
	if !ok {
		return
	}

	var req reqdto.ProblemReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "bad_request", "Invalid request format", nil)
		return
	}

	params := commands.ProblemReportParams{
		SlotID:   slotID,
		Note:     strings.TrimSpace(req.Note),
		Escalate: req.Escalate,
		Version:  req.Version,
	}

	switch req.Kind {
	case reqdto.ProblemKindMissingParts:
		result, err := h.commands.ReportMissingParts(c.Request.Context(), params)
		if err != nil {
			respondScheduleError(c, err)
			return
		}
		c.JSON(http.StatusOK, &resdto.ProblemReportResponse{
			Slot:             resdto.FromSlotView(result.Slot),
			EscalationFailed: result.EscalationFailed,
		})
	case reqdto.ProblemKindQuality:
		view, err := h.commands.ReportQuality(c.Request.Context(), params)
		if err != nil {
			respondScheduleError(c, err)
			return
		}
		c.JSON(http.StatusOK, &resdto.ProblemReportResponse{Slot: resdto.FromSlotView(view)})
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, errBadRequest, "bad_request", "Unknown problem kind", nil)
	}
}

// @Summary Day board
// @Description Slots with lanes and capacity usage for the requested work centers
// @Tags schedule
// @Produce json
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Param work_center_ids query string true "Comma-separated work center IDs"
// @Success 200 {object} resdto.DayBoardResponse
// @Failure 400 {object} httperr.Response
// @Router /schedule/day [get]
func (h *ScheduleHandler) DayBoard(c *gin.Context) {
	date, err := reqdto.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "bad_request", "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	ids, err := parseUUIDList(c.Query("work_center_ids"))
	if err != nil || len(ids) == 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errBadRequest, "bad_request", "work_center_ids must be a comma-separated UUID list", nil)
		return
	}

	board, err := h.queries.DayBoard(c.Request.Context(), ids, date)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayBoardView(board))
}

// @Summary Production today
// @Description Real-work slots of one work center with elapsed running minutes
// @Tags schedule
// @Produce json
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Param work_center_id query string true "Work center ID"
// @Success 200 {array} resdto.TodaySlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /schedule/today [get]
func (h *ScheduleHandler) Today(c *gin.Context) {
	date, err := reqdto.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "bad_request", "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	workCenterID, err := uuid.Parse(c.Query("work_center_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "bad_request", "Invalid work center ID", nil)
		return
	}

	slots, err := h.queries.Today(c.Request.Context(), workCenterID, date)
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	out := make([]*resdto.TodaySlotResponse, len(slots))
	for i, s := range slots {
		out[i] = resdto.FromTodaySlotView(s)
	}
	c.JSON(http.StatusOK, out)
}

func (h *ScheduleHandler) lifecycle(c *gin.Context, op func(ctx context.Context, slotID uuid.UUID, version *int64) (*queries.SlotView, error)) {
	slotID, ok := h.slotID(c)
	if !ok {
		return
	}

	var req reqdto.LifecycleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "bad_request", "Invalid request format", nil)
			return
		}
	}

	view, err := op(c.Request.Context(), slotID, req.Version)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

func (h *ScheduleHandler) slotID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "bad_request", "Invalid slot ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func parseUUIDList(raw string) ([]uuid.UUID, error) {
	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
