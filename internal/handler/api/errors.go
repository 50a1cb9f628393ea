package api

import (
	"errors"
	"net/http"

	"planboard/internal/domain/schedule"
	"planboard/internal/domain/workcenter"
	"planboard/internal/handler/httperr"
	"planboard/internal/usecase/commands"
	"planboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// respondScheduleError translates usecase errors into distinguishable wire
// errors. Validation kinds map to 422 so the planner UI can react
// differently (e.g. highlight the grid snap) from a generic retry toast.
func respondScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrMisalignedGrid):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "misaligned_grid",
			"Start and length must be multiples of the scheduling grid", nil)
	case errors.Is(err, schedule.ErrOutsideWorkingHours):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "outside_working_hours",
			"Slot must lie within the working day", nil)
	case errors.Is(err, schedule.ErrConflictingKind):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "conflicting_kind",
			"Slot must reference an order or be a blocker, never both or neither", nil)
	case errors.Is(err, schedule.ErrNonPositiveLength):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "non_positive_length",
			"Slot length must be positive", nil)
	case errors.Is(err, schedule.ErrEmptyProblemNote):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "empty_note",
			"Problem report requires a note", nil)
	case errors.Is(err, commands.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "invalid_transition",
			"Lifecycle transition not allowed from the slot's current status", transitionDetail(err))
	case errors.Is(err, commands.ErrSlotHasHistory):
		httperr.AbortWithError(c, http.StatusConflict, err, "slot_has_history",
			"Slot with lifecycle history cannot be deleted", nil)
	case errors.Is(err, commands.ErrSlotNotPlanned):
		httperr.AbortWithError(c, http.StatusConflict, err, "slot_not_planned",
			"Only planned slots can be moved", nil)
	case errors.Is(err, commands.ErrConcurrencyConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "stale_version",
			"Slot was modified concurrently, refresh and retry", nil)
	case errors.Is(err, commands.ErrSlotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "not_found", "Slot not found", nil)
	case errors.Is(err, commands.ErrWorkCenterNotFound), errors.Is(err, queries.ErrWorkCenterNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "not_found", "Work center not found", nil)
	case errors.Is(err, commands.ErrOrderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "not_found", "Order not found", nil)
	case errors.Is(err, commands.ErrWorkCenterInactive):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "work_center_inactive",
			"Work center is inactive and accepts no new slots", nil)
	case errors.Is(err, commands.ErrInvalidWorkCenter), errors.Is(err, workcenter.ErrInvalidDepartment):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "invalid_work_center",
			"Work center configuration is invalid", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal",
			"Internal server error", nil)
	}
}

func transitionDetail(err error) any {
	var ite *schedule.InvalidTransitionError
	if errors.As(err, &ite) {
		return gin.H{"from": ite.From.String(), "to": ite.To.String()}
	}
	return nil
}
