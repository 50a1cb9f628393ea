package api

import (
	"net/http"

	resdto "planboard/internal/handler/dto/response"
	"planboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	queries queries.OrderQueries
}

func NewOrderHandler(queries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{queries: queries}
}

// @Summary Schedulable orders
// @Description Orders in a workflow state that allows placement, due-date sorted
// @Tags orders
// @Produce json
// @Param department query string false "Filter by department"
// @Success 200 {array} resdto.OrderResponse
// @Router /orders/schedulable [get]
func (h *OrderHandler) Schedulable(c *gin.Context) {
	views, err := h.queries.Schedulable(c.Request.Context(), c.Query("department"))
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	out := make([]*resdto.OrderResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromOrderView(v)
	}
	c.JSON(http.StatusOK, out)
}
