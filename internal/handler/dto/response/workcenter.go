package response

import (
	"planboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type WorkCenterResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Department         string    `json:"department"`
	DailyCapacityMin   int       `json:"dailyCapacityMin"`
	ConcurrentCapacity int       `json:"concurrentCapacity"`
	Active             bool      `json:"active"`
}

func FromWorkCenterView(v *queries.WorkCenterView) *WorkCenterResponse {
	return &WorkCenterResponse{
		ID:                 v.ID,
		Name:               v.Name,
		Department:         v.Department,
		DailyCapacityMin:   v.DailyCapacityMin,
		ConcurrentCapacity: v.ConcurrentCapacity,
		Active:             v.Active,
	}
}
