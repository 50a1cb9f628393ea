package request

type CreateWorkCenterRequest struct {
	Name               string `json:"name" binding:"required"`
	Department         string `json:"department" binding:"required"`
	DailyCapacityMin   int    `json:"daily_capacity_min" binding:"required,gt=0"`
	ConcurrentCapacity int    `json:"concurrent_capacity" binding:"required,gt=0"`
}

type UpdateWorkCenterRequest struct {
	Name               *string `json:"name,omitempty"`
	Department         *string `json:"department,omitempty"`
	DailyCapacityMin   *int    `json:"daily_capacity_min,omitempty"`
	ConcurrentCapacity *int    `json:"concurrent_capacity,omitempty"`
	Active             *bool   `json:"active,omitempty"`
}
