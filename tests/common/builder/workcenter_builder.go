//go:build unit

package builder

import (
	domworkcenter "planboard/internal/domain/workcenter"
	reqdto "planboard/internal/handler/dto/request"
	"planboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type WorkCenterBuilder struct {
	Name               string
	Department         string
	DailyCapacityMin   int
	ConcurrentCapacity int
}

func NewWorkCenterBuilder() *WorkCenterBuilder {
	return &WorkCenterBuilder{
		Name:               "CNC Mill 3",
		Department:         "machining",
		DailyCapacityMin:   600,
		ConcurrentCapacity: 2,
	}
}

func (b *WorkCenterBuilder) With(mutate func(*WorkCenterBuilder)) *WorkCenterBuilder {
	mutate(b)
	return b
}

func (b *WorkCenterBuilder) BuildDomain() (*domworkcenter.WorkCenter, error) {
	department, err := domworkcenter.NewDepartment(b.Department)
	if err != nil {
		return nil, err
	}
	return domworkcenter.NewWorkCenter(b.Name, department, b.DailyCapacityMin, b.ConcurrentCapacity)
}

func (b *WorkCenterBuilder) BuildCreateRequestDTO() reqdto.CreateWorkCenterRequest {
	return reqdto.CreateWorkCenterRequest{
		Name:               b.Name,
		Department:         b.Department,
		DailyCapacityMin:   b.DailyCapacityMin,
		ConcurrentCapacity: b.ConcurrentCapacity,
	}
}

func (b *WorkCenterBuilder) BuildView() *queries.WorkCenterView {
	return &queries.WorkCenterView{
		ID:                 uuid.New(),
		Name:               b.Name,
		Department:         b.Department,
		DailyCapacityMin:   b.DailyCapacityMin,
		ConcurrentCapacity: b.ConcurrentCapacity,
		Active:             true,
	}
}
