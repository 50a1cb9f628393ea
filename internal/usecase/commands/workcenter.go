package commands

import (
	"context"

	"planboard/internal/domain/workcenter"
	"planboard/internal/infra"
	"planboard/internal/pkg/errs"
	"planboard/internal/pkg/patch"
	"planboard/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrInvalidWorkCenter = errs.New("invalid work center")

type CreateWorkCenterParams struct {
	Name               string
	Department         string
	DailyCapacityMin   int
	ConcurrentCapacity int
}

// UpdateWorkCenterParams carries PATCH semantics: nil leaves a field alone.
type UpdateWorkCenterParams struct {
	Name               *string
	Department         *string
	DailyCapacityMin   *int
	ConcurrentCapacity *int
	Active             *bool
}

type WorkCenterCommands interface {
	Create(ctx context.Context, p CreateWorkCenterParams) (*queries.WorkCenterView, error)
	Update(ctx context.Context, id uuid.UUID, p UpdateWorkCenterParams) (*queries.WorkCenterView, error)
}

type workCenterCommandsImpl struct {
	workCenters WorkCenterRepository
}

func NewWorkCenterCommands(workCenters WorkCenterRepository) WorkCenterCommands {
	return &workCenterCommandsImpl{workCenters: workCenters}
}

func (c *workCenterCommandsImpl) Create(ctx context.Context, p CreateWorkCenterParams) (*queries.WorkCenterView, error) {
	department, err := workcenter.NewDepartment(p.Department)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidWorkCenter)
	}

	wc, err := workcenter.NewWorkCenter(p.Name, department, p.DailyCapacityMin, p.ConcurrentCapacity)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidWorkCenter)
	}

	if err := c.workCenters.Create(ctx, wc); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return queries.WorkCenterViewFromEntity(wc), nil
}

func (c *workCenterCommandsImpl) Update(ctx context.Context, id uuid.UUID, p UpdateWorkCenterParams) (*queries.WorkCenterView, error) {
	wc, err := c.workCenters.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWorkCenterNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	if p.Name != nil {
		if err := wc.Rename(*p.Name); err != nil {
			return nil, errs.Mark(err, ErrInvalidWorkCenter)
		}
	}
	if p.Department != nil {
		department, err := workcenter.NewDepartment(*p.Department)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidWorkCenter)
		}
		if err := wc.ChangeDepartment(department); err != nil {
			return nil, errs.Mark(err, ErrInvalidWorkCenter)
		}
	}
	if p.DailyCapacityMin != nil || p.ConcurrentCapacity != nil {
		daily := patch.Coalesce(p.DailyCapacityMin, wc.DailyCapacityMin())
		concurrent := patch.Coalesce(p.ConcurrentCapacity, wc.ConcurrentCapacity())
		if err := wc.ChangeCapacity(daily, concurrent); err != nil {
			return nil, errs.Mark(err, ErrInvalidWorkCenter)
		}
	}
	if p.Active != nil {
		if *p.Active {
			wc.Reactivate()
		} else {
			wc.Deactivate()
		}
	}

	if err := c.workCenters.Update(ctx, wc); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return queries.WorkCenterViewFromEntity(wc), nil
}
