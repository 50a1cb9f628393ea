package queries

import (
	"context"

	"planboard/internal/pkg/errs"
)

// Workflow states in which an order may be placed on the board. The order
// aggregate itself is owned by the order-management subsystem; this is a
// read-only projection for the planner's order tray.
var SchedulableWorkflows = []string{"ready_for_production", "in_production"}

type OrderReadStore interface {
	FindSchedulable(ctx context.Context, department string, workflows []string) ([]*OrderView, error)
}

type OrderQueries interface {
	// Schedulable lists orders a planner may place, filtered by department
	// and sorted by due date. department "" means all departments.
	Schedulable(ctx context.Context, department string) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) Schedulable(ctx context.Context, department string) ([]*OrderView, error) {
	orders, err := q.store.FindSchedulable(ctx, department, SchedulableWorkflows)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return orders, nil
}
