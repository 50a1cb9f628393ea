package repository

import (
	"context"
	"errors"

	"planboard/internal/infra"
	"planboard/internal/pkg/pgconv"
	"planboard/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// OrderStore backs the OrderReads and OrderWorkflows ports against the
// orders table the order-management subsystem owns. Scheduling only reads
// the projection and, during the missing-parts escalation, flips the
// workflow column; everything else on the order stays foreign territory.
type OrderStore struct {
	db infra.DBTX
}

func NewOrderStore(db infra.DBTX) *OrderStore {
	return &OrderStore{db: db}
}

const findOrderSQL = `
SELECT id, department, workflow, due_date, has_required_assets
FROM orders
WHERE id = $1
`

func (r *OrderStore) FindByID(ctx context.Context, id uuid.UUID) (*commands.OrderSnapshot, error) {
	var (
		orderID    uuid.UUID
		department string
		workflow   string
		dueDate    pgtype.Timestamptz
		hasAssets  bool
	)
	err := r.db.QueryRow(ctx, findOrderSQL, id).
		Scan(&orderID, &department, &workflow, &dueDate, &hasAssets)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	return &commands.OrderSnapshot{
		ID:                orderID,
		Department:        department,
		Workflow:          workflow,
		DueDate:           pgconv.TimePtrFromPgtype(dueDate),
		HasRequiredAssets: hasAssets,
	}, nil
}

const setWorkflowSQL = `UPDATE orders SET workflow = $2, updated_at = now() WHERE id = $1`

func (r *OrderStore) SetWorkflow(ctx context.Context, orderID uuid.UUID, state string) error {
	tag, err := r.db.Exec(ctx, setWorkflowSQL, orderID, state)
	if err != nil {
		return infra.WrapRepoErr("failed to set order workflow", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
