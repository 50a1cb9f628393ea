package readstore

import (
	"context"

	"planboard/internal/infra"
	"planboard/internal/pkg/pgconv"
	"planboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadStore struct {
	db infra.DBTX
}

func NewOrderReadStore(db infra.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

const schedulableOrdersSQL = `
SELECT id, department, workflow, due_date, has_required_assets
FROM orders
WHERE workflow = ANY($1) AND ($2 = '' OR department = $2)
ORDER BY due_date NULLS LAST, id
`

func (r *OrderReadStore) FindSchedulable(ctx context.Context, department string, workflows []string) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx, schedulableOrdersSQL, workflows, department)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query schedulable orders", err)
	}
	defer rows.Close()

	var out []*queries.OrderView
	for rows.Next() {
		var (
			v       queries.OrderView
			dueDate pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.Department, &v.Workflow, &dueDate, &v.HasRequiredAssets); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		v.DueDate = pgconv.TimePtrFromPgtype(dueDate)
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("order row iteration failed", err)
	}
	return out, nil
}
