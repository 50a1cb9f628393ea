package repository

import (
	"context"
	"errors"

	"planboard/internal/domain/workcenter"
	"planboard/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type WorkCenterRepository struct {
	db infra.DBTX
}

func NewWorkCenterRepository(db infra.DBTX) *WorkCenterRepository {
	return &WorkCenterRepository{db: db}
}

const createWorkCenterSQL = `
INSERT INTO work_centers (id, name, department, daily_capacity_min, concurrent_capacity, active)
VALUES ($1, $2, $3, $4, $5, $6)
`

func (r *WorkCenterRepository) Create(ctx context.Context, wc *workcenter.WorkCenter) error {
	_, err := r.db.Exec(ctx, createWorkCenterSQL,
		wc.ID(), wc.Name(), wc.Department().String(),
		wc.DailyCapacityMin(), wc.ConcurrentCapacity(), wc.IsActive(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return infra.WrapRepoErr("work center name already taken", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create work center", err)
	}
	return nil
}

const findWorkCenterSQL = `
SELECT id, name, department, daily_capacity_min, concurrent_capacity, active
FROM work_centers
WHERE id = $1
`

func (r *WorkCenterRepository) FindByID(ctx context.Context, id uuid.UUID) (*workcenter.WorkCenter, error) {
	var (
		wcID       uuid.UUID
		name       string
		department string
		daily      int
		concurrent int
		active     bool
	)
	err := r.db.QueryRow(ctx, findWorkCenterSQL, id).
		Scan(&wcID, &name, &department, &daily, &concurrent, &active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("work center not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find work center by ID", err)
	}

	return workcenter.ReconstructWorkCenter(wcID, name, workcenter.Department(department), daily, concurrent, active), nil
}

const updateWorkCenterSQL = `
UPDATE work_centers SET
	name = $2, department = $3, daily_capacity_min = $4,
	concurrent_capacity = $5, active = $6, updated_at = now()
WHERE id = $1
`

func (r *WorkCenterRepository) Update(ctx context.Context, wc *workcenter.WorkCenter) error {
	tag, err := r.db.Exec(ctx, updateWorkCenterSQL,
		wc.ID(), wc.Name(), wc.Department().String(),
		wc.DailyCapacityMin(), wc.ConcurrentCapacity(), wc.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update work center", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("work center not found", nil, infra.KindNotFound)
	}
	return nil
}
