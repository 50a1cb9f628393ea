package readstore

import (
	"context"
	"errors"
	"time"

	"planboard/internal/infra"
	"planboard/internal/pkg/pgconv"
	"planboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ScheduleReadStore struct {
	db infra.DBTX
}

func NewScheduleReadStore(db infra.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: db}
}

const slotsForDaySQL = `
SELECT id, work_center_id, date, start_min, length_min,
	order_id, blocked, note, status,
	started_at, stopped_at, actual_duration_min,
	missing_parts_note, quality_note, version
FROM time_slots
WHERE work_center_id = ANY($1) AND date = $2
ORDER BY start_min, id
`

func (r *ScheduleReadStore) SlotsForDay(ctx context.Context, workCenterIDs []uuid.UUID, date time.Time) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx, slotsForDaySQL, workCenterIDs, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query slots for day", err)
	}
	defer rows.Close()

	var out []*queries.SlotView
	for rows.Next() {
		view, err := scanSlotView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		out = append(out, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("slot row iteration failed", err)
	}
	return out, nil
}

const workCenterViewSQL = `
SELECT id, name, department, daily_capacity_min, concurrent_capacity, active
FROM work_centers
`

func (r *ScheduleReadStore) WorkCenterByID(ctx context.Context, id uuid.UUID) (*queries.WorkCenterView, error) {
	row := r.db.QueryRow(ctx, workCenterViewSQL+`WHERE id = $1`, id)
	view, err := scanWorkCenterView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("work center not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find work center", err)
	}
	return view, nil
}

func (r *ScheduleReadStore) WorkCentersByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.WorkCenterView, error) {
	rows, err := r.db.Query(ctx, workCenterViewSQL+`WHERE id = ANY($1) ORDER BY name`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query work centers", err)
	}
	defer rows.Close()
	return collectWorkCenterViews(rows)
}

func (r *ScheduleReadStore) ListWorkCenters(ctx context.Context, includeInactive bool) ([]*queries.WorkCenterView, error) {
	sql := workCenterViewSQL
	if !includeInactive {
		sql += `WHERE active `
	}
	rows, err := r.db.Query(ctx, sql+`ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list work centers", err)
	}
	defer rows.Close()
	return collectWorkCenterViews(rows)
}

func collectWorkCenterViews(rows pgx.Rows) ([]*queries.WorkCenterView, error) {
	var out []*queries.WorkCenterView
	for rows.Next() {
		view, err := scanWorkCenterView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan work center row", err)
		}
		out = append(out, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("work center row iteration failed", err)
	}
	return out, nil
}

func scanSlotView(row pgx.Row) (*queries.SlotView, error) {
	var (
		v           queries.SlotView
		date        pgtype.Date
		orderID     pgtype.UUID
		startedAt   pgtype.Timestamptz
		stoppedAt   pgtype.Timestamptz
		actualMin   pgtype.Int4
		missingNote pgtype.Text
		qualityNote pgtype.Text
	)
	err := row.Scan(&v.ID, &v.WorkCenterID, &date, &v.StartMin, &v.LengthMin,
		&orderID, &v.Blocked, &v.Note, &v.Status,
		&startedAt, &stoppedAt, &actualMin, &missingNote, &qualityNote, &v.Version)
	if err != nil {
		return nil, err
	}

	v.Date = pgconv.DateFromPgtype(date)
	v.OrderID = pgconv.UUIDPtrFromPgtype(orderID)
	v.StartedAt = pgconv.TimePtrFromPgtype(startedAt)
	v.StoppedAt = pgconv.TimePtrFromPgtype(stoppedAt)
	v.ActualDurationMin = pgconv.IntPtrFromPgtype(actualMin)
	v.MissingPartsNote = pgconv.StringPtrFromPgtype(missingNote)
	v.QualityNote = pgconv.StringPtrFromPgtype(qualityNote)
	return &v, nil
}

func scanWorkCenterView(row pgx.Row) (*queries.WorkCenterView, error) {
	var v queries.WorkCenterView
	err := row.Scan(&v.ID, &v.Name, &v.Department, &v.DailyCapacityMin, &v.ConcurrentCapacity, &v.Active)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
