package repository

import (
	"context"
	"errors"

	"planboard/internal/domain/schedule"
	"planboard/internal/infra"
	"planboard/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type SlotRepository struct {
	db infra.DBTX
}

func NewSlotRepository(db infra.DBTX) *SlotRepository {
	return &SlotRepository{db: db}
}

const createSlotSQL = `
INSERT INTO time_slots (
	id, work_center_id, date, start_min, length_min,
	order_id, blocked, note, status,
	started_at, stopped_at, actual_duration_min,
	missing_parts_note, quality_note, version
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
`

func (r *SlotRepository) Create(ctx context.Context, slot *schedule.Slot) error {
	_, err := r.db.Exec(ctx, createSlotSQL,
		slot.ID(),
		slot.WorkCenterID(),
		pgconv.DateToPgtype(slot.Date()),
		slot.Interval().StartMin,
		slot.Interval().LengthMin,
		pgconv.UUIDPtrToPgtype(slot.OrderID()),
		slot.Blocked(),
		slot.Note(),
		slot.Status().String(),
		pgconv.TimePtrToPgtype(slot.StartedAt()),
		pgconv.TimePtrToPgtype(slot.StoppedAt()),
		pgconv.IntPtrToPgtype(slot.ActualDurationMin()),
		pgconv.StringPtrToPgtype(slot.MissingPartsNote()),
		pgconv.StringPtrToPgtype(slot.QualityNote()),
		slot.Version(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return infra.WrapRepoErr("slot references missing row", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create slot", err)
	}
	return nil
}

const findSlotSQL = `
SELECT id, work_center_id, date, start_min, length_min,
	order_id, blocked, note, status,
	started_at, stopped_at, actual_duration_min,
	missing_parts_note, quality_note, version
FROM time_slots
WHERE id = $1
`

func (r *SlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*schedule.Slot, error) {
	row := r.db.QueryRow(ctx, findSlotSQL, id)

	var (
		slotID       uuid.UUID
		workCenterID uuid.UUID
		date         pgtype.Date
		startMin     int
		lengthMin    int
		orderID      pgtype.UUID
		blocked      bool
		note         string
		status       string
		startedAt    pgtype.Timestamptz
		stoppedAt    pgtype.Timestamptz
		actualMin    pgtype.Int4
		missingNote  pgtype.Text
		qualityNote  pgtype.Text
		version      int64
	)
	err := row.Scan(&slotID, &workCenterID, &date, &startMin, &lengthMin,
		&orderID, &blocked, &note, &status,
		&startedAt, &stoppedAt, &actualMin, &missingNote, &qualityNote, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}

	return schedule.ReconstructSlot(
		slotID, workCenterID,
		pgconv.DateFromPgtype(date),
		schedule.NewInterval(startMin, lengthMin),
		pgconv.UUIDPtrFromPgtype(orderID),
		blocked,
		note,
		schedule.Status(status),
		pgconv.TimePtrFromPgtype(startedAt),
		pgconv.TimePtrFromPgtype(stoppedAt),
		pgconv.IntPtrFromPgtype(actualMin),
		pgconv.StringPtrFromPgtype(missingNote),
		pgconv.StringPtrFromPgtype(qualityNote),
		version,
	), nil
}

const updateSlotSQL = `
UPDATE time_slots SET
	date = $3, start_min = $4, length_min = $5,
	note = $6, status = $7,
	started_at = $8, stopped_at = $9, actual_duration_min = $10,
	missing_parts_note = $11, quality_note = $12,
	version = version + 1, updated_at = now()
WHERE id = $1 AND version = $2
`

// Update writes the slot back iff the stored version still matches
// expectedVersion and returns the new version. A missed compare-and-set is
// reported as KindConflict so callers can tell staleness from absence.
func (r *SlotRepository) Update(ctx context.Context, slot *schedule.Slot, expectedVersion int64) (int64, error) {
	tag, err := r.db.Exec(ctx, updateSlotSQL,
		slot.ID(),
		expectedVersion,
		pgconv.DateToPgtype(slot.Date()),
		slot.Interval().StartMin,
		slot.Interval().LengthMin,
		slot.Note(),
		slot.Status().String(),
		pgconv.TimePtrToPgtype(slot.StartedAt()),
		pgconv.TimePtrToPgtype(slot.StoppedAt()),
		pgconv.IntPtrToPgtype(slot.ActualDurationMin()),
		pgconv.StringPtrToPgtype(slot.MissingPartsNote()),
		pgconv.StringPtrToPgtype(slot.QualityNote()),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update slot", err)
	}
	if tag.RowsAffected() == 0 {
		return 0, r.casMiss(ctx, slot.ID(), "slot update")
	}
	return expectedVersion + 1, nil
}

const deleteSlotSQL = `DELETE FROM time_slots WHERE id = $1 AND version = $2`

func (r *SlotRepository) Delete(ctx context.Context, id uuid.UUID, expectedVersion int64) error {
	tag, err := r.db.Exec(ctx, deleteSlotSQL, id, expectedVersion)
	if err != nil {
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if tag.RowsAffected() == 0 {
		return r.casMiss(ctx, id, "slot delete")
	}
	return nil
}

// casMiss decides whether a zero-row write means the slot vanished or the
// caller's version went stale.
func (r *SlotRepository) casMiss(ctx context.Context, id uuid.UUID, op string) error {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM time_slots WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return infra.WrapRepoErr("failed to check slot existence after "+op, err)
	}
	if !exists {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr("slot version mismatch on "+op, nil, infra.KindConflict)
}
