package queries

import (
	"context"
	"time"

	"planboard/internal/domain/schedule"
	"planboard/internal/infra"
	"planboard/internal/pkg/clock"
	"planboard/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrWorkCenterNotFound = errs.New("work center not found")
	ErrReadFailed         = errs.New("read query failed")
)

// ScheduleReadStore is the persistence port of the read side. Rows come back
// as flat views; lane layout and capacity are recomputed here on every read,
// there is no incrementally maintained cache.
type ScheduleReadStore interface {
	SlotsForDay(ctx context.Context, workCenterIDs []uuid.UUID, date time.Time) ([]*SlotView, error)
	WorkCenterByID(ctx context.Context, id uuid.UUID) (*WorkCenterView, error)
	WorkCentersByIDs(ctx context.Context, ids []uuid.UUID) ([]*WorkCenterView, error)
	ListWorkCenters(ctx context.Context, includeInactive bool) ([]*WorkCenterView, error)
}

type ScheduleQueries interface {
	// DayBoard is the planning page read model: per work center, the day's
	// slots with lanes assigned plus capacity usage.
	DayBoard(ctx context.Context, workCenterIDs []uuid.UUID, date time.Time) (*DayBoardView, error)
	Capacity(ctx context.Context, workCenterID uuid.UUID, date time.Time) (*CapacityView, error)
	// Today lists the real-work slots of one work center with elapsed
	// running minutes derived from started_at.
	Today(ctx context.Context, workCenterID uuid.UUID, date time.Time) ([]*TodaySlotView, error)
	ListWorkCenters(ctx context.Context, includeInactive bool) ([]*WorkCenterView, error)
}

type scheduleQueriesImpl struct {
	store ScheduleReadStore
	clock clock.Clock
}

func NewScheduleQueries(store ScheduleReadStore, clock clock.Clock) ScheduleQueries {
	return &scheduleQueriesImpl{store: store, clock: clock}
}

func (q *scheduleQueriesImpl) DayBoard(ctx context.Context, workCenterIDs []uuid.UUID, date time.Time) (*DayBoardView, error) {
	centers, err := q.store.WorkCentersByIDs(ctx, workCenterIDs)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}

	slots, err := q.store.SlotsForDay(ctx, workCenterIDs, date)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}

	byCenter := make(map[uuid.UUID][]*SlotView, len(centers))
	for _, s := range slots {
		byCenter[s.WorkCenterID] = append(byCenter[s.WorkCenterID], s)
	}

	board := &DayBoardView{Date: date, Centers: make([]*CenterDayView, 0, len(centers))}
	for _, wc := range centers {
		centerSlots := byCenter[wc.ID]
		applyLanes(centerSlots)
		board.Centers = append(board.Centers, &CenterDayView{
			WorkCenter: wc,
			Slots:      centerSlots,
			Usage:      usageFor(wc, date, centerSlots),
		})
	}
	return board, nil
}

func (q *scheduleQueriesImpl) Capacity(ctx context.Context, workCenterID uuid.UUID, date time.Time) (*CapacityView, error) {
	wc, err := q.store.WorkCenterByID(ctx, workCenterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWorkCenterNotFound
		}
		return nil, errs.Mark(err, ErrReadFailed)
	}

	slots, err := q.store.SlotsForDay(ctx, []uuid.UUID{workCenterID}, date)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return usageFor(wc, date, slots), nil
}

func (q *scheduleQueriesImpl) Today(ctx context.Context, workCenterID uuid.UUID, date time.Time) ([]*TodaySlotView, error) {
	if _, err := q.store.WorkCenterByID(ctx, workCenterID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWorkCenterNotFound
		}
		return nil, errs.Mark(err, ErrReadFailed)
	}

	slots, err := q.store.SlotsForDay(ctx, []uuid.UUID{workCenterID}, date)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}

	work := make([]*SlotView, 0, len(slots))
	for _, s := range slots {
		if !s.Blocked {
			work = append(work, s)
		}
	}
	applyLanes(work)

	now := q.clock.Now()
	out := make([]*TodaySlotView, len(work))
	for i, s := range work {
		out[i] = &TodaySlotView{SlotView: *s, ElapsedMin: schedule.ElapsedMinutes(s.StartedAt, s.StoppedAt, now)}
	}
	return out, nil
}

func (q *scheduleQueriesImpl) ListWorkCenters(ctx context.Context, includeInactive bool) ([]*WorkCenterView, error) {
	centers, err := q.store.ListWorkCenters(ctx, includeInactive)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return centers, nil
}

func applyLanes(slots []*SlotView) {
	spans := make([]schedule.Span, len(slots))
	index := make(map[uuid.UUID]*SlotView, len(slots))
	for i, s := range slots {
		spans[i] = schedule.Span{ID: s.ID, Interval: schedule.NewInterval(s.StartMin, s.LengthMin)}
		index[s.ID] = s
	}
	for _, ls := range schedule.AssignLanes(spans) {
		if s, ok := index[ls.ID]; ok {
			s.Lane = ls.Lane
			s.TotalLanes = ls.TotalLanes
		}
	}
}

func usageFor(wc *WorkCenterView, date time.Time, slots []*SlotView) *CapacityView {
	spans := make([]schedule.Span, len(slots))
	for i, s := range slots {
		spans[i] = schedule.Span{ID: s.ID, Interval: schedule.NewInterval(s.StartMin, s.LengthMin)}
	}
	u := schedule.ComputeUsage(wc.DailyCapacityMin, wc.ConcurrentCapacity, spans)
	return &CapacityView{
		WorkCenterID:    wc.ID,
		Date:            date,
		UsedMin:         u.UsedMin,
		CapacityMin:     u.CapacityMin,
		OverflowRatio:   u.OverflowRatio,
		PeakLanes:       u.PeakLanes,
		MinutesExceeded: u.MinutesExceeded,
		LanesExceeded:   u.LanesExceeded,
	}
}
