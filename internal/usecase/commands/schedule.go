package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"planboard/internal/domain/schedule"
	"planboard/internal/infra"
	"planboard/internal/pkg/clock"
	"planboard/internal/pkg/errs"
	"planboard/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrWorkCenterNotFound  = errs.New("work center not found")
	ErrWorkCenterInactive  = errs.New("work center is inactive")
	ErrOrderNotFound       = errs.New("order not found")
	ErrSlotNotFound        = errs.New("slot not found")
	ErrInvalidPlacement    = errs.New("invalid slot placement")
	ErrInvalidTransition   = errs.New("invalid lifecycle transition")
	ErrSlotHasHistory      = errs.New("slot with lifecycle history cannot be deleted")
	ErrSlotNotPlanned      = errs.New("slot can only be moved while planned")
	ErrConcurrencyConflict = errs.New("slot was modified concurrently")
	ErrDatabaseOperation   = errs.New("database operation failed")
)

type CreateSlotParams struct {
	WorkCenterID uuid.UUID
	Date         time.Time
	StartMin     int
	LengthMin    int
	OrderID      *uuid.UUID
	Blocked      bool
	Note         string
}

type MoveSlotParams struct {
	SlotID   uuid.UUID
	NewDate  time.Time
	StartMin int
	// Version is the slot version the caller last saw; nil skips the
	// client-side staleness check and relies on the store CAS alone.
	Version *int64
}

type ProblemReportParams struct {
	SlotID   uuid.UUID
	Note     string
	Escalate bool
	Version  *int64
}

// ProblemReportResult separates the two observable effects of a
// missing-parts report: the slot transition (always decisive) and the order
// workflow escalation (best effort).
type ProblemReportResult struct {
	Slot             *queries.SlotView
	EscalationFailed bool
}

type ScheduleCommands interface {
	CreateSlot(ctx context.Context, p CreateSlotParams) (*queries.SlotView, error)
	MoveSlot(ctx context.Context, p MoveSlotParams) (*queries.SlotView, error)
	DeleteSlot(ctx context.Context, slotID uuid.UUID, version *int64) error
	Start(ctx context.Context, slotID uuid.UUID, version *int64) (*queries.SlotView, error)
	Pause(ctx context.Context, slotID uuid.UUID, version *int64) (*queries.SlotView, error)
	Stop(ctx context.Context, slotID uuid.UUID, version *int64) (*queries.SlotView, error)
	ReportMissingParts(ctx context.Context, p ProblemReportParams) (*ProblemReportResult, error)
	ReportQuality(ctx context.Context, p ProblemReportParams) (*queries.SlotView, error)
}

type scheduleCommandsImpl struct {
	slots       SlotRepository
	workCenters WorkCenterRepository
	orders      OrderReads
	workflows   OrderWorkflows
	rules       schedule.PlacementRules
	clock       clock.Clock
}

func NewScheduleCommands(
	slots SlotRepository,
	workCenters WorkCenterRepository,
	orders OrderReads,
	workflows OrderWorkflows,
	rules schedule.PlacementRules,
	clock clock.Clock,
) ScheduleCommands {
	return &scheduleCommandsImpl{
		slots:       slots,
		workCenters: workCenters,
		orders:      orders,
		workflows:   workflows,
		rules:       rules,
		clock:       clock,
	}
}

func (c *scheduleCommandsImpl) CreateSlot(ctx context.Context, p CreateSlotParams) (*queries.SlotView, error) {
	wc, err := c.workCenters.FindByID(ctx, p.WorkCenterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWorkCenterNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	if !wc.IsActive() {
		return nil, ErrWorkCenterInactive
	}

	if p.OrderID != nil {
		if _, err := c.orders.FindByID(ctx, *p.OrderID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrOrderNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperation)
		}
	}

	slot, err := schedule.NewSlot(
		c.rules,
		p.WorkCenterID,
		p.Date,
		schedule.NewInterval(p.StartMin, p.LengthMin),
		p.OrderID,
		p.Blocked,
		p.Note,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPlacement)
	}

	if err := c.slots.Create(ctx, slot); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return queries.SlotViewFromEntity(slot), nil
}

func (c *scheduleCommandsImpl) MoveSlot(ctx context.Context, p MoveSlotParams) (*queries.SlotView, error) {
	slot, err := c.loadSlot(ctx, p.SlotID, p.Version)
	if err != nil {
		return nil, err
	}
	if !slot.CanMove() {
		return nil, ErrSlotNotPlanned
	}

	// The target position is a new placement, so the same inactive-center
	// rule applies as on creation.
	wc, err := c.workCenters.FindByID(ctx, slot.WorkCenterID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWorkCenterNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	if !wc.IsActive() {
		return nil, ErrWorkCenterInactive
	}

	loaded := slot.Version()
	if err := slot.Move(c.rules, p.NewDate, p.StartMin); err != nil {
		return nil, errs.Mark(err, ErrInvalidPlacement)
	}
	newVersion, err := c.persist(ctx, slot, loaded)
	if err != nil {
		return nil, err
	}
	view := queries.SlotViewFromEntity(slot)
	view.Version = newVersion
	return view, nil
}

func (c *scheduleCommandsImpl) DeleteSlot(ctx context.Context, slotID uuid.UUID, version *int64) error {
	slot, err := c.loadSlot(ctx, slotID, version)
	if err != nil {
		return err
	}
	if !slot.CanDelete() {
		return ErrSlotHasHistory
	}

	if err := c.slots.Delete(ctx, slotID, slot.Version()); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrSlotNotFound
		case infra.IsKind(err, infra.KindConflict):
			return ErrConcurrencyConflict
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}

func (c *scheduleCommandsImpl) Start(ctx context.Context, slotID uuid.UUID, version *int64) (*queries.SlotView, error) {
	return c.transition(ctx, slotID, version, func(s *schedule.Slot) error {
		return s.Start(c.clock.Now())
	})
}

func (c *scheduleCommandsImpl) Pause(ctx context.Context, slotID uuid.UUID, version *int64) (*queries.SlotView, error) {
	return c.transition(ctx, slotID, version, func(s *schedule.Slot) error {
		return s.Pause()
	})
}

func (c *scheduleCommandsImpl) Stop(ctx context.Context, slotID uuid.UUID, version *int64) (*queries.SlotView, error) {
	return c.transition(ctx, slotID, version, func(s *schedule.Slot) error {
		return s.Stop(c.clock.Now())
	})
}

// ReportMissingParts commits the slot transition first and only then fires
// the order escalation. The two effects are separately observable and
// separately retriable; a failed escalation is a warning on the result, not
// a failure of the report.
func (c *scheduleCommandsImpl) ReportMissingParts(ctx context.Context, p ProblemReportParams) (*ProblemReportResult, error) {
	slot, err := c.loadSlot(ctx, p.SlotID, p.Version)
	if err != nil {
		return nil, err
	}

	loaded := slot.Version()
	if err := slot.ReportMissingParts(p.Note); err != nil {
		return nil, markTransitionErr(err)
	}
	newVersion, err := c.persist(ctx, slot, loaded)
	if err != nil {
		return nil, err
	}

	view := queries.SlotViewFromEntity(slot)
	view.Version = newVersion
	result := &ProblemReportResult{Slot: view}
	if p.Escalate && slot.OrderID() != nil {
		if err := c.workflows.SetWorkflow(ctx, *slot.OrderID(), WorkflowWaitingMissingParts); err != nil {
			slog.Warn("order workflow escalation failed",
				"slot_id", p.SlotID, "order_id", *slot.OrderID(), "error", err)
			result.EscalationFailed = true
		}
	}
	return result, nil
}

func (c *scheduleCommandsImpl) ReportQuality(ctx context.Context, p ProblemReportParams) (*queries.SlotView, error) {
	return c.transition(ctx, p.SlotID, p.Version, func(s *schedule.Slot) error {
		return s.ReportQuality(p.Note)
	})
}

func (c *scheduleCommandsImpl) transition(
	ctx context.Context,
	slotID uuid.UUID,
	version *int64,
	apply func(*schedule.Slot) error,
) (*queries.SlotView, error) {
	slot, err := c.loadSlot(ctx, slotID, version)
	if err != nil {
		return nil, err
	}

	loaded := slot.Version()
	if err := apply(slot); err != nil {
		return nil, markTransitionErr(err)
	}
	newVersion, err := c.persist(ctx, slot, loaded)
	if err != nil {
		return nil, err
	}
	view := queries.SlotViewFromEntity(slot)
	view.Version = newVersion
	return view, nil
}

func (c *scheduleCommandsImpl) loadSlot(ctx context.Context, slotID uuid.UUID, version *int64) (*schedule.Slot, error) {
	slot, err := c.slots.FindByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	if version != nil && *version != slot.Version() {
		return nil, ErrConcurrencyConflict
	}
	return slot, nil
}

func (c *scheduleCommandsImpl) persist(ctx context.Context, slot *schedule.Slot, expectedVersion int64) (int64, error) {
	newVersion, err := c.slots.Update(ctx, slot, expectedVersion)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return 0, ErrSlotNotFound
		case infra.IsKind(err, infra.KindConflict):
			return 0, ErrConcurrencyConflict
		}
		return 0, errs.Mark(err, ErrDatabaseOperation)
	}
	return newVersion, nil
}

func markTransitionErr(err error) error {
	if errors.Is(err, schedule.ErrEmptyProblemNote) {
		return errs.Mark(err, ErrInvalidPlacement)
	}
	return errs.Mark(err, ErrInvalidTransition)
}
