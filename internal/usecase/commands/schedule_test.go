//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"planboard/internal/domain/schedule"
	"planboard/internal/domain/workcenter"
	"planboard/internal/infra"
	"planboard/internal/pkg/clock"
	"planboard/internal/pkg/errs"
	"planboard/internal/usecase/commands"
	commandsmock "planboard/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	slots       *commandsmock.MockSlotRepository
	workCenters *commandsmock.MockWorkCenterRepository
	orders      *commandsmock.MockOrderReads
	workflows   *commandsmock.MockOrderWorkflows
	clock       *clock.MockClock
	commands    commands.ScheduleCommands

	now time.Time
}

func (s *ScheduleCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.slots = commandsmock.NewMockSlotRepository(s.ctrl)
	s.workCenters = commandsmock.NewMockWorkCenterRepository(s.ctrl)
	s.orders = commandsmock.NewMockOrderReads(s.ctrl)
	s.workflows = commandsmock.NewMockOrderWorkflows(s.ctrl)
	s.now = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)
	s.commands = commands.NewScheduleCommands(
		s.slots, s.workCenters, s.orders, s.workflows,
		schedule.DefaultPlacementRules(), s.clock,
	)
}

func (s *ScheduleCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestScheduleCommandsSuite(t *testing.T) {
	suite.Run(t, new(ScheduleCommandsTestSuite))
}

func (s *ScheduleCommandsTestSuite) activeCenter(id uuid.UUID) *workcenter.WorkCenter {
	return workcenter.ReconstructWorkCenter(id, "CNC Mill 3", workcenter.DepartmentMachining, 600, 2, true)
}

func (s *ScheduleCommandsTestSuite) storedSlot(id uuid.UUID, status schedule.Status, version int64) *schedule.Slot {
	orderID := uuid.New()
	var startedAt *time.Time
	if status != schedule.StatusPlanned {
		t := s.now.Add(-30 * time.Minute)
		startedAt = &t
	}
	return schedule.ReconstructSlot(
		id, uuid.New(),
		time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		schedule.NewInterval(480, 60),
		&orderID, false, "",
		status, startedAt, nil, nil, nil, nil,
		version,
	)
}

func (s *ScheduleCommandsTestSuite) notFound() error {
	return infra.WrapRepoErr("no rows", errs.New("no rows"), infra.KindNotFound)
}

func (s *ScheduleCommandsTestSuite) TestCreateSlot() {
	centerID := uuid.New()
	orderID := uuid.New()
	params := commands.CreateSlotParams{
		WorkCenterID: centerID,
		Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartMin:     480,
		LengthMin:    60,
		OrderID:      &orderID,
	}

	s.Run("success", func() {
		s.workCenters.EXPECT().FindByID(gomock.Any(), centerID).Return(s.activeCenter(centerID), nil)
		s.orders.EXPECT().FindByID(gomock.Any(), orderID).Return(&commands.OrderSnapshot{ID: orderID}, nil)
		s.slots.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		view, err := s.commands.CreateSlot(context.Background(), params)
		s.Require().NoError(err)
		s.Equal(schedule.StatusPlanned.String(), view.Status)
		s.Equal(int64(1), view.Version)
		s.Equal(centerID, view.WorkCenterID)
	})

	s.Run("work center not found", func() {
		s.workCenters.EXPECT().FindByID(gomock.Any(), centerID).Return(nil, s.notFound())

		_, err := s.commands.CreateSlot(context.Background(), params)
		s.Require().ErrorIs(err, commands.ErrWorkCenterNotFound)
	})

	s.Run("inactive work center rejects placement", func() {
		inactive := workcenter.ReconstructWorkCenter(centerID, "Mothballed", workcenter.DepartmentMachining, 600, 2, false)
		s.workCenters.EXPECT().FindByID(gomock.Any(), centerID).Return(inactive, nil)

		_, err := s.commands.CreateSlot(context.Background(), params)
		s.Require().ErrorIs(err, commands.ErrWorkCenterInactive)
	})

	s.Run("order not found", func() {
		s.workCenters.EXPECT().FindByID(gomock.Any(), centerID).Return(s.activeCenter(centerID), nil)
		s.orders.EXPECT().FindByID(gomock.Any(), orderID).Return(nil, s.notFound())

		_, err := s.commands.CreateSlot(context.Background(), params)
		s.Require().ErrorIs(err, commands.ErrOrderNotFound)
	})

	s.Run("misaligned start is rejected before persistence", func() {
		s.workCenters.EXPECT().FindByID(gomock.Any(), centerID).Return(s.activeCenter(centerID), nil)
		s.orders.EXPECT().FindByID(gomock.Any(), orderID).Return(&commands.OrderSnapshot{ID: orderID}, nil)

		off := params
		off.StartMin = 483
		_, err := s.commands.CreateSlot(context.Background(), off)
		s.Require().ErrorIs(err, commands.ErrInvalidPlacement)
		s.Require().ErrorIs(err, schedule.ErrMisalignedGrid)
	})
}

func (s *ScheduleCommandsTestSuite) TestMoveSlot() {
	slotID := uuid.New()
	params := commands.MoveSlotParams{
		SlotID:   slotID,
		NewDate:  time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		StartMin: 600,
	}

	s.Run("success bumps the version", func() {
		stored := s.storedSlot(slotID, schedule.StatusPlanned, 3)
		s.slots.EXPECT().FindByID(gomock.Any(), slotID).Return(stored, nil)
		s.workCenters.EXPECT().FindByID(gomock.Any(), stored.WorkCenterID()).Return(s.activeCenter(stored.WorkCenterID()), nil)
		s.slots.EXPECT().Update(gomock.Any(), gomock.Any(), int64(3)).Return(int64(4), nil)

		view, err := s.commands.MoveSlot(context.Background(), params)
		s.Require().NoError(err)
		s.Equal(600, view.StartMin)
		s.Equal(int64(4), view.Version)
	})

	s.Run("stale client version is rejected without persisting", func() {
		s.slots.EXPECT().FindByID(gomock.Any(), slotID).Return(s.storedSlot(slotID, schedule.StatusPlanned, 3), nil)

		stale := params
		v := int64(2)
		stale.Version = &v
		_, err := s.commands.MoveSlot(context.Background(), stale)
		s.Require().ErrorIs(err, commands.ErrConcurrencyConflict)
	})

	s.Run("store level CAS miss maps to concurrency conflict", func() {
		stored := s.storedSlot(slotID, schedule.StatusPlanned, 3)
		s.slots.EXPECT().FindByID(gomock.Any(), slotID).Return(stored, nil)
		s.workCenters.EXPECT().FindByID(gomock.Any(), stored.WorkCenterID()).Return(s.activeCenter(stored.WorkCenterID()), nil)
		s.slots.EXPECT().Update(gomock.Any(), gomock.Any(), int64(3)).
			Return(int64(0), infra.WrapRepoErr("version changed", errs.New("conflict"), infra.KindConflict))

		_, err := s.commands.MoveSlot(context.Background(), params)
		s.Require().ErrorIs(err, commands.ErrConcurrencyConflict)
	})

	s.Run("invalid target placement", func() {
		stored := s.storedSlot(slotID, schedule.StatusPlanned, 3)
		s.slots.EXPECT().FindByID(gomock.Any(), slotID).Return(stored, nil)
		s.workCenters.EXPECT().FindByID(gomock.Any(), stored.WorkCenterID()).Return(s.activeCenter(stored.WorkCenterID()), nil)

		bad := params
		bad.StartMin = 1050
		_, err := s.commands.MoveSlot(context.Background(), bad)
		s.Require().ErrorIs(err, commands.ErrInvalidPlacement)
		s.Require().ErrorIs(err, schedule.ErrOutsideWorkingHours)
	})

	s.Run("inactive work center rejects the move target", func() {
		stored := s.storedSlot(slotID, schedule.StatusPlanned, 3)
		inactive := workcenter.ReconstructWorkCenter(stored.WorkCenterID(), "Mothballed", workcenter.DepartmentMachining, 600, 2, false)
		s.slots.EXPECT().FindByID(gomock.Any(), slotID).Return(stored, nil)
		s.workCenters.EXPECT().FindByID(gomock.Any(), stored.WorkCenterID()).Return(inactive, nil)

		_, err := s.commands.MoveSlot(context.Background(), params)
		s.Require().ErrorIs(err, commands.ErrWorkCenterInactive)
	})

	s.Run("slot past planning cannot be moved", func() {
		s.slots.EXPECT().FindByID(gomock.Any(), slotID).Return(s.storedSlot(slotID, schedule.StatusDone, 3), nil)

		_, err := s.commands.MoveSlot(context.Background(), params)
		s.Require().ErrorIs(err, commands.ErrSlotNotPlanned)
	})
}

func (s *ScheduleCommandsTestSuite) TestDeleteSlot() {
	slotID := uuid.New()

	s.Run("planned slot is deleted with its version", func() {
		s.slots.EXPECT().FindByID(gomock.Any(), slotID).Return(s.storedSlot(slotID, schedule.StatusPlanned, 2), nil)
		s.slots.EXPECT().Delete(gomock.Any(), slotID, int64(2)).Return(nil)

		s.Require().NoError(s.commands.DeleteSlot(context.Background(), slotID, nil))
	})

	s.Run("slot with lifecycle history is kept", func() {
		s.slots.EXPECT().FindByID(gomock.Any(), slotID).Return(s.storedSlot(slotID, schedule.StatusRunning, 2), nil)

		err := s.commands.DeleteSlot(context.Background(), slotID, nil)
		s.Require().ErrorIs(err, commands.ErrSlotHasHistory)
	})

	s.Run("missing slot", func() {
		s.slots.EXPECT().FindByID(gomock.Any(), slotID).Return(nil, s.notFound())

		err := s.commands.DeleteSlot(context.Background(), slotID, nil)
		s.Require().ErrorIs(err, commands.ErrSlotNotFound)
	})
}

func (s *ScheduleCommandsTestSuite) TestLifecycle() {
	slotID := uuid.New()

	s.Run("start stamps the clock time", func() {
		planned := s.storedSlot(slotID, schedule.StatusPlanned, 1)
		s.slots.EXPECT().FindByID(gomock.Any(), slotID).Return(planned, nil)
		s.slots.EXPECT().Update(gomock.Any(), gomock.Any(), int64(1)).Return(int64(2), nil)

		view, err := s.commands.Start(context.Background(), slotID, nil)
		s.Require().NoError(err)
		s.Equal(schedule.StatusRunning.String(), view.Status)
		s.Require().NotNil(view.StartedAt)
		s.Equal(s.now, *view.StartedAt)
		s.Equal(int64(2), view.Version)
	})

	s.Run("illegal transition is reported with from and to", func() {
		done := s.storedSlot(slotID, schedule.StatusDone, 2)
		s.slots.EXPECT().FindByID(gomock.Any(), slotID).Return(done, nil)

		_, err := s.commands.Start(context.Background(), slotID, nil)
		s.Require().ErrorIs(err, commands.ErrInvalidTransition)

		var ite *schedule.InvalidTransitionError
		s.Require().ErrorAs(err, &ite)
		s.Equal(schedule.StatusDone, ite.From)
		s.Equal(schedule.StatusRunning, ite.To)
	})

	s.Run("stop records the actual duration", func() {
		running := s.storedSlot(slotID, schedule.StatusRunning, 2)
		s.slots.EXPECT().FindByID(gomock.Any(), slotID).Return(running, nil)
		s.slots.EXPECT().Update(gomock.Any(), gomock.Any(), int64(2)).Return(int64(3), nil)

		view, err := s.commands.Stop(context.Background(), slotID, nil)
		s.Require().NoError(err)
		s.Equal(schedule.StatusDone.String(), view.Status)
		s.Require().NotNil(view.ActualDurationMin)
		s.Equal(30, *view.ActualDurationMin)
	})
}

func (s *ScheduleCommandsTestSuite) TestReportMissingParts() {
	slotID := uuid.New()
	params := commands.ProblemReportParams{
		SlotID:   slotID,
		Note:     "spindle bearing missing",
		Escalate: true,
	}

	s.Run("escalates the order after committing the slot", func() {
		running := s.storedSlot(slotID, schedule.StatusRunning, 2)
		orderID := *running.OrderID()
		s.slots.EXPECT().FindByID(gomock.Any(), slotID).Return(running, nil)
		s.slots.EXPECT().Update(gomock.Any(), gomock.Any(), int64(2)).Return(int64(3), nil)
		s.workflows.EXPECT().SetWorkflow(gomock.Any(), orderID, commands.WorkflowWaitingMissingParts).Return(nil)

		result, err := s.commands.ReportMissingParts(context.Background(), params)
		s.Require().NoError(err)
		s.False(result.EscalationFailed)
		s.Equal(schedule.StatusBlocked.String(), result.Slot.Status)
		s.Require().NotNil(result.Slot.MissingPartsNote)
		s.Equal("spindle bearing missing", *result.Slot.MissingPartsNote)
	})

	s.Run("failed escalation leaves the slot blocked", func() {
		running := s.storedSlot(slotID, schedule.StatusRunning, 2)
		s.slots.EXPECT().FindByID(gomock.Any(), slotID).Return(running, nil)
		s.slots.EXPECT().Update(gomock.Any(), gomock.Any(), int64(2)).Return(int64(3), nil)
		s.workflows.EXPECT().SetWorkflow(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errs.New("order service unreachable"))

		result, err := s.commands.ReportMissingParts(context.Background(), params)
		s.Require().NoError(err, "escalation failure must not fail the report")
		s.True(result.EscalationFailed)
		s.Equal(schedule.StatusBlocked.String(), result.Slot.Status)
		s.Equal(int64(3), result.Slot.Version)
	})

	s.Run("no escalation when not requested", func() {
		running := s.storedSlot(slotID, schedule.StatusRunning, 2)
		s.slots.EXPECT().FindByID(gomock.Any(), slotID).Return(running, nil)
		s.slots.EXPECT().Update(gomock.Any(), gomock.Any(), int64(2)).Return(int64(3), nil)

		quiet := params
		quiet.Escalate = false
		result, err := s.commands.ReportMissingParts(context.Background(), quiet)
		s.Require().NoError(err)
		s.False(result.EscalationFailed)
	})

	s.Run("rejected outside running", func() {
		planned := s.storedSlot(slotID, schedule.StatusPlanned, 1)
		s.slots.EXPECT().FindByID(gomock.Any(), slotID).Return(planned, nil)

		_, err := s.commands.ReportMissingParts(context.Background(), params)
		s.Require().ErrorIs(err, commands.ErrInvalidTransition)
	})
}

func (s *ScheduleCommandsTestSuite) TestReportQuality() {
	slotID := uuid.New()
	params := commands.ProblemReportParams{
		SlotID: slotID,
		Note:   "surface scratches",
	}

	s.Run("slot stays running", func() {
		running := s.storedSlot(slotID, schedule.StatusRunning, 2)
		s.slots.EXPECT().FindByID(gomock.Any(), slotID).Return(running, nil)
		s.slots.EXPECT().Update(gomock.Any(), gomock.Any(), int64(2)).Return(int64(3), nil)

		view, err := s.commands.ReportQuality(context.Background(), params)
		s.Require().NoError(err)
		s.Equal(schedule.StatusRunning.String(), view.Status)
		s.Require().NotNil(view.QualityNote)
		s.Equal("surface scratches", *view.QualityNote)
	})

	s.Run("empty note is a validation error", func() {
		running := s.storedSlot(slotID, schedule.StatusRunning, 2)
		s.slots.EXPECT().FindByID(gomock.Any(), slotID).Return(running, nil)

		blank := params
		blank.Note = "  "
		_, err := s.commands.ReportQuality(context.Background(), blank)
		s.Require().ErrorIs(err, schedule.ErrEmptyProblemNote)
	})
}
