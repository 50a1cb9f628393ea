//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"planboard/internal/infra"
	"planboard/internal/pkg/clock"
	"planboard/internal/pkg/errs"
	"planboard/internal/usecase/queries"
	queriesmock "planboard/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleQueriesTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *queriesmock.MockScheduleReadStore
	clock   *clock.MockClock
	queries queries.ScheduleQueries

	now  time.Time
	date time.Time
}

func (s *ScheduleQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockScheduleReadStore(s.ctrl)
	s.now = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	s.date = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)
	s.queries = queries.NewScheduleQueries(s.store, s.clock)
}

func (s *ScheduleQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestScheduleQueriesSuite(t *testing.T) {
	suite.Run(t, new(ScheduleQueriesTestSuite))
}

func (s *ScheduleQueriesTestSuite) centerView(id uuid.UUID) *queries.WorkCenterView {
	return &queries.WorkCenterView{
		ID:                 id,
		Name:               "CNC Mill 3",
		Department:         "machining",
		DailyCapacityMin:   600,
		ConcurrentCapacity: 2,
		Active:             true,
	}
}

func (s *ScheduleQueriesTestSuite) slotView(centerID uuid.UUID, startMin, lengthMin int) *queries.SlotView {
	return &queries.SlotView{
		ID:           uuid.New(),
		WorkCenterID: centerID,
		Date:         s.date,
		StartMin:     startMin,
		LengthMin:    lengthMin,
		Status:       "planned",
		Version:      1,
	}
}

func (s *ScheduleQueriesTestSuite) TestDayBoard() {
	centerID := uuid.New()
	ids := []uuid.UUID{centerID}

	s.Run("assigns lanes and computes usage per center", func() {
		slots := []*queries.SlotView{
			s.slotView(centerID, 480, 60),
			s.slotView(centerID, 500, 60),
			s.slotView(centerID, 560, 60),
		}
		s.store.EXPECT().WorkCentersByIDs(gomock.Any(), ids).Return([]*queries.WorkCenterView{s.centerView(centerID)}, nil)
		s.store.EXPECT().SlotsForDay(gomock.Any(), ids, s.date).Return(slots, nil)

		board, err := s.queries.DayBoard(context.Background(), ids, s.date)
		s.Require().NoError(err)
		s.Require().Len(board.Centers, 1)

		center := board.Centers[0]
		s.Require().Len(center.Slots, 3)
		s.Equal(0, center.Slots[0].Lane)
		s.Equal(1, center.Slots[1].Lane)
		s.Equal(0, center.Slots[2].Lane, "third slot reuses the freed first lane")
		for _, sv := range center.Slots {
			s.Equal(2, sv.TotalLanes)
		}

		s.Equal(180, center.Usage.UsedMin)
		s.Equal(2, center.Usage.PeakLanes)
		s.False(center.Usage.MinutesExceeded)
		s.False(center.Usage.LanesExceeded)
	})

	s.Run("centers without slots appear with empty usage", func() {
		s.store.EXPECT().WorkCentersByIDs(gomock.Any(), ids).Return([]*queries.WorkCenterView{s.centerView(centerID)}, nil)
		s.store.EXPECT().SlotsForDay(gomock.Any(), ids, s.date).Return(nil, nil)

		board, err := s.queries.DayBoard(context.Background(), ids, s.date)
		s.Require().NoError(err)
		s.Require().Len(board.Centers, 1)
		s.Empty(board.Centers[0].Slots)
		s.Equal(0, board.Centers[0].Usage.UsedMin)
	})

	s.Run("store failure", func() {
		s.store.EXPECT().WorkCentersByIDs(gomock.Any(), ids).Return(nil, errs.New("connection refused"))

		_, err := s.queries.DayBoard(context.Background(), ids, s.date)
		s.Require().ErrorIs(err, queries.ErrReadFailed)
	})
}

func (s *ScheduleQueriesTestSuite) TestCapacity() {
	centerID := uuid.New()

	s.Run("flags a lane overflow", func() {
		slots := []*queries.SlotView{
			s.slotView(centerID, 480, 60),
			s.slotView(centerID, 490, 60),
			s.slotView(centerID, 500, 60),
		}
		s.store.EXPECT().WorkCenterByID(gomock.Any(), centerID).Return(s.centerView(centerID), nil)
		s.store.EXPECT().SlotsForDay(gomock.Any(), []uuid.UUID{centerID}, s.date).Return(slots, nil)

		view, err := s.queries.Capacity(context.Background(), centerID, s.date)
		s.Require().NoError(err)
		s.Equal(3, view.PeakLanes)
		s.True(view.LanesExceeded)
		s.False(view.MinutesExceeded)
	})

	s.Run("unknown work center", func() {
		s.store.EXPECT().WorkCenterByID(gomock.Any(), centerID).
			Return(nil, infra.WrapRepoErr("no rows", errs.New("no rows"), infra.KindNotFound))

		_, err := s.queries.Capacity(context.Background(), centerID, s.date)
		s.Require().ErrorIs(err, queries.ErrWorkCenterNotFound)
	})
}

func (s *ScheduleQueriesTestSuite) TestToday() {
	centerID := uuid.New()

	s.Run("filters blockers and derives elapsed minutes", func() {
		startedAt := s.now.Add(-25 * time.Minute)
		running := s.slotView(centerID, 480, 60)
		running.Status = "running"
		running.StartedAt = &startedAt

		blocker := s.slotView(centerID, 600, 60)
		blocker.Blocked = true

		doneStart := s.now.Add(-60 * time.Minute)
		doneStop := s.now.Add(-12*time.Minute - 20*time.Second)
		done := s.slotView(centerID, 560, 60)
		done.Status = "done"
		done.StartedAt = &doneStart
		done.StoppedAt = &doneStop

		planned := s.slotView(centerID, 700, 60)

		s.store.EXPECT().WorkCenterByID(gomock.Any(), centerID).Return(s.centerView(centerID), nil)
		s.store.EXPECT().SlotsForDay(gomock.Any(), []uuid.UUID{centerID}, s.date).
			Return([]*queries.SlotView{running, blocker, done, planned}, nil)

		out, err := s.queries.Today(context.Background(), centerID, s.date)
		s.Require().NoError(err)
		s.Require().Len(out, 3, "blockers are not production work")

		s.Equal(running.ID, out[0].ID)
		s.Equal(25, out[0].ElapsedMin)
		s.Equal(done.ID, out[1].ID)
		s.Equal(48, out[1].ElapsedMin, "elapsed freezes at stop and rounds to the nearest minute")
		s.Equal(planned.ID, out[2].ID)
		s.Equal(0, out[2].ElapsedMin)
	})

	s.Run("unknown work center", func() {
		s.store.EXPECT().WorkCenterByID(gomock.Any(), centerID).
			Return(nil, infra.WrapRepoErr("no rows", errs.New("no rows"), infra.KindNotFound))

		_, err := s.queries.Today(context.Background(), centerID, s.date)
		s.Require().ErrorIs(err, queries.ErrWorkCenterNotFound)
	})
}
