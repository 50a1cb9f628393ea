//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"planboard/internal/handler/api"
	resdto "planboard/internal/handler/dto/response"
	"planboard/internal/usecase/commands"
	"planboard/internal/usecase/queries"
	"planboard/tests/common/builder"
	"planboard/tests/common/httptest"
	"planboard/tests/common/testutil"
	commandsmock "planboard/tests/mock/commands"
	queriesmock "planboard/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WorkCenterHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWorkCenterCommands
	mockQueries  *queriesmock.MockScheduleQueries
	handler      *api.WorkCenterHandler
}

func (s *WorkCenterHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWorkCenterCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	s.handler = api.NewWorkCenterHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/work-centers", s.handler.Create)
	s.router.GET("/work-centers", s.handler.List)
	s.router.PATCH("/work-centers/:id", s.handler.Update)
	s.router.GET("/work-centers/:id/capacity", s.handler.Capacity)
}

func (s *WorkCenterHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWorkCenterHandlerSuite(t *testing.T) {
	suite.Run(t, new(WorkCenterHandlerTestSuite))
}

func (s *WorkCenterHandlerTestSuite) TestCreate() {
	url := "/work-centers"
	b := builder.NewWorkCenterBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.WorkCenterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal("machining", body.Department)
	})

	s.Run("error: 400 on missing required fields", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing department", mutate: testutil.Field("department", nil)},
			{name: "zero daily capacity", mutate: testutil.Field("daily_capacity_min", 0)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "bad_request")
			})
		}
	})

	s.Run("error: 422 on invalid department", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidWorkCenter).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("department", "painting"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "invalid_work_center")
	})
}

func (s *WorkCenterHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/work-centers/" + id.String()

	s.Run("success: partial update forwards only the present fields", func() {
		view := builder.NewWorkCenterBuilder().BuildView()
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, p commands.UpdateWorkCenterParams) (*queries.WorkCenterView, error) {
				s.Require().NotNil(p.Active)
				s.False(*p.Active)
				s.Nil(p.Name)
				s.Nil(p.DailyCapacityMin)
				return view, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"active": false})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 on unknown work center", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrWorkCenterNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": "Lathe 1"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not_found")
	})
}

func (s *WorkCenterHandlerTestSuite) TestList() {
	s.Run("success: passes the include_inactive flag through", func() {
		views := []*queries.WorkCenterView{builder.NewWorkCenterBuilder().BuildView()}
		s.mockQueries.EXPECT().ListWorkCenters(gomock.Any(), true).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/work-centers?include_inactive=true", nil)

		var body []resdto.WorkCenterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
	})
}

func (s *WorkCenterHandlerTestSuite) TestCapacity() {
	id := uuid.New()

	s.Run("success: returns the capacity picture", func() {
		view := &queries.CapacityView{WorkCenterID: id, UsedMin: 180, CapacityMin: 600, PeakLanes: 2}
		s.mockQueries.EXPECT().Capacity(gomock.Any(), id, gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/work-centers/"+id.String()+"/capacity?date=2026-03-02", nil)

		var body resdto.CapacityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(180, body.UsedMin)
		s.Equal(2, body.PeakLanes)
	})

	s.Run("error: 400 on missing date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/work-centers/"+id.String()+"/capacity", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "bad_request")
	})
}
