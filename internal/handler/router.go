package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"planboard/internal/handler/api"
	"planboard/internal/handler/middleware"
	"planboard/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, scheduleHandler *api.ScheduleHandler, workCenterHandler *api.WorkCenterHandler, orderHandler *api.OrderHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, scheduleHandler, workCenterHandler, orderHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, scheduleHandler *api.ScheduleHandler, workCenterHandler *api.WorkCenterHandler, orderHandler *api.OrderHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		slots := apiGroup.Group("/slots")
		{
			addRoutes(slots, []route{
				{Method: http.MethodPost, Path: "", Handler: scheduleHandler.CreateSlot},
				{Method: http.MethodPatch, Path: "/:id/move", Handler: scheduleHandler.MoveSlot},
				{Method: http.MethodDelete, Path: "/:id", Handler: scheduleHandler.DeleteSlot},
				{Method: http.MethodPost, Path: "/:id/start", Handler: scheduleHandler.StartSlot},
				{Method: http.MethodPost, Path: "/:id/pause", Handler: scheduleHandler.PauseSlot},
				{Method: http.MethodPost, Path: "/:id/stop", Handler: scheduleHandler.StopSlot},
				{Method: http.MethodPost, Path: "/:id/problems", Handler: scheduleHandler.ReportProblem},
			})
		}

		schedule := apiGroup.Group("/schedule")
		{
			addRoutes(schedule, []route{
				{Method: http.MethodGet, Path: "/day", Handler: scheduleHandler.DayBoard},
				{Method: http.MethodGet, Path: "/today", Handler: scheduleHandler.Today},
			})
		}

		workCenters := apiGroup.Group("/work-centers")
		{
			addRoutes(workCenters, []route{
				{Method: http.MethodPost, Path: "", Handler: workCenterHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: workCenterHandler.List},
				{Method: http.MethodPatch, Path: "/:id", Handler: workCenterHandler.Update},
				{Method: http.MethodGet, Path: "/:id/capacity", Handler: workCenterHandler.Capacity},
			})
		}

		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "/schedulable", Handler: orderHandler.Schedulable},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
