package components

import (
	"planboard/internal/handler"
	"planboard/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewScheduleHandler,
		api.NewWorkCenterHandler,
		api.NewOrderHandler,
	),
	fx.Invoke(handler.NewRouter),
)
