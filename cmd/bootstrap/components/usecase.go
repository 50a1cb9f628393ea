package components

import (
	"planboard/internal/domain/schedule"
	"planboard/internal/pkg/clock"
	"planboard/internal/pkg/config"
	"planboard/internal/usecase/commands"
	"planboard/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) schedule.PlacementRules {
		return schedule.PlacementRules{
			WorkdayStartMin: cfg.Schedule.WorkdayStartMin,
			WorkdayEndMin:   cfg.Schedule.WorkdayEndMin,
			GridMin:         cfg.Schedule.GridMin,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewScheduleCommands,
		commands.NewWorkCenterCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewScheduleQueries,
		queries.NewOrderQueries,
	),
)
