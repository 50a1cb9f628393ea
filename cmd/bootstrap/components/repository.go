package components

import (
	"planboard/internal/infra"
	"planboard/internal/infra/readstore"
	repo_impl "planboard/internal/infra/repository"
	"planboard/internal/usecase/commands"
	"planboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewSlotRepository,
			fx.As(new(commands.SlotRepository)),
		),
		fx.Annotate(
			repo_impl.NewWorkCenterRepository,
			fx.As(new(commands.WorkCenterRepository)),
		),
		fx.Annotate(
			repo_impl.NewOrderStore,
			fx.As(new(commands.OrderReads)),
			fx.As(new(commands.OrderWorkflows)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}
