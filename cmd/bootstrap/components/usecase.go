package components

import (
	"beach-reserve/internal/domain/reservation"
	"beach-reserve/internal/pkg/clock"
	"beach-reserve/internal/pkg/config"
	"beach-reserve/internal/usecase/commands"
	"beach-reserve/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewReservationQueries,
		queries.NewCatalogQueries,
		queries.NewUserQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewDecisionCommands,
		commands.NewItemCommands,
		commands.NewProfileCommands,
	),
)

func NewReservationQueries(
	readStore queries.ReservationReadStore,
	policy reservation.Policy,
	clk clock.Clock,
	cfg config.Config,
) queries.ReservationQueries {
	return queries.NewReservationQueries(readStore, policy, clk, cfg.Reservation.CurrentTabSince)
}
