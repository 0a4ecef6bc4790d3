package components

import (
	"auction-engine/internal/pkg/clock"
	"auction-engine/internal/usecase"
	"auction-engine/internal/usecase/commands"
	"auction-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCategoryLookup,
		commands.NewFundUseCase,
		commands.NewLifecycleUseCase,
		// Bids extend through the lifecycle use case.
		func(l commands.LifecycleCommands) commands.Extender { return l },
		commands.NewBidUseCase,
		commands.NewReconcileUseCase,
		commands.NewRollbackUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSnapshotQueries,
		queries.NewRankingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
