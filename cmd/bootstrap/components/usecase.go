package components

import (
	"petconnect/internal/pkg/clock"
	"petconnect/internal/usecase"
	"petconnect/internal/usecase/commands"
	"petconnect/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAdoptionUseCase,
		commands.NewBookingUseCase,
		commands.NewPetUseCase,
		commands.NewServiceUseCase,
		commands.NewNotificationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAdoptionQueries,
		queries.NewBookingQueries,
		queries.NewPetQueries,
		queries.NewServiceQueries,
		queries.NewNotificationQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
