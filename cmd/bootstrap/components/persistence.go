package components

import (
	"petconnect/internal/infra/db"
	"petconnect/internal/infra/gateway"
	"petconnect/internal/infra/notify"
	"petconnect/internal/infra/readstore"
	"petconnect/internal/infra/uow"
	"petconnect/internal/pkg/config"
	"petconnect/internal/usecase/commands"
	"petconnect/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		NewPaymentGateway,
		notify.NewPoster,
	),
	readstoreModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewPetReadStore,
			fx.As(new(queries.PetReadStore)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		fx.Annotate(
			readstore.NewAdoptionRequestReadStore,
			fx.As(new(queries.AdoptionRequestReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewPaymentGateway(cfg config.Config) commands.PaymentGateway {
	return gateway.NewRazorpayGateway(cfg.Razorpay)
}
