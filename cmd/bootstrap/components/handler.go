package components

import (
	"petconnect/internal/handler"
	"petconnect/internal/handler/api"
	"petconnect/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPetHandler,
		api.NewServiceHandler,
		api.NewAdoptionHandler,
		api.NewBookingHandler,
		api.NewNotificationHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	pet *api.PetHandler,
	service *api.ServiceHandler,
	adoption *api.AdoptionHandler,
	booking *api.BookingHandler,
	notification *api.NotificationHandler,
	user *api.UserHandler,
) handler.Handlers {
	return handler.Handlers{
		Pet:          pet,
		Service:      service,
		Adoption:     adoption,
		Booking:      booking,
		Notification: notification,
		User:         user,
	}
}
