package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"petconnect/internal/domain/user"
	"petconnect/internal/handler/api"
	"petconnect/internal/handler/middleware"
	"petconnect/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Pet          *api.PetHandler
	Service      *api.ServiceHandler
	Adoption     *api.AdoptionHandler
	Booking      *api.BookingHandler
	Notification *api.NotificationHandler
	User         *api.UserHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireShelter := authMiddleware.RequireRoleAtLeast(user.RoleShelter)

	apiGroup := engine.Group("/api")
	{
		pets := apiGroup.Group("/pets")
		{
			addRoutes(pets, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Pet.ListPets},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Pet.GetPet},
				{Method: http.MethodPost, Path: "", Handler: h.Pet.CreatePet, Mw: []gin.HandlerFunc{requireAuth, requireShelter}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Pet.UpdatePet, Mw: []gin.HandlerFunc{requireAuth, requireShelter}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Pet.DeletePet, Mw: []gin.HandlerFunc{requireAuth, requireShelter}},
				{Method: http.MethodPost, Path: "/:id/adoption-requests", Handler: h.Adoption.CreateRequest, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		services := apiGroup.Group("/services")
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Service.ListServices},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Service.GetService},
				{Method: http.MethodPost, Path: "", Handler: h.Service.CreateService, Mw: []gin.HandlerFunc{requireAuth, requireShelter}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Service.UpdateService, Mw: []gin.HandlerFunc{requireAuth, requireShelter}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Service.DeleteService, Mw: []gin.HandlerFunc{requireAuth, requireShelter}},
			})
		}

		requests := apiGroup.Group("/adoption-requests")
		requests.Use(requireAuth)
		{
			addRoutes(requests, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Adoption.ListMyRequests},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Adoption.GetRequest},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Adoption.Approve},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Adoption.Reject},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Adoption.Cancel},
				{Method: http.MethodPost, Path: "/:id/payment", Handler: h.Adoption.InitiatePayment},
				{Method: http.MethodGet, Path: "/:id/payment", Handler: h.Adoption.LookupPayment},
				{Method: http.MethodPost, Path: "/:id/payment/confirm", Handler: h.Adoption.ConfirmPayment},
				{Method: http.MethodPost, Path: "/:id/payment/fail", Handler: h.Adoption.FailPayment},
				{Method: http.MethodPost, Path: "/:id/delivery/start", Handler: h.Adoption.StartDelivery},
				{Method: http.MethodPost, Path: "/:id/delivery/complete", Handler: h.Adoption.CompleteDelivery},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMyBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Booking.Confirm},
				{Method: http.MethodPost, Path: "/:id/start", Handler: h.Booking.Start},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Booking.Complete},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
			})
		}

		shelter := apiGroup.Group("/shelter")
		shelter.Use(requireAuth, requireShelter)
		{
			addRoutes(shelter, []route{
				{Method: http.MethodGet, Path: "/pets", Handler: h.Pet.ListShelterPets},
				{Method: http.MethodGet, Path: "/services", Handler: h.Service.ListShelterServices},
				{Method: http.MethodGet, Path: "/adoption-requests", Handler: h.Adoption.ListShelterRequests},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListShelterBookings},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(requireAuth)
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Notification.ListNotifications},
				{Method: http.MethodGet, Path: "/unread-count", Handler: h.Notification.UnreadCount},
				{Method: http.MethodPost, Path: "/:id/read", Handler: h.Notification.MarkRead},
				{Method: http.MethodPost, Path: "/read-all", Handler: h.Notification.MarkAllRead},
			})
		}

		me := apiGroup.Group("/me")
		me.Use(requireAuth)
		{
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "", Handler: h.User.GetMe},
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
