package api

import (
	"context"
	"net/http"

	reqdto "petconnect/internal/handler/dto/request"
	resdto "petconnect/internal/handler/dto/response"
	"petconnect/internal/handler/middleware"
	"petconnect/internal/usecase/commands"
	"petconnect/internal/usecase/queries"
	"petconnect/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qs queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create booking
// @Description Book a shelter service
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.commands.CreateBooking(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: result.BookingID})
}

// @Summary Confirm booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.commands.Confirm)
}

// @Summary Start booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/start [post]
func (h *BookingHandler) Start(c *gin.Context) {
	h.transition(c, h.commands.Start)
}

// @Summary Complete booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/complete [post]
func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, h.commands.Complete)
}

// @Summary Cancel booking
// @Description Adopter cancels a pending or confirmed booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.commands.Cancel)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	bookingID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, bookingID)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.queries.ListByAdopter(c.Request.Context(), actor.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List shelter bookings
// @Description Bookings for services belonging to the authenticated shelter
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /shelter/bookings [get]
func (h *BookingHandler) ListShelterBookings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var statusFilter *string
	if status := c.Query("status"); status != "" {
		statusFilter = &status
	}

	items, err := h.queries.ListByShelter(c.Request.Context(), actor.ID, statusFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) transition(c *gin.Context, fn func(ctx context.Context, actor shared.Actor, id uuid.UUID) error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	bookingID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := fn(c.Request.Context(), actor, bookingID); err != nil {
		respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
