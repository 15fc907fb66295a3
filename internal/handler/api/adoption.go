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

type AdoptionHandler struct {
	commands commands.AdoptionCommands
	queries  queries.AdoptionQueries
}

func NewAdoptionHandler(cmds commands.AdoptionCommands, qs queries.AdoptionQueries) *AdoptionHandler {
	return &AdoptionHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create adoption request
// @Description Request to adopt a pet
// @Tags adoption-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Param request body reqdto.CreateAdoptionRequest true "Adoption request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /pets/{id}/adoption-requests [post]
func (h *AdoptionHandler) CreateRequest(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	petID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.CreateAdoptionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.commands.CreateRequest(c.Request.Context(), actor, petID, req.TrimmedMessage())
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: result.RequestID})
}

// @Summary Approve adoption request
// @Description Approve a pending request; other pending requests for the pet are auto-rejected
// @Tags adoption-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /adoption-requests/{id}/approve [post]
func (h *AdoptionHandler) Approve(c *gin.Context) {
	h.transition(c, h.commands.Approve)
}

// @Summary Reject adoption request
// @Tags adoption-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /adoption-requests/{id}/reject [post]
func (h *AdoptionHandler) Reject(c *gin.Context) {
	h.transition(c, h.commands.Reject)
}

// @Summary Cancel adoption request
// @Description Adopter withdraws a pending or approved request
// @Tags adoption-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /adoption-requests/{id}/cancel [post]
func (h *AdoptionHandler) Cancel(c *gin.Context) {
	h.transition(c, h.commands.Cancel)
}

// @Summary Initiate payment
// @Description Open a payment order for an approved request
// @Tags adoption-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.PaymentOrderResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /adoption-requests/{id}/payment [post]
func (h *AdoptionHandler) InitiatePayment(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	requestID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.commands.InitiatePayment(c.Request.Context(), actor, requestID)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentOrder(order))
}

// @Summary Look up settled payment
// @Description Fetch the gateway's record of a settled payment for reconciliation
// @Tags adoption-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.PaymentDetailsResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /adoption-requests/{id}/payment [get]
func (h *AdoptionHandler) LookupPayment(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	requestID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	details, err := h.commands.LookupPayment(c.Request.Context(), actor, requestID)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentDetails(details))
}

// @Summary Confirm payment
// @Description Verify the checkout signature and settle the payment
// @Tags adoption-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.ConfirmPaymentRequest true "Checkout callback fields"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /adoption-requests/{id}/payment/confirm [post]
func (h *AdoptionHandler) ConfirmPayment(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	requestID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.ConfirmPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.commands.ConfirmPayment(c.Request.Context(), actor, requestID, req.ToInput()); err != nil {
		respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Mark payment failed
// @Description Record a failed checkout so payment can be retried
// @Tags adoption-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /adoption-requests/{id}/payment/fail [post]
func (h *AdoptionHandler) FailPayment(c *gin.Context) {
	h.transition(c, h.commands.FailPayment)
}

// @Summary Start delivery
// @Description Move a paid request into delivery
// @Tags adoption-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.StartDeliveryRequest true "Estimated delivery date"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /adoption-requests/{id}/delivery/start [post]
func (h *AdoptionHandler) StartDelivery(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	requestID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.StartDeliveryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.commands.StartDelivery(c.Request.Context(), actor, requestID, req.EstimatedDeliveryDate); err != nil {
		respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Complete delivery
// @Description Finish delivery and close out the adoption
// @Tags adoption-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.CompleteDeliveryRequest true "Actual delivery date and notes"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /adoption-requests/{id}/delivery/complete [post]
func (h *AdoptionHandler) CompleteDelivery(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	requestID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.CompleteDeliveryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.commands.CompleteDelivery(c.Request.Context(), actor, requestID, req.ActualDeliveryDate, req.DeliveryNotes); err != nil {
		respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get adoption request
// @Tags adoption-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.AdoptionRequestResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /adoption-requests/{id} [get]
func (h *AdoptionHandler) GetRequest(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	requestID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, requestID)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdoptionRequestView(view))
}

// @Summary List my adoption requests
// @Tags adoption-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AdoptionRequestListResponse
// @Failure 401 {object} map[string]string
// @Router /adoption-requests [get]
func (h *AdoptionHandler) ListMyRequests(c *gin.Context) {
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

	response := make([]*resdto.AdoptionRequestListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromAdoptionRequestListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List shelter adoption requests
// @Description Requests for pets belonging to the authenticated shelter
// @Tags adoption-requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {array} resdto.AdoptionRequestListResponse
// @Failure 401 {object} map[string]string
// @Router /shelter/adoption-requests [get]
func (h *AdoptionHandler) ListShelterRequests(c *gin.Context) {
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

	response := make([]*resdto.AdoptionRequestListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromAdoptionRequestListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdoptionHandler) transition(c *gin.Context, fn func(ctx context.Context, actor shared.Actor, id uuid.UUID) error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	requestID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := fn(c.Request.Context(), actor, requestID); err != nil {
		respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
