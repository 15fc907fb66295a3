package api

import (
	"net/http"

	reqdto "petconnect/internal/handler/dto/request"
	resdto "petconnect/internal/handler/dto/response"
	"petconnect/internal/handler/middleware"
	"petconnect/internal/usecase/commands"
	"petconnect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	commands commands.ServiceCommands
	queries  queries.ServiceQueries
}

func NewServiceHandler(cmds commands.ServiceCommands, qs queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary List available services
// @Tags services
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	views, err := h.queries.ListAvailable(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Get service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	serviceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), serviceID)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary List shelter services
// @Tags services
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ServiceResponse
// @Failure 401 {object} map[string]string
// @Router /shelter/services [get]
func (h *ServiceHandler) ListShelterServices(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.queries.ListByShelter(c.Request.Context(), actor.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Service listing"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateServiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.commands.CreateService(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: result.ServiceID})
}

// @Summary Update service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Fields to update"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /services/{id} [patch]
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	serviceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateServiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.commands.UpdateService(c.Request.Context(), actor, serviceID, req.ToInput()); err != nil {
		respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete service
// @Description Remove a service; blocked while bookings reference it
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /services/{id} [delete]
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	serviceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.commands.DeleteService(c.Request.Context(), actor, serviceID); err != nil {
		respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
