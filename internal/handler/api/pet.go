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

type PetHandler struct {
	commands commands.PetCommands
	queries  queries.PetQueries
}

func NewPetHandler(cmds commands.PetCommands, qs queries.PetQueries) *PetHandler {
	return &PetHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary List available pets
// @Description Browse adoptable pets
// @Tags pets
// @Produce json
// @Success 200 {array} resdto.PetResponse
// @Router /pets [get]
func (h *PetHandler) ListPets(c *gin.Context) {
	views, err := h.queries.ListAvailable(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPetViews(views))
}

// @Summary Get pet
// @Tags pets
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} resdto.PetResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pets/{id} [get]
func (h *PetHandler) GetPet(c *gin.Context) {
	petID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), petID)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPetView(view))
}

// @Summary List shelter pets
// @Description All pets belonging to the authenticated shelter, including unavailable ones
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PetResponse
// @Failure 401 {object} map[string]string
// @Router /shelter/pets [get]
func (h *PetHandler) ListShelterPets(c *gin.Context) {
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

	c.JSON(http.StatusOK, resdto.FromPetViews(views))
}

// @Summary Create pet
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePetRequest true "Pet listing"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /pets [post]
func (h *PetHandler) CreatePet(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreatePetRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	in, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.commands.CreatePet(c.Request.Context(), actor, in)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: result.PetID})
}

// @Summary Update pet
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Param request body reqdto.UpdatePetRequest true "Fields to update"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /pets/{id} [patch]
func (h *PetHandler) UpdatePet(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	petID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdatePetRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.commands.UpdatePet(c.Request.Context(), actor, petID, req.ToInput()); err != nil {
		respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete pet
// @Description Remove a listing; blocked while adoption history references it
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /pets/{id} [delete]
func (h *PetHandler) DeletePet(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	petID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.commands.DeletePet(c.Request.Context(), actor, petID); err != nil {
		respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
