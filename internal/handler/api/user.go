package api

import (
	"errors"
	"net/http"

	resdto "petconnect/internal/handler/dto/response"
	"petconnect/internal/handler/middleware"
	"petconnect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	queries queries.UserQueries
}

func NewUserHandler(qs queries.UserQueries) *UserHandler {
	return &UserHandler{queries: qs}
}

// @Summary Get current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.queries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
