package api

import (
	"net/http"
	"strconv"

	resdto "petconnect/internal/handler/dto/response"
	"petconnect/internal/handler/httperr"
	"petconnect/internal/handler/middleware"
	"petconnect/internal/pkg/errs"
	"petconnect/internal/usecase/commands"
	"petconnect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	commands commands.NotificationCommands
	queries  queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, qs queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary List notifications
// @Description Recent notifications for the authenticated user, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum notifications to return (default 20)"
// @Success 200 {array} resdto.NotificationResponse
// @Failure 401 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing from context"), "Internal server error", nil)
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	views, err := h.queries.ListRecent(c.Request.Context(), actor.ID, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromNotificationViews(views))
}

// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UnreadCountResponse
// @Failure 401 {object} map[string]string
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing from context"), "Internal server error", nil)
		return
	}

	count, err := h.queries.UnreadCount(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.UnreadCountResponse{Count: count})
}

// @Summary Mark notification read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing from context"), "Internal server error", nil)
		return
	}

	notificationID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.commands.MarkRead(c.Request.Context(), actor, notificationID); err != nil {
		respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MarkAllReadResponse
// @Failure 401 {object} map[string]string
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing from context"), "Internal server error", nil)
		return
	}

	updated, err := h.commands.MarkAllRead(c.Request.Context(), actor)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.MarkAllReadResponse{Updated: updated})
}
