//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"petconnect/internal/domain/user"
	"petconnect/internal/handler/api"
	"petconnect/internal/handler/middleware"
	resdto "petconnect/internal/handler/dto/response"
	"petconnect/internal/pkg/errs"
	"petconnect/internal/usecase/queries"
	"petconnect/tests/common/httptest"
	commandsmock "petconnect/tests/mock/commands"
	queriesmock "petconnect/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockNotificationCommands
	mockQueries  *queriesmock.MockNotificationQueries
	handler      *api.NotificationHandler
	userID       uuid.UUID
}

func (s *NotificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockNotificationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNotificationQueries(s.mockCtrl)
	s.handler = api.NewNotificationHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleAdopter)
		c.Next()
	}

	s.router.GET("/notifications", authMiddleware, s.handler.ListNotifications)
	s.router.GET("/notifications/unread-count", authMiddleware, s.handler.UnreadCount)
	s.router.POST("/notifications/:id/read", authMiddleware, s.handler.MarkRead)
	s.router.POST("/notifications/read-all", authMiddleware, s.handler.MarkAllRead)
}

func (s *NotificationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNotificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}

// ================================================================================
// TestListNotifications
// ================================================================================

func (s *NotificationHandlerTestSuite) TestListNotifications() {
	views := []*queries.NotificationView{
		{
			ID:        uuid.New(),
			Message:   "Your adoption request for Bruno has been approved!",
			Link:      "/adoption/my-requests/" + uuid.NewString(),
			IsRead:    false,
			CreatedAt: time.Now(),
		},
	}

	s.Run("success: returns 200 OK with default limit", func() {
		s.mockQueries.EXPECT().ListRecent(gomock.Any(), s.userID, 0).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications", nil, "bearer-token")

		var response []resdto.NotificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(views[0].Message, response[0].Message)
		s.False(response[0].IsRead)
	})

	s.Run("success: passes an explicit limit", func() {
		s.mockQueries.EXPECT().ListRecent(gomock.Any(), s.userID, 5).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications?limit=5", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications?limit=abc", nil, "bearer-token")
		httptest.AssertPublicErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: 500 Internal Server Error when query fails", func() {
		s.mockQueries.EXPECT().ListRecent(gomock.Any(), s.userID, 0).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications", nil, "bearer-token")
		httptest.AssertPublicErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestUnreadCount
// ================================================================================

func (s *NotificationHandlerTestSuite) TestUnreadCount() {
	s.Run("success: returns 200 OK with the unread count", func() {
		s.mockQueries.EXPECT().UnreadCount(gomock.Any(), s.userID).
			Return(int64(3), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications/unread-count", nil, "bearer-token")

		var response resdto.UnreadCountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(3), response.Count)
	})
}

// ================================================================================
// TestMarkRead
// ================================================================================

func (s *NotificationHandlerTestSuite) TestMarkRead() {
	notificationID := uuid.New()
	url := "/notifications/" + notificationID.String() + "/read"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().MarkRead(gomock.Any(), gomock.Any(), notificationID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 404 Not Found for someone else's notification", func() {
		s.mockCommands.EXPECT().MarkRead(gomock.Any(), gomock.Any(), notificationID).
			Return(errs.ErrNotificationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Notification not found")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications/invalid-uuid/read", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestMarkAllRead
// ================================================================================

func (s *NotificationHandlerTestSuite) TestMarkAllRead() {
	s.Run("success: returns 200 OK with the updated count", func() {
		s.mockCommands.EXPECT().MarkAllRead(gomock.Any(), gomock.Any()).
			Return(int64(4), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications/read-all", nil, "bearer-token")

		var response resdto.MarkAllReadResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(4), response.Updated)
	})

	s.Run("error: 500 Internal Server Error when the command fails", func() {
		s.mockCommands.EXPECT().MarkAllRead(gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications/read-all", nil, "bearer-token")
		httptest.AssertPublicErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
