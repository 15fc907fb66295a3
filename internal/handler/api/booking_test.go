//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"petconnect/internal/domain/user"
	"petconnect/internal/handler/api"
	resdto "petconnect/internal/handler/dto/response"
	"petconnect/internal/pkg/errs"
	"petconnect/internal/usecase/commands"
	"petconnect/internal/usecase/queries"
	"petconnect/tests/common/builder"
	"petconnect/tests/common/httptest"
	"petconnect/tests/common/testutil"
	commandsmock "petconnect/tests/mock/commands"
	queriesmock "petconnect/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	actorID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleAdopter)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListMyBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.POST("/bookings/:id/confirm", authMiddleware, s.handler.Confirm)
	s.router.POST("/bookings/:id/start", authMiddleware, s.handler.Start)
	s.router.POST("/bookings/:id/complete", authMiddleware, s.handler.Complete)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.GET("/shelter/bookings", authMiddleware, s.handler.ListShelterBookings)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	bookingID := uuid.New()
	expectedResult := &commands.CreateBookingResult{BookingID: bookingID}

	s.Run("success: returns 201 Created with booking id", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(bookingID, response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		missing := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: service_id", mutate: testutil.Field("service_id", nil)},
			{name: "missing field: scheduled_at", mutate: testutil.Field("scheduled_at", nil)},
			{name: "malformed service_id", mutate: testutil.Field("service_id", "not-a-uuid")},
		}

		for _, tc := range missing {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "service not found",
				commandsError:  errs.ErrServiceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service not found",
			},
			{
				name:           "service not available",
				commandsError:  errs.ErrServiceNotAvailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not available",
			},
			{
				name:           "scheduling in the past",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *BookingHandlerTestSuite) TestTransitions() {
	bookingID := uuid.New()

	transitions := []struct {
		name   string
		path   string
		expect func() *gomock.Call
	}{
		{
			name: "confirm",
			path: "/bookings/" + bookingID.String() + "/confirm",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().Confirm(gomock.Any(), gomock.Any(), bookingID)
			},
		},
		{
			name: "start",
			path: "/bookings/" + bookingID.String() + "/start",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().Start(gomock.Any(), gomock.Any(), bookingID)
			},
		},
		{
			name: "complete",
			path: "/bookings/" + bookingID.String() + "/complete",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().Complete(gomock.Any(), gomock.Any(), bookingID)
			},
		},
		{
			name: "cancel",
			path: "/bookings/" + bookingID.String() + "/cancel",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), bookingID)
			},
		},
	}

	for _, tr := range transitions {
		s.Run(tr.name+": returns 204 No Content on success", func() {
			tr.expect().Return(nil).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, tr.path, nil, "bearer-token")
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
		})

		s.Run(tr.name+": maps forbidden to 403", func() {
			tr.expect().Return(errs.ErrForbidden).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, tr.path, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
		})

		s.Run(tr.name+": maps invalid transition to 409", func() {
			tr.expect().Return(errs.ErrInvalidTransition).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, tr.path, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not allowed in the current state")
		})

		s.Run(tr.name+": maps missing booking to 404", func() {
			tr.expect().Return(errs.ErrBookingNotFound).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, tr.path, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
		})
	}
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	returnView := builder.NewBookingBuilder().BuildView()
	returnView.ID = bookingID

	s.Run("success: returns 200 OK with booking details", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(returnView.ServiceName, response.ServiceName)
		s.Equal(returnView.Status, response.Status)
		s.Equal(returnView.PriceCents, response.PriceCents)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), bookingID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

// ================================================================================
// TestListMyBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListMyBookings() {
	url := "/bookings"

	item := builder.NewBookingBuilder()

	s.Run("success: returns 200 OK with the adopter's bookings", func() {
		s.mockQueries.EXPECT().ListByAdopter(gomock.Any(), s.actorID).
			Return([]*queries.BookingListItem{item.BuildListItem()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(item.ServiceName, response[0].ServiceName)
	})

	s.Run("error: 500 Internal Server Error when query fails", func() {
		s.mockQueries.EXPECT().ListByAdopter(gomock.Any(), s.actorID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestListShelterBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListShelterBookings() {
	url := "/shelter/bookings"

	item := builder.NewBookingBuilder()

	s.Run("success: passes the status filter through", func() {
		s.mockQueries.EXPECT().ListByShelter(gomock.Any(), s.actorID, gomock.Cond(func(f *string) bool {
			return f != nil && *f == "confirmed"
		})).Return([]*queries.BookingListItem{item.BuildListItem()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=confirmed", nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: no filter when status query is absent", func() {
		s.mockQueries.EXPECT().ListByShelter(gomock.Any(), s.actorID, nil).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
