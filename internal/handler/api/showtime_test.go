//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"cinepass/internal/domain/pricing"
	"cinepass/internal/handler/api"
	resdto "cinepass/internal/handler/dto/response"
	"cinepass/internal/pkg/jwt"
	"cinepass/internal/usecase/commands"
	"cinepass/internal/usecase/queries"
	"cinepass/tests/common/builder"
	"cinepass/tests/common/httptest"
	commandsmock "cinepass/tests/mock/commands"
	queriesmock "cinepass/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ShowtimeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockShowtimeCommands
	mockQueries  *queriesmock.MockSeatQueries
	handler      *api.ShowtimeHandler
}

func (s *ShowtimeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockShowtimeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSeatQueries(s.mockCtrl)
	s.handler = api.NewShowtimeHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Access token required"}})
			return
		}
		c.Set("customer_id", uuid.New())
		c.Set("customer_role", jwt.RoleAdmin)
		c.Next()
	}

	s.router.POST("/showtimes", authMiddleware, s.handler.RegisterShowtime)
	// Browsing routes are mounted without authentication.
	s.router.GET("/showtimes/:id", s.handler.GetShowtime)
	s.router.GET("/showtimes/:id/seats", s.handler.ListSeats)
}

func (s *ShowtimeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestShowtimeHandlerSuite(t *testing.T) {
	suite.Run(t, new(ShowtimeHandlerTestSuite))
}

func (s *ShowtimeHandlerTestSuite) TestRegisterShowtime() {
	url := "/showtimes"

	b := builder.NewShowtimeBuilder()
	reqBody := b.BuildRegisterRequestDTO()
	domainShowtime, err := b.BuildDomain()
	s.Require().NoError(err)

	s.Run("success: returns 201 Created with the generated seat map size", func() {
		s.mockCommands.EXPECT().RegisterShowtime(gomock.Any(), gomock.Any()).
			Return(domainShowtime, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ShowtimeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.ID)
		s.Equal(b.Capacity, body.Capacity)
	})

	s.Run("error: 409 Conflict when showtime already registered", func() {
		s.mockCommands.EXPECT().RegisterShowtime(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrShowtimeExists).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})

	s.Run("error: 400 Bad Request when showtime starts in the past", func() {
		s.mockCommands.EXPECT().RegisterShowtime(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrShowtimeInPast).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "past")
	})

	s.Run("error: 400 Bad Request when capacity is invalid", func() {
		s.mockCommands.EXPECT().RegisterShowtime(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidSeatMap).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid capacity")
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"capacity": "not-a-number"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *ShowtimeHandlerTestSuite) TestGetShowtime() {
	b := builder.NewShowtimeBuilder()
	view := b.BuildView()
	url := "/showtimes/" + b.ID.String()

	s.Run("success: returns 200 OK with showtime metadata", func() {
		s.mockQueries.EXPECT().GetShowtime(gomock.Any(), b.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.ShowtimeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.ID, body.ID)
		s.Equal(string(b.ScreenType), body.ScreenType)
	})

	s.Run("error: 404 Not Found for unknown showtime", func() {
		s.mockQueries.EXPECT().GetShowtime(gomock.Any(), b.ID).
			Return(nil, queries.ErrShowtimeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/showtimes/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid showtime ID")
	})
}

func (s *ShowtimeHandlerTestSuite) TestListSeats() {
	b := builder.NewShowtimeBuilder().With(func(b *builder.ShowtimeBuilder) {
		b.Capacity = 45
		b.ScreenType = pricing.ScreenType("IMAX")
	})
	seats := b.BuildSeatViews()
	url := "/showtimes/" + b.ID.String() + "/seats"

	s.Run("success: returns every seat with class and price", func() {
		s.mockQueries.EXPECT().ListSeats(gomock.Any(), b.ID).
			Return(seats, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []resdto.SeatResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 45)
		s.Equal("A1", body[0].ID)
		s.Equal("premium", body[0].Class)
		s.Equal(int32(2999), body[0].PriceCents)
	})

	s.Run("error: 404 Not Found for unknown showtime", func() {
		s.mockQueries.EXPECT().ListSeats(gomock.Any(), b.ID).
			Return(nil, queries.ErrShowtimeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}
