//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"cinepass/internal/handler/api"
	resdto "cinepass/internal/handler/dto/response"
	"cinepass/internal/pkg/jwt"
	"cinepass/internal/usecase/commands"
	"cinepass/tests/common/builder"
	"cinepass/tests/common/httptest"
	commandsmock "cinepass/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HoldHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockHoldCommands
	handler      *api.HoldHandler
	customerID   uuid.UUID
}

func (s *HoldHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.customerID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockHoldCommands(s.mockCtrl)
	s.handler = api.NewHoldHandler(s.mockCommands)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Access token required"}})
			return
		}
		c.Set("customer_id", s.customerID)
		c.Set("customer_role", jwt.RoleCustomer)
		c.Next()
	}

	s.router.POST("/showtimes/:id/holds", authMiddleware, s.handler.CreateHold)
	s.router.DELETE("/holds/:id", authMiddleware, s.handler.ReleaseHold)
}

func (s *HoldHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHoldHandlerSuite(t *testing.T) {
	suite.Run(t, new(HoldHandlerTestSuite))
}

func (s *HoldHandlerTestSuite) TestCreateHold() {
	b := builder.NewHoldBuilder()
	url := "/showtimes/" + b.ShowtimeID.String() + "/holds"
	reqBody := b.BuildCreateRequestDTO()
	domainHold := b.BuildDomain()

	s.Run("success: returns 201 Created with expiry", func() {
		s.mockCommands.EXPECT().CreateHold(gomock.Any(), b.ShowtimeID, s.customerID, b.SeatIDs).
			Return(domainHold, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.ID)
		s.Equal(b.SeatIDs, body.SeatIDs)
		s.False(body.ExpiresAt.IsZero())
	})

	errorCases := []struct {
		name       string
		commandErr error
		expectCode int
		expectMsg  string
	}{
		{"404 when showtime unknown", commands.ErrShowtimeNotFound, http.StatusNotFound, "Showtime not found"},
		{"404 when seat unknown", commands.ErrSeatNotFound, http.StatusNotFound, "Seat not found"},
		{"409 when seats contended", commands.ErrSeatUnavailable, http.StatusConflict, "no longer available"},
		{"400 when selection empty", commands.ErrEmptySelection, http.StatusBadRequest, "Invalid seat selection"},
		{"400 when selection too large", commands.ErrTooManySeats, http.StatusBadRequest, "Invalid seat selection"},
		{"400 when selection has duplicates", commands.ErrDuplicateSeat, http.StatusBadRequest, "Invalid seat selection"},
	}

	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().CreateHold(gomock.Any(), b.ShowtimeID, s.customerID, b.SeatIDs).
				Return(nil, tc.commandErr).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("error: 400 Bad Request when seat_ids missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 Bad Request for malformed showtime id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/showtimes/not-a-uuid/holds", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid showtime ID")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *HoldHandlerTestSuite) TestReleaseHold() {
	holdID := uuid.New()
	url := "/holds/" + holdID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().ReleaseHold(gomock.Any(), holdID, s.customerID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: releasing an unknown hold is idempotent", func() {
		s.mockCommands.EXPECT().ReleaseHold(gomock.Any(), holdID, s.customerID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden for another customer's hold", func() {
		s.mockCommands.EXPECT().ReleaseHold(gomock.Any(), holdID, s.customerID).
			Return(commands.ErrHoldOwnerMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another customer")
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/holds/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid hold ID")
	})
}
