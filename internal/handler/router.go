package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cinepass/internal/handler/api"
	"cinepass/internal/handler/middleware"
	"cinepass/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	rdb *redis.Client,
	showtimeHandler *api.ShowtimeHandler,
	holdHandler *api.HoldHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, rdb)
	setupRoutes(engine, showtimeHandler, holdHandler, bookingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, rdb *redis.Client) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.NewRateLimitMiddleware(cfg.RateLimit, rdb))
}

func setupRoutes(
	engine *gin.Engine,
	showtimeHandler *api.ShowtimeHandler,
	holdHandler *api.HoldHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Seat browsing needs no account; everything that mutates does.
		showtimes := apiGroup.Group("/showtimes")
		{
			addRoutes(showtimes, []route{
				{Method: http.MethodPost, Path: "", Handler: showtimeHandler.RegisterShowtime, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireAdmin()}},
				{Method: http.MethodGet, Path: "/:id", Handler: showtimeHandler.GetShowtime},
				{Method: http.MethodGet, Path: "/:id/seats", Handler: showtimeHandler.ListSeats},
				{Method: http.MethodPost, Path: "/:id/holds", Handler: holdHandler.CreateHold, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
			})
		}

		holds := apiGroup.Group("/holds")
		holds.Use(authMiddleware.RequireAuth())
		{
			addRoutes(holds, []route{
				{Method: http.MethodDelete, Path: "/:id", Handler: holdHandler.ReleaseHold},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: bookingHandler.ConfirmBooking},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
