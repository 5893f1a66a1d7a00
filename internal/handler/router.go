package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"barber-booking/internal/handler/api"
	"barber-booking/internal/handler/middleware"
	"barber-booking/internal/pkg/config"
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
	availabilityHandler *api.AvailabilityHandler,
	appointmentHandler *api.AppointmentHandler,
	adminHandler *api.AdminHandler,
	authHandler *api.AuthHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, availabilityHandler, appointmentHandler, adminHandler, authHandler, authMiddleware, rateLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	availabilityHandler *api.AvailabilityHandler,
	appointmentHandler *api.AppointmentHandler,
	adminHandler *api.AdminHandler,
	authHandler *api.AuthHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		public := apiGroup.Group("")
		public.Use(rateLimiter.Limit())
		{
			addRoutes(public, []route{
				{Method: http.MethodPost, Path: "/availability", Handler: availabilityHandler.GetAvailability},
				{Method: http.MethodPost, Path: "/appointments", Handler: appointmentHandler.CreateAppointment},
				{Method: http.MethodGet, Path: "/appointments/:token", Handler: appointmentHandler.GetAppointment},
				{Method: http.MethodPost, Path: "/appointments/:token/cancel", Handler: appointmentHandler.CancelAppointment},
			})
		}

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/services", Handler: adminHandler.ListServices},
				{Method: http.MethodPost, Path: "/services", Handler: adminHandler.CreateService},
				{Method: http.MethodPut, Path: "/services/:id", Handler: adminHandler.UpdateService},
				{Method: http.MethodDelete, Path: "/services/:id", Handler: adminHandler.DeleteService},

				{Method: http.MethodGet, Path: "/work-hours", Handler: adminHandler.ListWorkHours},
				{Method: http.MethodPost, Path: "/work-hours", Handler: adminHandler.CreateWorkHour},
				{Method: http.MethodPut, Path: "/work-hours/:id", Handler: adminHandler.UpdateWorkHour},
				{Method: http.MethodDelete, Path: "/work-hours/:id", Handler: adminHandler.DeleteWorkHour},

				{Method: http.MethodGet, Path: "/vacations", Handler: adminHandler.ListVacations},
				{Method: http.MethodPost, Path: "/vacations", Handler: adminHandler.CreateVacation},
				{Method: http.MethodPut, Path: "/vacations/:id", Handler: adminHandler.UpdateVacation},
				{Method: http.MethodDelete, Path: "/vacations/:id", Handler: adminHandler.DeleteVacation},

				{Method: http.MethodGet, Path: "/appointments", Handler: adminHandler.ListAppointments},
				{Method: http.MethodPatch, Path: "/appointments/:id/status", Handler: adminHandler.UpdateAppointmentStatus},
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
