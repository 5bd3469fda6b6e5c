package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dangal-ics/planner-backend/internal/config"
	"github.com/dangal-ics/planner-backend/internal/handler"
	"github.com/dangal-ics/planner-backend/internal/middleware"
	"github.com/dangal-ics/planner-backend/internal/response"
	"github.com/dangal-ics/planner-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Catalog *handler.CatalogHandler
	Planner *handler.PlannerHandler
	Media   *handler.MediaHandler
	WS      *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Serve uploaded profile pictures statically with aggressive caching (1 year).
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(31536000))
	{
		uploadsGroup.Static("/", cfg.UploadDir)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)

		// Authenticated profile routes
		auth.POST("/logout", middleware.RequireStudentJWT(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireStudentJWT(authService), handlers.Auth.Me)
	}

	// ─── 2. Catalog Group (Public, Read-Only) ──────────────────────────
	catalog := router.Group("/api/v1/catalog")
	{
		catalog.GET("/programs", handlers.Catalog.Programs)
		catalog.GET("/offerings", handlers.Catalog.Offerings)
		catalog.GET("/programs/:program/offerings", handlers.Catalog.ProgramOfferings)
		catalog.GET("/programs/:program/curriculum", handlers.Catalog.ProgramCurriculum)
	}

	// ─── 3. Student Group (JWT + Single Device) ────────────────────────
	studentAPI := router.Group("/api/v1/student")
	studentAPI.Use(
		middleware.RequireStudentJWT(authService),
		middleware.CheckSingleDeviceSession(authService),
	)
	{
		studentAPI.GET("/schedule", handlers.Planner.ActiveSchedule)
		studentAPI.GET("/schedule/calendar", handlers.Planner.Calendar)
		studentAPI.POST("/schedule/courses", handlers.Planner.AddCourse)
		studentAPI.DELETE("/schedule/courses/:code", handlers.Planner.RemoveCourse)

		studentAPI.GET("/schedules", handlers.Planner.ListSchedules)
		studentAPI.POST("/schedules", handlers.Planner.CreateSchedule)
		studentAPI.POST("/schedules/save-as", handlers.Planner.SaveScheduleAs)
		studentAPI.PUT("/schedules/active", handlers.Planner.SwitchSchedule)
		studentAPI.GET("/schedules/compare", handlers.Planner.CompareSchedules)
		studentAPI.DELETE("/schedules/:name", handlers.Planner.DeleteSchedule)

		studentAPI.PUT("/profile-picture", handlers.Media.UploadProfilePicture)
	}

	// ─── 4. WebSocket Group (Student WS Auth) ──────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireStudentWSAuth(authService))
	{
		ws.GET("/student/schedule/stream", handlers.WS.ScheduleStream)
	}

	return router
}
