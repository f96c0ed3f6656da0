package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sumaiya48/summer-camp-server/internal/config"
	"github.com/sumaiya48/summer-camp-server/internal/handler"
	"github.com/sumaiya48/summer-camp-server/internal/middleware"
	"github.com/sumaiya48/summer-camp-server/internal/model"
	"github.com/sumaiya48/summer-camp-server/internal/response"
	"github.com/sumaiya48/summer-camp-server/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Class      *handler.ClassHandler
	Selection  *handler.SelectionHandler
	Instructor *handler.InstructorHandler
	User       *handler.UserHandler
	Payment    *handler.PaymentHandler
}

// SetupRouter binds every route to its gate set. Each route requires zero,
// one, or two gates: the credential gate (bearer token present and valid)
// and a role gate (store lookup on every request).
func SetupRouter(
	authService *service.AuthService,
	userService *service.UserService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
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

	router.Use(response.RequestIDMiddleware())

	// ─── Gates ─────────────────────────────────────────────────────────
	credential := middleware.RequireToken(authService)
	admin := middleware.RequireRole(userService, model.RoleAdmin)
	instructor := middleware.RequireRole(userService, model.RoleInstructor)

	// Limiter for the two abuse-prone endpoints; disabled when the rate is 0.
	limited := func() []gin.HandlerFunc {
		if cfg.RateLimitPerMinute <= 0 {
			return nil
		}
		limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
		return []gin.HandlerFunc{limiter.Middleware()}
	}()

	// Liveness.
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "summer camp server is running")
	})
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── Tokens ────────────────────────────────────────────────────────
	router.POST("/jwt", append(limited, handlers.Auth.IssueToken)...)

	// ─── Payments ──────────────────────────────────────────────────────
	router.POST("/create-payment-intent", append(limited, credential, handlers.Payment.CreateIntent)...)
	router.POST("/payments", credential, handlers.Payment.Record)

	// ─── Classes ───────────────────────────────────────────────────────
	classes := router.Group("/classes")
	{
		classes.GET("", handlers.Class.ListApproved)
		classes.GET("/allClasses", credential, admin, handlers.Class.ListAll)
		classes.PATCH("/allClasses", credential, admin, handlers.Class.UpdateStatus)
		classes.PUT("/feedback/:id", credential, admin, handlers.Class.SetFeedback)
		classes.POST("/addClass", credential, instructor, handlers.Class.Create)
		classes.GET("/instructorClasses", credential, handlers.Class.ListByEmail)
		classes.DELETE("/instructorClasses/:id", credential, instructor, handlers.Class.Delete)

		classes.POST("/selected", credential, handlers.Selection.Create)
		classes.GET("/selected", credential, handlers.Selection.ListByEmail)
		classes.DELETE("/selected/:id", credential, handlers.Selection.Delete)
	}

	// ─── Instructors ───────────────────────────────────────────────────
	router.GET("/instructors", handlers.Instructor.List)

	// ─── Users ─────────────────────────────────────────────────────────
	users := router.Group("/users")
	{
		users.POST("", handlers.User.Create)
		users.GET("", credential, admin, handlers.User.List)
		users.GET("/role", credential, handlers.User.GetRole)
		users.GET("/details", credential, handlers.User.GetDetails)
		// Role updates are admin-gated; the ungated original left privilege
		// escalation open to anyone with the endpoint.
		users.PATCH("", credential, admin, handlers.User.UpdateRole)
	}

	return router
}
