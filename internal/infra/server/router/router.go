// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/member-portal/backend/internal/integration/entrypoint/controller"
	"github.com/member-portal/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	allowedOrigins    []string
	healthController  *controller.HealthController
	authController    *controller.AuthController
	welcomeController *controller.WelcomeController
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	allowedOrigins []string,
	healthController *controller.HealthController,
	authController *controller.AuthController,
	welcomeController *controller.WelcomeController,
	sessionMiddleware *middleware.SessionMiddleware,
) *Router {
	return &Router{
		allowedOrigins:    allowedOrigins,
		healthController:  healthController,
		authController:    authController,
		welcomeController: welcomeController,
		sessionMiddleware: sessionMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Logger and recovery
	r.engine = gin.Default()
	r.engine.Use(cors.New(r.corsConfig()))

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// corsConfig allows credentialed requests from the configured origins and
// exposes the CSRF header to browser clients. No origins means same-origin only.
func (r *Router) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if len(r.allowedOrigins) > 0 {
		cfg.AllowOrigins = r.allowedOrigins
	} else {
		cfg.AllowOriginFunc = func(string) bool { return false }
	}
	cfg.AllowCredentials = true
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.CSRFHeader}
	cfg.ExposeHeaders = []string{middleware.CSRFHeader}
	return cfg
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.GET("/password-requirements", r.authController.PasswordRequirements)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout",
				r.sessionMiddleware.OptionalSession(),
				r.sessionMiddleware.VerifyCSRF(),
				r.authController.Logout,
			)
			auth.GET("/session", r.sessionMiddleware.RequireSession(), r.authController.Session)
		}

		protected := v1.Group("")
		protected.Use(r.sessionMiddleware.RequireSession(), r.sessionMiddleware.VerifyCSRF())
		{
			protected.GET("/welcome", r.welcomeController.Get)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
