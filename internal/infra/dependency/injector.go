// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/member-portal/backend/config"
	"github.com/member-portal/backend/internal/application/adapter"
	"github.com/member-portal/backend/internal/application/usecase/auth"
	"github.com/member-portal/backend/internal/application/usecase/welcome"
	"github.com/member-portal/backend/internal/infra/server/router"
	"github.com/member-portal/backend/internal/integration/adapters"
	"github.com/member-portal/backend/internal/integration/email"
	"github.com/member-portal/backend/internal/integration/email/templates"
	"github.com/member-portal/backend/internal/integration/entrypoint/controller"
	"github.com/member-portal/backend/internal/integration/entrypoint/middleware"
	"github.com/member-portal/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
	// EmailWorker is nil when email delivery is not configured.
	EmailWorker *email.Worker
}

// Options carries collaborators that differ between production and tests.
type Options struct {
	// EmailSender overrides the Resend client, enabling email even without an API key.
	EmailSender adapter.EmailSender
	// Clock overrides the time source of sessions and the welcome page.
	Clock func() time.Time
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, sessionStore adapter.SessionStore, opts Options) (*Injector, error) {
	userRepo := persistence.NewUserRepository(db)

	hasher, err := adapters.NewPasswordHasher(cfg.Password.BcryptCost)
	if err != nil {
		return nil, err
	}
	credentials := adapters.NewHashingPool(hasher, cfg.Password.HashConcurrency)
	policy := adapters.NewPasswordPolicy()
	timeouts := adapters.SessionTimeouts{
		Idle:        cfg.Session.IdleTimeout,
		MaxLifetime: cfg.Session.MaxLifetime,
	}
	sessionService := adapters.NewSessionService(sessionStore, timeouts)
	if opts.Clock != nil {
		sessionService = adapters.NewSessionServiceWithClock(sessionStore, timeouts, opts.Clock)
	}

	var emailService adapter.EmailService
	var emailWorker *email.Worker
	sender := opts.EmailSender
	if sender == nil && cfg.Email.ResendAPIKey != "" {
		client := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		if cfg.Email.ResendBaseURL != "" {
			if err := client.SetBaseURL(cfg.Email.ResendBaseURL); err != nil {
				return nil, err
			}
		}
		sender = client
	}
	if sender != nil {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to load email templates: %w", err)
		}
		queueRepo := persistence.NewEmailQueueRepository(db)
		emailService = email.NewService(queueRepo, cfg.Email.AppBaseURL)
		emailWorker = email.NewWorker(queueRepo, sender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
	}

	registerUseCase := auth.NewRegisterUserUseCase(userRepo, policy, credentials, emailService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, credentials, sessionService)
	logoutUseCase := auth.NewLogoutUserUseCase(sessionService)
	getWelcomeUseCase := welcome.NewGetWelcomeUseCase(userRepo)
	if opts.Clock != nil {
		getWelcomeUseCase.WithClock(opts.Clock)
	}

	sessionMiddleware := middleware.NewSessionMiddleware(sessionService, middleware.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.Secure,
	})

	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return sessionStore.Ping(ctx) == nil
		},
	)
	authController := controller.NewAuthController(registerUseCase, loginUseCase, logoutUseCase, sessionMiddleware)
	welcomeController := controller.NewWelcomeController(getWelcomeUseCase, sessionService, sessionMiddleware)

	r := router.NewRouter(cfg.CORS.AllowedOrigins, healthController, authController, welcomeController, sessionMiddleware)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
