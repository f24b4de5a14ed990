// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/member-portal/backend/internal/application/usecase/auth"
	domainerror "github.com/member-portal/backend/internal/domain/error"
	"github.com/member-portal/backend/internal/integration/entrypoint/dto"
	"github.com/member-portal/backend/internal/integration/entrypoint/middleware"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	registerUseCase *auth.RegisterUserUseCase
	loginUseCase    *auth.LoginUserUseCase
	logoutUseCase   *auth.LogoutUserUseCase
	sessions        *middleware.SessionMiddleware
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	registerUseCase *auth.RegisterUserUseCase,
	loginUseCase *auth.LoginUserUseCase,
	logoutUseCase *auth.LogoutUserUseCase,
	sessions *middleware.SessionMiddleware,
) *AuthController {
	return &AuthController{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		logoutUseCase:   logoutUseCase,
		sessions:        sessions,
	}
}

// Register handles POST /auth/register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), auth.RegisterUserInput{
		Username:        req.Username,
		Email:           req.Email,
		FullName:        req.FullName,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterResponse{
		User: dto.ToUserResponse(output.User),
	})
}

// PasswordRequirements handles GET /auth/password-requirements requests.
func (c *AuthController) PasswordRequirements(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.PasswordRequirementsResponse{
		Requirements: c.registerUseCase.PasswordRequirements(),
	})
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Username:          req.Username,
		Password:          req.Password,
		PreviousSessionID: c.sessions.SessionID(ctx),
	})
	if err != nil {
		handleAuthError(ctx, err)
		return
	}

	c.sessions.SetSessionCookie(ctx, output.Session)
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User:      dto.ToUserResponse(output.User),
		LoginTime: output.Session.LoginAt,
	})
}

// Session handles GET /auth/session requests. It reports the current session
// and re-issues its CSRF token.
func (c *AuthController) Session(ctx *gin.Context) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Login required",
			Code:  string(domainerror.ErrCodeMissingSession),
		})
		return
	}

	ctx.Header(middleware.CSRFHeader, session.CSRFToken)
	ctx.JSON(http.StatusOK, dto.SessionResponse{
		UserID:    session.UserID.String(),
		Username:  session.Username,
		LoginTime: session.LoginAt,
	})
}

// Logout handles POST /auth/logout requests. It succeeds with or without a session.
func (c *AuthController) Logout(ctx *gin.Context) {
	sessionID := c.sessions.SessionID(ctx)
	if session, ok := middleware.GetSessionFromContext(ctx); ok {
		sessionID = session.ID
	}

	output, err := c.logoutUseCase.Execute(ctx.Request.Context(), auth.LogoutUserInput{
		SessionID: sessionID,
	})
	if err != nil {
		handleAuthError(ctx, err)
		return
	}

	c.sessions.ClearSessionCookie(ctx)
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: output.Message,
	})
}
