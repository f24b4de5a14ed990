package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/member-portal/backend/internal/application/adapter"
	"github.com/member-portal/backend/internal/application/usecase/welcome"
	domainerror "github.com/member-portal/backend/internal/domain/error"
	"github.com/member-portal/backend/internal/integration/entrypoint/dto"
	"github.com/member-portal/backend/internal/integration/entrypoint/middleware"
)

// WelcomeController serves the personalized page shown after login.
type WelcomeController struct {
	getWelcomeUseCase *welcome.GetWelcomeUseCase
	sessionService    adapter.SessionService
	sessions          *middleware.SessionMiddleware
}

// NewWelcomeController creates a new welcome controller instance.
func NewWelcomeController(
	getWelcomeUseCase *welcome.GetWelcomeUseCase,
	sessionService adapter.SessionService,
	sessions *middleware.SessionMiddleware,
) *WelcomeController {
	return &WelcomeController{
		getWelcomeUseCase: getWelcomeUseCase,
		sessionService:    sessionService,
		sessions:          sessions,
	}
}

// Get handles GET /welcome requests.
func (c *WelcomeController) Get(ctx *gin.Context) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Login required",
			Code:  string(domainerror.ErrCodeMissingSession),
		})
		return
	}

	output, err := c.getWelcomeUseCase.Execute(ctx.Request.Context(), welcome.GetWelcomeInput{
		UserID:  session.UserID,
		LoginAt: session.LoginAt,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			// The account is gone; the session must not outlive it.
			if destroyErr := c.sessionService.Destroy(ctx.Request.Context(), session.ID); destroyErr != nil {
				slog.Warn("Failed to destroy orphaned session", "error", destroyErr)
			}
			c.sessions.ClearSessionCookie(ctx)
		}
		handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.WelcomeResponse{
		User:                  dto.ToUserResponse(output.User),
		TotalUsers:            output.TotalUsers,
		DaysSinceRegistration: output.DaysSinceRegistration,
		LoginTime:             output.LoginTime,
		CurrentTime:           output.CurrentTime,
	})
}
