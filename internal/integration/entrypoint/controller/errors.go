package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/member-portal/backend/internal/domain/error"
	"github.com/member-portal/backend/internal/integration/entrypoint/dto"
)

// handleAuthError writes coded auth errors with their HTTP status and hides
// everything else behind a generic 500.
func handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(statusForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	slog.Error("Request failed", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForAuthError maps auth error codes to HTTP status codes.
func statusForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeUsernameExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidPassword,
		domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields,
		domainerror.ErrCodePasswordMismatch,
		domainerror.ErrCodeFieldTooLong:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeUserNotFound,
		domainerror.ErrCodeInvalidSession,
		domainerror.ErrCodeExpiredSession,
		domainerror.ErrCodeMissingSession:
		return http.StatusUnauthorized
	case domainerror.ErrCodeInvalidCSRF:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
