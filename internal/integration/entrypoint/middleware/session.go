// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/member-portal/backend/internal/application/adapter"
	"github.com/member-portal/backend/internal/domain/entity"
	domainerror "github.com/member-portal/backend/internal/domain/error"
	"github.com/member-portal/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// SessionKey is the context key for the validated *entity.Session.
	SessionKey ContextKey = "session"
	// UserIDKey is the context key for the authenticated user's ID.
	UserIDKey ContextKey = "user_id"
	// UsernameKey is the context key for the authenticated user's username.
	UsernameKey ContextKey = "username"
)

// CSRFHeader carries the per-session CSRF token in both directions.
const CSRFHeader = "X-CSRF-Token"

// CookieConfig controls the session cookie attributes.
type CookieConfig struct {
	Name   string
	Secure bool
}

// SessionMiddleware authenticates requests through the server-side session cookie.
type SessionMiddleware struct {
	sessions adapter.SessionService
	cookie   CookieConfig
}

// NewSessionMiddleware creates a new session middleware instance.
func NewSessionMiddleware(sessions adapter.SessionService, cookie CookieConfig) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		cookie:   cookie,
	}
}

// RequireSession rejects requests without a live session.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := m.SessionID(c)
		if sessionID == "" {
			abortUnauthorized(c, domainerror.ErrCodeMissingSession, "Login required")
			return
		}

		session, err := m.sessions.Validate(c.Request.Context(), sessionID)
		if err != nil {
			m.rejectSession(c, err)
			return
		}

		setSession(c, session)
		c.Next()
	}
}

// OptionalSession attaches the session when one is presented and valid, and
// otherwise lets the request through anonymously.
func (m *SessionMiddleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionID := m.SessionID(c); sessionID != "" {
			session, err := m.sessions.Validate(c.Request.Context(), sessionID)
			if err == nil {
				setSession(c, session)
			} else if !isSessionGone(err) {
				slog.Error("Failed to load session", "error", err)
			}
		}
		c.Next()
	}
}

// VerifyCSRF requires the session's CSRF token on state-changing requests.
// Requests without an attached session pass through.
func (m *SessionMiddleware) VerifyCSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSessionFromContext(c)
		if !ok || isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		received := c.GetHeader(CSRFHeader)
		if received == "" || subtle.ConstantTimeCompare([]byte(session.CSRFToken), []byte(received)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Invalid CSRF token",
				Code:  string(domainerror.ErrCodeInvalidCSRF),
			})
			return
		}
		c.Next()
	}
}

// SessionID returns the session ID presented by the client, if any.
func (m *SessionMiddleware) SessionID(c *gin.Context) string {
	id, err := c.Cookie(m.cookie.Name)
	if err != nil {
		return ""
	}
	return id
}

// SetSessionCookie issues the session cookie. It lives until the browser closes;
// the server enforces the actual timeouts.
func (m *SessionMiddleware) SetSessionCookie(c *gin.Context, session *entity.Session) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(m.cookie.Name, session.ID, 0, "/", "", m.cookie.Secure, true)
	c.Header(CSRFHeader, session.CSRFToken)
}

// ClearSessionCookie expires the session cookie on the client.
func (m *SessionMiddleware) ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(m.cookie.Name, "", -1, "/", "", m.cookie.Secure, true)
}

func (m *SessionMiddleware) rejectSession(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrSessionExpired):
		m.ClearSessionCookie(c)
		abortUnauthorized(c, domainerror.ErrCodeExpiredSession, "Session expired")
	case errors.Is(err, domainerror.ErrSessionNotFound):
		m.ClearSessionCookie(c)
		abortUnauthorized(c, domainerror.ErrCodeInvalidSession, "Invalid session")
	default:
		slog.Error("Failed to validate session", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func abortUnauthorized(c *gin.Context, code domainerror.AuthErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}

func setSession(c *gin.Context, session *entity.Session) {
	c.Set(string(SessionKey), session)
	c.Set(string(UserIDKey), session.UserID)
	c.Set(string(UsernameKey), session.Username)
}

func isSessionGone(err error) bool {
	return errors.Is(err, domainerror.ErrSessionNotFound) || errors.Is(err, domainerror.ErrSessionExpired)
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// GetSessionFromContext extracts the validated session from the Gin context.
func GetSessionFromContext(c *gin.Context) (*entity.Session, bool) {
	value, exists := c.Get(string(SessionKey))
	if !exists {
		return nil, false
	}
	session, ok := value.(*entity.Session)
	return session, ok
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}
