package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/member-portal/backend/internal/domain/entity"
	domainerror "github.com/member-portal/backend/internal/domain/error"
)

type stubSessions struct {
	sessions map[string]*entity.Session
	expired  map[string]bool
}

func (s *stubSessions) Create(context.Context, entity.Identity) (*entity.Session, error) {
	return nil, nil
}

func (s *stubSessions) Validate(_ context.Context, id string) (*entity.Session, error) {
	if s.expired[id] {
		return nil, domainerror.ErrSessionExpired
	}
	session, ok := s.sessions[id]
	if !ok {
		return nil, domainerror.ErrSessionNotFound
	}
	return session, nil
}

func (s *stubSessions) Destroy(context.Context, string) error { return nil }

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stub := &stubSessions{
		sessions: map[string]*entity.Session{
			"live": {ID: "live", UserID: uuid.New(), Username: "alice", CSRFToken: "token-123"},
		},
		expired: map[string]bool{"stale": true},
	}
	m := NewSessionMiddleware(stub, CookieConfig{Name: "member_session"})

	engine := gin.New()
	ok := func(c *gin.Context) {
		username, _ := c.Get(string(UsernameKey))
		c.String(http.StatusOK, "hello %v", username)
	}
	engine.GET("/private", m.RequireSession(), ok)
	engine.POST("/private", m.RequireSession(), m.VerifyCSRF(), ok)
	engine.POST("/optional", m.OptionalSession(), m.VerifyCSRF(), ok)
	return engine
}

func TestSessionMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		cookie     string
		csrf       string
		wantStatus int
		wantCode   domainerror.AuthErrorCode
	}{
		{"no cookie", http.MethodGet, "/private", "", "", http.StatusUnauthorized, domainerror.ErrCodeMissingSession},
		{"unknown session", http.MethodGet, "/private", "forged", "", http.StatusUnauthorized, domainerror.ErrCodeInvalidSession},
		{"expired session", http.MethodGet, "/private", "stale", "", http.StatusUnauthorized, domainerror.ErrCodeExpiredSession},
		{"valid session read", http.MethodGet, "/private", "live", "", http.StatusOK, ""},
		{"write without csrf", http.MethodPost, "/private", "live", "", http.StatusForbidden, domainerror.ErrCodeInvalidCSRF},
		{"write with wrong csrf", http.MethodPost, "/private", "live", "token-999", http.StatusForbidden, domainerror.ErrCodeInvalidCSRF},
		{"write with csrf", http.MethodPost, "/private", "live", "token-123", http.StatusOK, ""},
		{"optional anonymous", http.MethodPost, "/optional", "", "", http.StatusOK, ""},
		{"optional stale cookie", http.MethodPost, "/optional", "stale", "", http.StatusOK, ""},
		{"optional live without csrf", http.MethodPost, "/optional", "live", "", http.StatusForbidden, domainerror.ErrCodeInvalidCSRF},
	}

	engine := newTestEngine(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "member_session", Value: tt.cookie})
			}
			if tt.csrf != "" {
				req.Header.Set(CSRFHeader, tt.csrf)
			}
			w := httptest.NewRecorder()

			engine.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantCode != "" && !strings.Contains(w.Body.String(), string(tt.wantCode)) {
				t.Errorf("expected code %s in body %s", tt.wantCode, w.Body.String())
			}
		})
	}
}

func TestSessionMiddleware_ClearsRejectedCookie(t *testing.T) {
	engine := newTestEngine(t)
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: "member_session", Value: "stale"})
	w := httptest.NewRecorder()

	engine.ServeHTTP(w, req)

	setCookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, "member_session=;") || !strings.Contains(setCookie, "Max-Age=0") {
		t.Errorf("expected cookie to be cleared, got %q", setCookie)
	}
}

func TestSetSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewSessionMiddleware(&stubSessions{}, CookieConfig{Name: "member_session", Secure: true})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	m.SetSessionCookie(c, &entity.Session{ID: "abc", CSRFToken: "tok"})

	setCookie := w.Header().Get("Set-Cookie")
	for _, attr := range []string{"member_session=abc", "HttpOnly", "Secure", "SameSite=Strict", "Path=/"} {
		if !strings.Contains(setCookie, attr) {
			t.Errorf("expected %q in %q", attr, setCookie)
		}
	}
	if w.Header().Get(CSRFHeader) != "tok" {
		t.Errorf("expected CSRF header, got %q", w.Header().Get(CSRFHeader))
	}
}
