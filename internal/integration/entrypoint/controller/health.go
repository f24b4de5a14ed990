package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/member-portal/backend/internal/integration/entrypoint/dto"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker      func() bool
	sessionHealthChecker func() bool
}

// NewHealthController creates a new health controller instance.
// Either checker may be nil, which reports the dependency as disconnected.
func NewHealthController(dbHealthChecker, sessionHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker:      dbHealthChecker,
		sessionHealthChecker: sessionHealthChecker,
	}
}

// Check handles GET /health requests.
func (h *HealthController) Check(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Database:  connectionStatus(h.dbHealthChecker),
		Sessions:  connectionStatus(h.sessionHealthChecker),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func connectionStatus(check func() bool) string {
	if check != nil && check() {
		return "connected"
	}
	return "disconnected"
}
