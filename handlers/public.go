package handlers

import (
	"net/http"

	"food-order-api/middleware"

	"github.com/gin-gonic/gin"
)

// Index describes the service; when a session cookie resolves to a user it
// is included.
func (h *Handler) Index(c *gin.Context) {
	body := gin.H{
		"message": "Welcome to the Food Order API",
		"health":  "/health",
		"roles":   []string{"User", "Admin"},
	}
	if user, ok := middleware.CurrentUser(c); ok {
		body["user"] = user
	}
	c.JSON(http.StatusOK, body)
}

// Health reports whether the service and its database are up.
func (h *Handler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.log.WarnContext(c.Request.Context(), "health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Food Order API",
		"version": "1.0.0",
	})
}
