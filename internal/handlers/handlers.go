package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler is a placeholder for dependencies for HTTP handlers.
// It currently does not hold state, but exists to keep methods organized.
type Handler struct{}

// New returns a new Handler instance.
func New() *Handler { return &Handler{} }

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
