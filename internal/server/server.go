// Package server assembles the HTTP API.
package server

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/jayempx/vcard2qr/internal/handlers"
)

// Config holds server settings.
type Config struct {
	Addr string
}

// Server wraps the gin engine and its configuration.
type Server struct {
	cfg    Config
	engine *gin.Engine
}

// New builds the router: logging and recovery middleware plus the API routes.
func New(cfg Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	h := handlers.New()
	api := r.Group("/api")
	{
		api.POST("/vcard", h.VCardHandler)
		api.POST("/vcard/qr", h.QRCodeHandler)
	}
	r.GET("/healthz", h.Healthz)

	return &Server{cfg: cfg, engine: r}
}

// Start blocks serving HTTP on the configured address.
func (s *Server) Start() error {
	return s.engine.Run(s.cfg.Addr)
}

// Addr resolves the listen address: explicit value, then PORT env, then :8080.
func Addr(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}
