package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurobridge-education-mock/internal/config"
)

// NewServer wraps the router in an http.Server bound to the fixed listen address.
// Each connection is served on its own goroutine; a slow request body only
// holds its own handler.
func NewServer(cfg *config.Config, engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:              config.ListenAddr,
		Handler:           engine,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout.Duration,
		IdleTimeout:       cfg.HTTP.IdleTimeout.Duration,
	}
}
