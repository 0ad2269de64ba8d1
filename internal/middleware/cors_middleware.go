package middleware

import (
	"net/http"

	"notepad-ai/internal/config"

	"github.com/rs/cors"
)

// CORSMiddleware allows credentialed requests from the configured origins.
// Credentials are required because every bit of state travels in cookies.
func CORSMiddleware(cfg config.CORSConfig) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		AllowCredentials: true,
		MaxAge:           3600,
	})
	return c.Handler
}
