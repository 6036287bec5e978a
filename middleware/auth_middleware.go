package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
)

// APIKeyAuthMiddleware validates the caller's API key against the API_KEY
// environment variable. The key may arrive as a Bearer token in the
// Authorization header or in the X-API-Key header.
func APIKeyAuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expected := os.Getenv("API_KEY")
		if expected == "" {
			logger.Error("API_KEY environment variable is not set")
			http.Error(w, "Server configuration error", http.StatusInternalServerError)
			return
		}

		provided := providedKey(r)
		if provided == "" {
			logger.Error("API key missing from request", zap.String("path", r.URL.Path))
			http.Error(w, "API key required. Provide it in Authorization header (Bearer <key>) or X-API-Key header", http.StatusUnauthorized)
			return
		}
		if provided != expected {
			logger.Error("Invalid API key provided", zap.String("path", r.URL.Path))
			http.Error(w, "Invalid API key", http.StatusUnauthorized)
			return
		}

		next(w, r)
	}
}

func providedKey(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		parts := strings.Split(auth, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		if len(parts) == 1 {
			return parts[0]
		}
		return ""
	}
	return r.Header.Get("X-API-Key")
}
