package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/click2025-space/clickers-workspace/internal/config"
)

const userIDHeader = "X-User-Id"

// AuthInterceptorHTTP extracts the caller identity set by the platform
// gateway and stores it under config.KeyUUID. Requests without identity
// are rejected before reaching any handler.
func AuthInterceptorHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(userIDHeader))
		if userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "missing user identity"})
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoggerHTTP binds the service logger into the request context so handlers
// can pull it back with logger_lib.FromContext.
func LoggerHTTP(next http.Handler, logger *logger_lib.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyLogger, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
