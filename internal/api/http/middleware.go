package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"rentora-backend/internal/logger"
	"rentora-backend/internal/security"
)

type contextKey string

const ctxPrincipalID contextKey = "principal_id"

// PrincipalID returns the authenticated principal id set by AuthMiddleware.
func PrincipalID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxPrincipalID).(string); ok {
		return v
	}
	return ""
}

// AuthMiddleware validates the bearer token and injects the principal id
// into the request context. Token issuance happens elsewhere; this server
// only verifies.
func AuthMiddleware(tm security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSON(w, errorResponse{Error: "authorization token is not provided"}, http.StatusUnauthorized)
				return
			}

			token := authHeader
			if len(token) > 7 && strings.EqualFold(token[0:7], "BEARER ") {
				token = token[7:]
			}

			claims, err := tm.ValidateToken(token)
			if err != nil {
				writeJSON(w, errorResponse{Error: "invalid token"}, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ctxPrincipalID, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggingMiddleware logs each request with duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("request handled", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

// RecoveryMiddleware converts panics into 500 responses.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered", "method", r.Method, "path", r.URL.Path, "panic", rec)
				writeJSON(w, errorResponse{Error: "internal server error"}, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
