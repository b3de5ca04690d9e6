package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jobportal/jobportal-go/internal/crypto"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	requestIDKey contextKey = "requestID"
)

// JWTAuth returns middleware that validates a Bearer token from the Authorization header
// and stores the authenticated user ID in the request context.
func JWTAuth(tokens *crypto.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "Authentication invalid")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || strings.TrimSpace(token) == "" {
				writeJSONError(w, http.StatusUnauthorized, "Authentication invalid")
				return
			}

			userID, err := tokens.Verify(strings.TrimSpace(token))
			if err != nil {
				if !errors.Is(err, crypto.ErrMissingToken) {
					slog.Debug("token rejected",
						slog.String("request_id", RequestIDFromContext(r.Context())),
						slog.String("error", err.Error()),
					)
				}
				writeJSONError(w, http.StatusUnauthorized, "Authentication invalid")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// WithUserID returns a copy of ctx carrying userID, as JWTAuth would store it.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": msg})
}
