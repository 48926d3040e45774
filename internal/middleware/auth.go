package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shariqrahman/Products-Management/internal/auth"
)

type contextKey string

// CallerIDKey is the request-context key holding the authenticated user id.
const CallerIDKey contextKey = "callerID"

// CallerID returns the authenticated user id placed in the context by
// RequireAuth, or "" when the request was not authenticated.
func CallerID(ctx context.Context) string {
	id, _ := ctx.Value(CallerIDKey).(string)
	return id
}

// RequireAuth verifies the Bearer token and stores the caller's user id in
// the request context. Requests without a valid token get 401.
func RequireAuth(issuer *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, "missing bearer token")
				return
			}

			userID, err := issuer.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), CallerIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  false,
		"message": message,
	})
}
