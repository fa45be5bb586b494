package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtinfra "github.com/wibes/draw-api/internal/infrastructure/jwt"
)

type contextKey string

const ParticipantIDKey contextKey = "participant_id"

// BearerToken extracts the bearer token from the Authorization header.
// Returns "" when the header is absent or not a Bearer credential.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

// Auth returns middleware that validates the Bearer JWT and injects the
// bound participant handle into the request context.
func Auth(provider *jwtinfra.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := BearerToken(r)
			if tokenStr == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing or invalid authorization header")
				return
			}
			participantID, err := provider.Verify(tokenStr)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			ctx := context.WithValue(r.Context(), ParticipantIDKey, participantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ParticipantIDFromContext extracts the authenticated participant handle.
func ParticipantIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ParticipantIDKey).(string)
	return id, ok
}
