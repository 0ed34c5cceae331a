package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/authvault/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// withRequestID tags every request with a generated ID, echoes it back in the
// X-Request-Id header, and writes one access-log line.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)

		s.logger.Info(r.Context(), "request", "request_id", id, "method", r.Method, "path", r.URL.Path)

		next.ServeHTTP(w, r)
	})
}

// requireAuth admits only requests carrying a valid, unexpired bearer token
// and stores the token's account ID in the request context. Register and
// login never pass through here; this is the verification path for callers
// already holding a token.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeMessage(w, http.StatusUnauthorized, "missing token")
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
