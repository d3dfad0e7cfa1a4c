package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"nimbus/internal/domain"
)

// SessionCookie is the cookie the browser client stores its token in.
const SessionCookie = "nimbus_session"

type sessionKey struct{}

// Middleware resolves the caller's session once and injects it into
// the request context. Requests without a valid session are rejected
// with 401 before any handler runs; a resolver failure that is not a
// credential problem (session store unreachable) surfaces as 500, not
// as a rejected login.
func Middleware(resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := resolver.Resolve(r.Context(), TokenFromRequest(r))
			if errors.Is(err, ErrUnauthenticated) {
				writeError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			if err != nil {
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			ctx := context.WithValue(r.Context(), sessionKey{}, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// SessionFrom returns the session injected by Middleware, or nil when
// the request did not pass through it.
func SessionFrom(ctx context.Context) *domain.Session {
	s, _ := ctx.Value(sessionKey{}).(*domain.Session)
	return s
}

// TokenFromRequest extracts the bearer token from the Authorization
// header, falling back to the session cookie.
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return token
		}
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}
