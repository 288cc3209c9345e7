package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

type ctxKey int

const ctxAdminKey ctxKey = iota

var errUnauthenticated = errors.New("unauthenticated")

// authMiddleware is the enforcement point for every mutating route: the
// client-side session gate is a convenience, the bearer token check here
// is what actually protects the admin surface.
func (a *API) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			respondError(w, http.StatusUnauthorized, errUnauthenticated)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := a.tokenSvc.ParseToken(token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, errUnauthenticated)
			return
		}

		ctx := context.WithValue(r.Context(), ctxAdminKey, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func adminUsername(ctx context.Context) string {
	if username, ok := ctx.Value(ctxAdminKey).(string); ok {
		return username
	}
	return ""
}
