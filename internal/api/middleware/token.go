package middleware

import (
	"net/http"
	"strings"

	"github.com/phrazzld/portico-api/internal/api/shared"
)

// BearerToken extracts the access token from the Authorization header and
// stores it in the request context. A missing header is tolerated — most
// data and storage operations accept anonymous access — but a present,
// malformed header fails loudly rather than being silently downgraded to
// anonymous. The token itself is never logged.
func BearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		ctx := shared.SetAccessToken(r.Context(), parts[1])
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
