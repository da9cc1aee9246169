package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/taskboard/taskboard-go/internal/crypto"
)

type contextKey string

const principalKey contextKey = "principal"

// Principal is the caller identity derived from a validated token. It lives
// only for the duration of one request.
type Principal struct {
	UserID int64
	Email  string
}

// Auth returns middleware that validates a Bearer token from the
// Authorization header and stores the caller identity in the request
// context. Missing or invalid tokens yield 401 before the handler runs.
func Auth(tokens *crypto.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			principal := Principal{UserID: claims.UserID, Email: claims.Subject}
			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext extracts the authenticated caller from the request context.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
