package middleware

import (
	"context"
	"net/http"
	"strings"

	"fintrack/internal/auth"
	"fintrack/internal/models"
)

type contextKey string

const claimsKey contextKey = "claims"

// Identify attaches the claims of a valid bearer token to the request context.
// Requests without a token, or with a bad one, pass through unchanged.
func Identify(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if tokens == nil || authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			bearerToken := strings.Split(authHeader, " ")
			if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Parse(bearerToken[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*models.Claims)
	return claims, ok
}
