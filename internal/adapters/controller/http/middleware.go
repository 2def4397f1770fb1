package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/clubhub-dev/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-dev/clubhub/internal/domain/dto"
)

type contextKey string

const principalContextKey contextKey = "principal"

type tokenVerifier interface {
	VerifyAccessToken(tokenString string) (*dto.Principal, error)
}

// AuthMiddleware verifies the bearer credential and stores the principal
// in the request context. Everything behind it trusts that principal
// without re-verification.
func AuthMiddleware(verifier tokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, errorz.Unauthenticated("missing authorization header"))
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				respondError(w, errorz.Unauthenticated("invalid authorization header format"))
				return
			}

			principal, err := verifier.VerifyAccessToken(tokenString)
			if err != nil {
				respondError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), principalContextKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext returns the verified caller identity, if any.
func PrincipalFromContext(ctx context.Context) (*dto.Principal, bool) {
	principal, ok := ctx.Value(principalContextKey).(*dto.Principal)
	return principal, ok
}
