package auth

import (
	"context"
	"net/http"
	"strings"

	apperrors "rentx/internal/errors"
)

type contextKey struct{}

// Middleware rejects requests without a valid bearer token and stores the
// token claims on the request context.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				apperrors.ErrorStatus("Unauthorized", http.StatusUnauthorized, w, apperrors.ErrUnauthorized("missing bearer token"))
				return
			}
			claims, err := ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				apperrors.ErrorStatus("Unauthorized", http.StatusUnauthorized, w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// AdminOnly must run after Middleware.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || !claims.IsAdmin {
			apperrors.ErrorStatus("Forbidden", http.StatusForbidden, w, apperrors.NewHTTPError(http.StatusForbidden, "admin only"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(contextKey{}).(*Claims)
	return claims, ok
}
