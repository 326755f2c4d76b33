package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/log"
)

type contextKey string

const (
	ContextKeyOperator contextKey = "operator"

	// TokenCookie lets the HTML dashboard authenticate without a header.
	TokenCookie = "dashboard_token"
)

var publicPaths = map[string]struct{}{
	"/healthcheck": {},
	"/readiness":   {},
	"/v1/login":    {},
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authService.Enabled() {
				next.ServeHTTP(w, withClaims(r, authService.Anonymous()))
				return
			}

			if _, ok := publicPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, ok := bearerToken(r)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) {
					code = authErr.Code
				}

				log.ForContext(r.Context()).WithError(err).Warn("Rejected token")
				apiErrors.WriteError(w, code, "invalid token", nil)
				return
			}

			next.ServeHTTP(w, withClaims(r, claims))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	if header := r.Header.Get("Authorization"); header != "" {
		token := strings.TrimPrefix(header, "Bearer ")
		return token, token != header && token != ""
	}

	if cookie, err := r.Cookie(TokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	return "", false
}

func withClaims(r *http.Request, claims *domain.Claims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ContextKeyOperator, claims))
}

// ClaimsFromContext returns the claims the auth middleware attached.
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyOperator).(*domain.Claims)
	return claims, ok
}
