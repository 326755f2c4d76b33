package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/apiErrors"
)

// RoleMiddleware lets through only operators whose role is in allowedRoles.
func RoleMiddleware(allowedRoles ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Access attempt without authentication")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if claims.RoleID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Access denied for operator=%s role=%d", claims.OperatorEmail, claims.RoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "insufficient privileges for this resource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}

func AdminOrSupervisor() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleAdmin, domain.RoleSupervisor)
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleAdmin, domain.RoleSupervisor, domain.RoleViewer)
}
