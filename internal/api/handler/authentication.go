package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/log"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type MeResponse struct {
	Email     string `json:"email"`
	RoleID    int    `json:"role_id"`
	ExpiresAt string `json:"expires_at,omitempty"`
	Anonymous bool   `json:"anonymous"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		token, err := service.Login(req.Email, req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.TokenCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		writeJSON(w, r, "", map[string]string{
			"token": token,
		})
	}
}

func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		me := MeResponse{
			Email:     claims.OperatorEmail,
			RoleID:    claims.RoleID,
			Anonymous: !service.Enabled(),
		}
		if claims.ExpiresAt != nil {
			me.ExpiresAt = claims.ExpiresAt.Time.UTC().Format("2006-01-02T15:04:05Z")
		}

		writeJSON(w, r, "", me)
	}
}

func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		var details any
		if authErr.Email != "" {
			details = map[string]any{"email": authErr.Email}
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Login failed")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal error during login", nil)
}
