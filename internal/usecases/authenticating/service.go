// Package authenticating signs in the dashboard operator and checks their
// tokens. When authentication is disabled every request acts as an
// anonymous admin.
package authenticating

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-dashboard-api/internal/config"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const anonymousEmail = "anonymous"

type Authenticator interface {
	Enabled() bool
	Login(email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	Anonymous() *domain.Claims
}

type Service struct {
	cfg      config.Auth
	operator domain.Operator
	now      func() time.Time
}

func NewService(cfg config.Auth) Authenticator {
	role := cfg.OperatorRole
	if role == 0 {
		role = domain.RoleAdmin
	}

	return &Service{
		cfg: cfg,
		operator: domain.Operator{
			Email:        handleEmail(cfg.OperatorEmail),
			PasswordHash: cfg.OperatorPasswordHash,
			RoleID:       role,
		},
		now: time.Now,
	}
}

func (s *Service) Enabled() bool {
	return s.cfg.Enabled
}

func handleEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s *Service) Login(email, password string) (string, error) {
	if !s.cfg.Enabled {
		return "", NewAuthError(ErrAuthDisabled, apiErrors.ErrAuthDisabled, "login is not available")
	}

	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "email and password are required")
	}

	email = handleEmail(email)

	if email != s.operator.Email {
		logrus.WithFields(logrus.Fields{"email": email}).Warn("Login attempt for unknown operator")
		return "", NewOperatorAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, email, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.operator.PasswordHash), []byte(password)); err != nil {
		return "", NewOperatorAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, email, "")
	}

	token, err := s.generateJWT(s.operator)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "could not sign token")
	}

	return token, nil
}

func (s *Service) generateJWT(operator domain.Operator) (string, error) {
	now := s.now()

	claims := &domain.Claims{
		OperatorEmail: operator.Email,
		RoleID:        operator.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   operator.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

// Anonymous is the identity used for every request while authentication is
// disabled.
func (s *Service) Anonymous() *domain.Claims {
	return &domain.Claims{
		OperatorEmail: anonymousEmail,
		RoleID:        domain.RoleAdmin,
	}
}
