package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleViewer     = 3
)

// Operator is the single dashboard account configured through the environment.
type Operator struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	RoleID       int    `json:"role_id"`
}

type Claims struct {
	OperatorEmail string `json:"operator_email"`
	RoleID        int    `json:"role_id"`
	jwt.RegisteredClaims
}
