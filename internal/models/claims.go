package models

import "github.com/golang-jwt/jwt/v5"

const RoleAdmin = "admin"

// AdminClaims authenticate the administrative routes (recharges).
type AdminClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// IsAdmin reports whether the token grants administrative access.
func (c *AdminClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
