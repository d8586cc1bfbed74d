package utils

import (
	"errors"
	"time"

	"cardpay/internal/config"
	"cardpay/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token claims")

// GenerateAdminToken signs an HS256 token granting the admin role to subject.
func GenerateAdminToken(cfg config.AuthConfig, subject string) (string, error) {
	if cfg.JWTSecret == "" {
		return "", errors.New("JWT_SECRET not configured")
	}

	now := time.Now()
	claims := models.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    cfg.Issuer,
			Subject:   subject,
		},
		Role: models.RoleAdmin,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
}

// ParseToken parses and validates a JWT token string.
func ParseToken(cfg config.AuthConfig, tokenStr string) (*models.AdminClaims, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET not configured")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &models.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithIssuer(cfg.Issuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
