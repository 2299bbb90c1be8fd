package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Secret Key (override with SetSecret / JWT_SECRET at boot)
var jwtKey = []byte("glamor_shop_session_secret_2026")

// SetSecret replaces the signing key. Call once at startup, before any
// token is issued.
func SetSecret(secret string) {
	if secret != "" {
		jwtKey = []byte(secret)
	}
}

// Claims defines what is inside the admin session token
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for the admin session
func GenerateToken(username string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour) // Token lasts 1 day

	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ValidateToken checks if a token is fake or expired
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
