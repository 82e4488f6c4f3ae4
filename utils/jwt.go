package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"detailops/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "detailops-dev"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT carrying the caller's tenant and user
// ids. The token expires after the specified duration.
func GenerateToken(tenantID, userID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"tenant_id": tenantID,
		"sub":       userID,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ExtractIdentityFromToken validates the token and returns (tenantID, userID).
func ExtractIdentityFromToken(tokenString string) (string, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid token claims")
	}
	tenantID, _ := claims["tenant_id"].(string)
	userID, _ := claims["sub"].(string)
	if tenantID == "" || userID == "" {
		return "", "", errors.New("token missing identity claims")
	}
	return tenantID, userID, nil
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
