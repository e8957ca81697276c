package serverutils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// IssueToken signs an HS256 token carrying the subject (user email) and a
// type claim distinguishing access from refresh tokens.
func IssueToken(secret, subject, tokenType string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"type": tokenType,
		"exp":  time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken checks signature and expiry, and that the type claim matches the
// expected token class. Any mismatch or decode failure yields unauthorized.
func VerifyToken(secret, tokenStr, expectedType string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, NewUnauthorizedError("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", NewUnauthorizedError("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", NewUnauthorizedError("invalid claims")
	}

	subject, _ := claims["sub"].(string)
	tokenType, _ := claims["type"].(string)
	if subject == "" || tokenType != expectedType {
		return "", NewUnauthorizedError("invalid token")
	}

	return subject, nil
}
