package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultAccessTokenTTL = 30 * time.Minute

// TokenScheme tags the cookie value, e.g. "Bearer <jwt>".
const TokenScheme = "Bearer"

type Claims struct {
	Username string `json:"username"`
	UserID   string `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateAccessToken produces a signed JWT embedding the identity and an
// expiry ttl from now.
func GenerateAccessToken(identity *Identity, ttl time.Duration, secret string) (string, error) {
	claims := Claims{
		Username: identity.Username,
		UserID:   identity.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateAccessToken verifies the signature and expiry of a raw token
// (scheme tag already stripped) and returns its claims.
func ValidateAccessToken(tokenString string, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// StripScheme removes the "Bearer " tag carried in the cookie value.
func StripScheme(cookieValue string) (string, error) {
	parts := strings.SplitN(cookieValue, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], TokenScheme) {
		return "", errors.New("malformed token scheme")
	}
	return parts[1], nil
}
