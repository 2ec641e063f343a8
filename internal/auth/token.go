// Package auth issues and verifies the API's bearer tokens and provides
// the gin middleware that enforces who may call which route.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/justsurfingit/jobly/internal/models"
)

// tokenTTL bounds how long an issued token stays valid.
const tokenTTL = 24 * time.Hour

// ErrInvalidToken reports a token that failed parsing, signature or
// expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity embedded in issued tokens.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// TokenManager mints and verifies signed tokens with a shared HMAC secret.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// CreateToken returns a signed token carrying the user's identity.
func (m *TokenManager) CreateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// VerifyToken parses and validates a signed token, returning its claims.
// Any failure, including a token signed with another method or key, comes
// back as ErrInvalidToken.
func (m *TokenManager) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
