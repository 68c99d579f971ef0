// Package auth issues and verifies the signed tokens used by the session
// lifecycle. Both token classes are HS256 JWTs carrying the identity's email;
// access and refresh tokens differ only in lifetime and signing secret.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/akorlov/mapmark/internal/common"
)

// Claims embeds the registered JWT claims plus the identity email the token
// asserts.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// GenerateToken signs a token asserting email, expiring validityDuration
// from now.
func GenerateToken(email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Email: email,
	})

	return token.SignedString(secretKey)
}

// GetEmailFromToken verifies tokenString against secretKey and returns the
// embedded email. The error is a tagged outcome: common.ErrTokenExpired for
// an expired but otherwise well-formed token, common.ErrInvalidToken for a
// bad signature or malformed token.
func GetEmailFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Email, nil
}
