// Package jwthelper issues and parses the HMAC tokens used for sessions and
// password resets.
package jwthelper

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	sessionLifetime = 24 * time.Hour
	resetLifetime   = 30 * time.Minute

	purposeSession = "session"
	purposeReset   = "password_reset"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrWrongPurpose = errors.New("token issued for a different purpose")
)

type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"uid"`
	Purpose   string `json:"purpose"`
	UserAgent string `json:"user_agent,omitempty"`
}

// GenerateToken mints a session token for userID, bound to the user agent
// that logged in.
func GenerateToken(signingKey []byte, userID, userAgent string) (string, error) {
	return generate(signingKey, userID, purposeSession, userAgent, sessionLifetime)
}

// GenerateResetToken mints a short-lived token that may only be spent on a
// password update.
func GenerateResetToken(signingKey []byte, userID string) (string, error) {
	return generate(signingKey, userID, purposeReset, "", resetLifetime)
}

func generate(signingKey []byte, userID, purpose, userAgent string, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
		UserID:    userID,
		Purpose:   purpose,
		UserAgent: userAgent,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(signingKey)
	if err != nil {
		return "", fmt.Errorf("token.SignedString -> %w", err)
	}

	return signed, nil
}

// ParseToken validates a session token and returns the user ID it carries.
func ParseToken(signingKey []byte, tokenString string) (string, error) {
	return parse(signingKey, tokenString, purposeSession)
}

// ParseResetToken validates a password-reset token and returns the user ID.
func ParseResetToken(signingKey []byte, tokenString string) (string, error) {
	return parse(signingKey, tokenString, purposeReset)
}

func parse(signingKey []byte, tokenString, purpose string) (string, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return signingKey, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Purpose != purpose {
		return "", ErrWrongPurpose
	}

	return claims.UserID, nil
}
