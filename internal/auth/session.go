// Package auth issues and verifies the administrator session credential
// and owns password hashing. A session is an opaque signed token bound to
// the admin's identifier with its expiry embedded in the payload.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidSession covers every way a presented token can fail: bad
// signature, wrong algorithm, malformed payload, or expiry.
var ErrInvalidSession = errors.New("auth: invalid or expired session")

// SessionManager signs and verifies admin session tokens.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionManager creates a manager signing with the given secret and
// embedding the given lifetime into each issued token.
func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured session lifetime.
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Issue returns a signed token identifying the given administrator.
func (m *SessionManager) Issue(adminID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(adminID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry and returns the
// administrator identifier it was issued for.
func (m *SessionManager) Verify(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return m.secret, nil
		})
	if err != nil || !token.Valid {
		return 0, ErrInvalidSession
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, ErrInvalidSession
	}
	adminID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || adminID <= 0 {
		return 0, ErrInvalidSession
	}
	return adminID, nil
}
