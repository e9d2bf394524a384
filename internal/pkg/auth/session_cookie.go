// internal/pkg/auth/session_cookie.go
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/your-org/storefront-web/internal/config"
)

// SessionClaims carries the browser session ID inside the signed cookie.
// Signing prevents session IDs from being guessed or forged; the cookie
// holds no authentication state itself, only the pointer into the token
// store.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// CookieManager signs and validates session cookies
type CookieManager struct {
	config *config.Config
}

// NewCookieManager creates a new cookie manager
func NewCookieManager(cfg *config.Config) *CookieManager {
	return &CookieManager{
		config: cfg,
	}
}

// Sign produces the signed cookie value for a session ID
func (m *CookieManager) Sign(sessionID string) (string, error) {
	now := time.Now().UTC()

	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.Session.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.config.App.Name,
			Subject:   "session:" + sessionID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.Session.CookieSecret))
}

// Validate parses a cookie value and returns the session ID it carries
func (m *CookieManager) Validate(value string) (string, error) {
	token, err := jwt.ParseWithClaims(value, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.config.Session.CookieSecret), nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to parse session cookie: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid session cookie claims")
	}

	if claims.SessionID == "" {
		return "", fmt.Errorf("session cookie missing session ID")
	}

	return claims.SessionID, nil
}
