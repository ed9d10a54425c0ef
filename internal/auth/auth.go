// Package auth issues and verifies the signed session tokens carried in the
// session cookie. The token is the entire session state; nothing is stored
// server-side.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie set on login.
const CookieName = "filebox_session"

// Claims defines the JWT claims carried by a session token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens and checks credentials.
type Manager struct {
	secret   []byte
	ttl      time.Duration
	username string
	password string
}

// NewManager builds a session manager. An empty secret generates a random
// per-process key, which invalidates sessions across restarts.
func NewManager(secret, username, password string, ttl time.Duration) *Manager {
	key := []byte(secret)
	if len(key) == 0 {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			panic("auth: cannot read random source: " + err.Error())
		}
		key = []byte(hex.EncodeToString(buf))
	}
	return &Manager{secret: key, ttl: ttl, username: username, password: password}
}

// CheckCredentials compares the supplied pair against the configured one in
// constant time.
func (m *Manager) CheckCredentials(username, password string) bool {
	u := subtle.ConstantTimeCompare([]byte(username), []byte(m.username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(m.password))
	return u&p == 1
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a session token for the given user.
func (m *Manager) Issue(username string) (string, error) {
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify validates a session token and returns its claims.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
