package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the signed token payload: the author identity plus role.
type Claims struct {
	AuthorID string `json:"id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Manager handles JWT operations with a single shared HMAC secret.
// There is no key rotation; the secret comes from configuration.
type Manager struct {
	secret string
	ttl    time.Duration
}

// NewManager creates a JWT manager. ttl is the validity window of
// issued tokens (7 days in the default configuration).
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: secret, ttl: ttl}
}

// Generate issues a signed token embedding the author id and role.
func (m *Manager) Generate(authorID uuid.UUID, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		AuthorID: authorID.String(),
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// Validate parses and verifies a token. Any failure (malformed, expired,
// bad signature, wrong algorithm) comes back as an error; callers must
// treat all of them uniformly as unauthenticated.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
