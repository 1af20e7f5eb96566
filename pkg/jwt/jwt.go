package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin  = "admin"
	RoleReader = "reader"

	tokenTypeAccess = "access"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims represents JWT claims structure
type Claims struct {
	Role string `json:"role"`
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// Manager handles JWT operations
type Manager struct {
	secret       []byte
	accessExpiry time.Duration
}

func NewManager(secret string, accessExpiry time.Duration) *Manager {
	return &Manager{secret: []byte(secret), accessExpiry: accessExpiry}
}

// GenerateAccessToken issues a signed token for subject with role
func (m *Manager) GenerateAccessToken(subject, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		Type: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateAccessToken parses token and checks signature, expiry and type
func (m *Manager) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != tokenTypeAccess {
		return nil, fmt.Errorf("%w: expected access token, got %q", ErrInvalidToken, claims.Type)
	}

	return claims, nil
}
