package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"acsp_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by session tokens: enough to identify the
// account and short-circuit role checks without a lookup. The access gate
// still reloads the account, so a ban takes effect before the token expires.
type Claims struct {
	UserID string            `json:"userId"`
	Role   models.UserRole   `json:"role"`
	Status models.UserStatus `json:"status"`
	jwt.RegisteredClaims
}

// TokenManager signs and parses session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate issues a signed session token for the user.
func (m *TokenManager) Generate(user *models.User) (string, error) {
	if len(m.secret) == 0 {
		return "", fmt.Errorf("token signing secret is not configured")
	}

	now := time.Now()
	claims := Claims{
		UserID: user.ID.Hex(),
		Role:   user.Role,
		Status: user.Status,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates a session token and returns its claims.
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// GenerateRandomToken produces a single-use token for email verification and
// password reset links.
func GenerateRandomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(fmt.Sprintf("failed to read random bytes: %v", err))
	}
	return hex.EncodeToString(b)
}
