package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/osse101/GameCatalog_Go/internal/domain"
)

// Claims is the JWT payload of an issued token. The role travels by name
// and is re-parsed on verification, so a token minted before a role rename
// fails closed instead of silently escalating.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HMAC-signed bearer tokens.
type TokenManager struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewTokenManager creates a token manager with the given signing secret and
// token validity window.
func NewTokenManager(secret string, expiry time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// Issue mints a signed token for the user.
func (m *TokenManager) Issue(user *domain.User) (string, error) {
	now := m.now()
	claims := Claims{
		Username: user.Username,
		Role:     user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string, returning the authenticated
// actor. Any parse, signature, or expiry failure maps to ErrUnauthorized.
func (m *TokenManager) Verify(tokenString string) (domain.Actor, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !token.Valid {
		return domain.Actor{}, domain.ErrUnauthorized
	}

	var userID int
	if _, err := fmt.Sscanf(claims.Subject, "%d", &userID); err != nil {
		return domain.Actor{}, domain.ErrUnauthorized
	}

	return domain.Actor{
		UserID:   userID,
		Username: claims.Username,
		Role:     domain.ParseRole(claims.Role),
	}, nil
}
