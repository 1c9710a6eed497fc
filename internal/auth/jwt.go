package auth

import (
	"errors"
	"time"

	"newsroom_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims - полезная нагрузка JWT. Subject содержит username.
type Claims struct {
	Role      string `json:"role,omitempty"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// GenerateAccessToken создает access JWT с TTL из конфигурации
func GenerateAccessToken(username, role string) (string, error) {
	cfg := config.GetConfig()
	ttl := time.Duration(cfg.JWT.AccessTTLMinutes) * time.Minute
	return generateToken(username, role, TokenTypeAccess, ttl)
}

// GenerateRefreshToken создает refresh JWT с TTL из конфигурации
func GenerateRefreshToken(username string) (string, error) {
	cfg := config.GetConfig()
	ttl := time.Duration(cfg.JWT.RefreshTTLDays) * 24 * time.Hour
	return generateToken(username, "", TokenTypeRefresh, ttl)
}

func generateToken(username, role, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetConfig().JWT.Secret))
}

// ParseToken проверяет подпись, срок действия и тип токена
func ParseToken(tokenStr, wantType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(config.GetConfig().JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != wantType {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
