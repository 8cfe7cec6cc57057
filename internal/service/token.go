package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gatehouse-app/gatehouse/internal/domain"
)

// SessionClaims is the claim set carried by a session token: the standard
// registered claims plus the user's admin flag.
type SessionClaims struct {
	jwt.RegisteredClaims
	IsAdmin bool `json:"isAdmin"`
}

// IssueSessionToken signs a session token for the given user identity.
// The token is self-contained: subject, issued-at, and expiry are all
// embedded, and nothing is stored server-side.
func (s *AuthService) IssueSessionToken(userID string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
		IsAdmin: isAdmin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ParseSessionToken validates a session token string and returns its
// claims. Bad signatures, unexpected signing methods, and expired
// tokens all come back as ErrUnauthorized.
func (s *AuthService) ParseSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
