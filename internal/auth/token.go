package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const tokenIssuer = "eyewear-store-admin"

var ErrInvalidToken = errors.New("invalid admin token")

// IssueToken firma un bearer token HS256 con vencimiento igual al TTL de sesión
func (g *Gate) IssueToken(username string) (string, time.Time, error) {
	now := g.now()
	expires := now.Add(g.ttl)

	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}

// VerifyToken valida firma, emisor y vencimiento; retorna el usuario
func (g *Gate) VerifyToken(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !claims.VerifyIssuer(tokenIssuer, true) {
		return "", fmt.Errorf("%w: wrong issuer", ErrInvalidToken)
	}
	if !claims.VerifyExpiresAt(g.now(), true) {
		return "", fmt.Errorf("%w: expired", ErrInvalidToken)
	}
	return claims.Subject, nil
}
