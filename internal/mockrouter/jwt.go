package mockrouter

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// devSigningKey signs dev tokens. The console never verifies signatures
// itself, but issuing real JWTs keeps its expiry handling honest.
var devSigningKey = []byte("certdesk-dev-signing-key")

const tokenTTL = 12 * time.Hour

type sessionClaims struct {
	Role           string `json:"role"`
	OrganizationID string `json:"organization_id"`
	jwt.RegisteredClaims
}

func issueToken(acc account) (string, error) {
	claims := sessionClaims{
		Role:           acc.Role,
		OrganizationID: acc.OrganizationID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acc.Email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(devSigningKey)
}

func parseToken(tokenString string) (sessionClaims, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return devSigningKey, nil
	})
	if err != nil {
		return sessionClaims{}, err
	}

	return claims, nil
}
