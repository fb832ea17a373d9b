package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/zenohq/zeno-server/internal/domain/entities"
)

// Verifier validates access tokens issued by the identity provider. The
// provider signs with a symmetric secret (HS256) and sets the audience claim
// to "authenticated"; verification is purely local, no network call.
type Verifier struct {
	secret   []byte
	audience string
}

// NewVerifier creates a new token verifier
func NewVerifier(secret, audience string) *Verifier {
	return &Verifier{
		secret:   []byte(secret),
		audience: audience,
	}
}

// VerifyToken validates the token signature, expiry and audience, and returns
// the subject claim. Every failure wraps entities.ErrInvalidToken; callers
// branch with errors.Is and translate to 401 without leaking detail.
func (v *Verifier) VerifyToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithAudience(v.audience),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", entities.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: no subject claim", entities.ErrInvalidToken)
	}
	return claims.Subject, nil
}
