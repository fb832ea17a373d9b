package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// EmailFromUnverified reads the email claim out of a JWT without checking its
// signature. The only caller is the OAuth callback, where the ID token arrived
// over the already-authenticated token exchange; the value is display-only and
// must never feed an authorization decision.
func EmailFromUnverified(idToken string) string {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(idToken, claims); err != nil {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}
