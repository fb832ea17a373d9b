package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/zenohq/zeno-server/pkg/jwt"
)

// UserIDContextKey is the Echo context key holding the verified subject id
const UserIDContextKey = "user_id"

// EchoAuth returns an Echo middleware that verifies the bearer token against
// the identity provider's signing secret and stores the subject id in the
// request context. Verification is local; no provider round-trip.
func EchoAuth(verifier *jwt.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error": "Missing authorization token",
				})
			}

			subject, err := verifier.VerifyToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error": "Invalid authentication token",
				})
			}

			c.Set(UserIDContextKey, subject)
			return next(c)
		}
	}
}

// SubjectID returns the authenticated subject id set by EchoAuth, or "" when
// the request was not authenticated.
func SubjectID(c echo.Context) string {
	subject, _ := c.Get(UserIDContextKey).(string)
	return subject
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return strings.TrimSpace(parts[1])
		}
	}

	// Cookie fallback for browser-initiated requests
	cookie, err := c.Cookie("access_token")
	if err == nil {
		return cookie.Value
	}
	return ""
}
