// Package middleware provides request processing shared across routes:
// bearer-token authentication, response caching, and rate limiting.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ashrovy/records-api/internal/service"
)

// Context keys populated by JWTAuth for downstream handlers.
const (
	CtxUserID      = "user_id"
	CtxEmail       = "email"
	CtxTypeAccount = "type_account"
)

// JWTAuth validates a Bearer access token and injects the caller's
// identity into the request context. Verification is stateless; handlers
// that need the full user record load it themselves.
func JWTAuth(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "access token is missing"})
			}
			claims, err := auth.VerifyAccessToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired access token"})
			}
			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxTypeAccount, claims.TypeAccount)
			return next(c)
		}
	}
}
