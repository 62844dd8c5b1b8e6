package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/thanha17/online-shop/pkg/response"
)

// IsLoggedIn gates a route subset behind a valid bearer token; failures are
// rejected with the standard envelope before any handler runs.
func IsLoggedIn(jwtSecret string) echo.MiddlewareFunc {
	return echomiddleware.JWTWithConfig(echomiddleware.JWTConfig{
		SigningKey: []byte(jwtSecret),
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			return c.JSON(http.StatusUnauthorized, response.Envelope{
				EC: 1,
				EM: "Invalid or expired JWT",
				DT: nil,
			})
		},
	})
}

// OptionalAuth decodes a bearer token when one is present but never rejects
// the request; public routes use it to personalize behavior for logged-in
// callers.
func OptionalAuth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if strings.HasPrefix(header, "Bearer ") {
				raw := strings.TrimPrefix(header, "Bearer ")
				token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
					return []byte(jwtSecret), nil
				})
				if err == nil && token.Valid {
					c.Set("user", token)
				}
			}

			return next(c)
		}
	}
}
