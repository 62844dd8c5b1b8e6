package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

func CreateJWTToken(email string, name string, jwtSecretKey string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{}
	claims["email"] = email
	claims["name"] = name
	claims["exp"] = time.Now().Add(expiry).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(jwtSecretKey))
}

// ExtractTokenUser returns the email and name embedded in the verified bearer
// token, or empty strings on an unauthenticated request.
func ExtractTokenUser(c echo.Context) (string, string) {
	user, ok := c.Get("user").(*jwt.Token)
	if !ok || !user.Valid {
		return "", ""
	}

	claims := user.Claims.(jwt.MapClaims)
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	return email, name
}
