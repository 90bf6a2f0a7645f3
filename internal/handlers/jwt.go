package handlers

import (
	"errors"
	"time"

	"talenthub-backend/internal/common"

	echojwt "github.com/labstack/echo-jwt/v4"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// JwtAuth validates bearer tokens issued by the auth service (shared HMAC
// secret) and can mint tokens itself for tests and debug endpoints.
type JwtAuth struct {
	Secret string
}

func NewJwtAuth(secret string) *JwtAuth {
	return &JwtAuth{Secret: secret}
}

func (j *JwtAuth) GenerateToken(email, userID string) (string, error) {
	claims := &common.JwtCustomClaims{
		Email:  email,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.Secret))
}

func (j *JwtAuth) Middleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(common.JwtCustomClaims)
		},
		SigningKey: []byte(j.Secret),
	})
}

func (j *JwtAuth) claims(c echo.Context) (*common.JwtCustomClaims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("missing jwt token in context")
	}
	claims, ok := token.Claims.(*common.JwtCustomClaims)
	if !ok {
		return nil, errors.New("unexpected jwt claims type")
	}
	return claims, nil
}

func (j *JwtAuth) GetUserEmail(c echo.Context) (string, error) {
	claims, err := j.claims(c)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}

func (j *JwtAuth) GetUserID(c echo.Context) (string, error) {
	claims, err := j.claims(c)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
