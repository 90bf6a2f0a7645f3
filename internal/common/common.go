package common

import (
	"context"

	"talenthub-backend/internal/config"
	"talenthub-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type JwtCustomClaims struct {
	Email  string `json:"email"`
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type JWTIssuer interface {
	GenerateToken(email, userID string) (string, error)
	Middleware() echo.MiddlewareFunc
	GetUserEmail(c echo.Context) (string, error)
	GetUserID(c echo.Context) (string, error)
}

// InterviewAPI is the REST surface of the interview service this backend
// collaborates with. It owns interview records and their feedback templates;
// we only read them and push status transitions.
type InterviewAPI interface {
	GetInterview(ctx context.Context, id int) (*models.Interview, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

type ServerState struct {
	Echo       *echo.Echo
	Config     *config.Config
	DB         *gorm.DB
	JwtIssuer  JWTIssuer
	Redis      *redis.Client
	Interviews InterviewAPI
}
