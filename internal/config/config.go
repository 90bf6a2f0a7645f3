package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server struct {
		Port string
		Host string
		TLS  struct {
			Enabled  bool
			CertFile string
			KeyFile  string
		}
		DeployDomain string
		Debug        bool
	}
	Auth struct {
		JWTSecret string
	}
	Database struct {
		DSN      string
		RedisURI string
	}
	InterviewService struct {
		BaseURL string
		Timeout time.Duration
	}
	Sentry struct {
		DSN string
	}
}

func Load() (*Config, error) {

	envStack := os.Getenv("ENV_STACK")

	if envStack != "" {
		filePath := "./env-files/.env." + envStack
		err := godotenv.Load(filePath)
		if err != nil {
			fmt.Printf("Error loading .env file: %s\n", err)
		}
	}

	c := &Config{}

	// Server configuration with environment variable support
	c.Server.Port = os.Getenv("SERVER_PORT")
	if c.Server.Port == "" {
		c.Server.Port = "1926"
	}

	c.Server.Host = os.Getenv("SERVER_HOST")
	if c.Server.Host == "" {
		c.Server.Host = "localhost"
	}

	c.Server.DeployDomain = os.Getenv("DEPLOY_DOMAIN")
	if c.Server.DeployDomain == "" {
		c.Server.DeployDomain = c.Server.Host + ":" + c.Server.Port
	}

	c.Server.Debug = os.Getenv("ENABLE_DEBUG_ENDPOINTS") == "true"

	// TLS Configuration
	useTLS := os.Getenv("USE_TLS")
	c.Server.TLS.Enabled = useTLS != "false" && useTLS != "0"
	c.Server.TLS.CertFile = "./certs/localhost.pem"
	c.Server.TLS.KeyFile = "./certs/localhost-key.pem"

	c.Auth.JWTSecret = os.Getenv("JWT_SECRET")

	c.Database.DSN = os.Getenv("DATABASE_DSN")
	c.Database.RedisURI = os.Getenv("REDIS_URI")

	c.InterviewService.BaseURL = strings.TrimSuffix(os.Getenv("INTERVIEW_SERVICE_URL"), "/")
	if c.InterviewService.BaseURL == "" {
		c.InterviewService.BaseURL = "http://localhost:8081"
	}

	timeoutStr := os.Getenv("INTERVIEW_SERVICE_TIMEOUT")
	if timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return c, fmt.Errorf("invalid INTERVIEW_SERVICE_TIMEOUT %q: %w", timeoutStr, err)
		}
		c.InterviewService.Timeout = timeout
	} else {
		c.InterviewService.Timeout = 10 * time.Second
	}

	c.Sentry.DSN = os.Getenv("SENTRY_DSN")

	return c, nil
}
