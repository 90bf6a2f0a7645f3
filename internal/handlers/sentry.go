package handlers

import (
	"talenthub-backend/internal/config"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

// SetupSentry wires Sentry error reporting into the echo instance. A missing
// DSN disables reporting without failing startup.
func SetupSentry(e *echo.Echo, cfg *config.Config) {
	if cfg.Sentry.DSN == "" {
		e.Logger.Warn("SENTRY_DSN not configured, error reporting will be disabled")
		return
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		TracesSampleRate: 0.2,
	})
	if err != nil {
		e.Logger.Warnf("Sentry initialization failed: %v, error reporting will be disabled", err)
		return
	}

	e.Use(sentryecho.New(sentryecho.Options{
		Repanic: true,
	}))
}

// CaptureError forwards an error to Sentry when it is configured.
func CaptureError(err error) {
	sentry.CaptureException(err)
}
