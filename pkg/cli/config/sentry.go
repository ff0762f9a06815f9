package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ghorg/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const sentryFlushTimeout = 2 * time.Second

// Sentry reports errors of one CLI run. Without a DSN nothing is sent.
type Sentry struct {
	dsn         string
	environment string
	release     string
	enabled     bool
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN, errors are reported when set",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("GHORG_SENTRY_DSN", "SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("GHORG_SENTRY_ENV", "SENTRY_ENVIRONMENT"),
		},
		&cli.StringFlag{
			Name:        "sentry-release",
			Usage:       "Release reported to Sentry",
			Category:    "Sentry",
			Destination: &x.release,
			Sources:     cli.EnvVars("GHORG_SENTRY_RELEASE", "SENTRY_RELEASE"),
		},
	}
}

// Configure initializes the global Sentry hub used by errutil.HandleError.
func (x *Sentry) Configure(ctx context.Context) error {
	if x.dsn == "" {
		logging.From(ctx).Debug("Sentry DSN is not set, error reporting disabled")
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              x.dsn,
		Environment:      x.environment,
		Release:          x.release,
		AttachStacktrace: true,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry",
			goerr.V("environment", x.environment),
			goerr.V("release", x.release),
		)
	}
	x.enabled = true

	logging.From(ctx).Debug("Sentry configured", slog.Any("sentry", x))
	return nil
}

// Flush waits for queued events to be sent. It returns false if the timeout
// expired first; a disabled reporter always returns true.
func (x *Sentry) Flush() bool {
	if !x.enabled {
		return true
	}
	return sentry.Flush(sentryFlushTimeout)
}

func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("Enabled", x.enabled),
		slog.Int("DSN.len", len(x.dsn)),
		slog.String("Environment", x.environment),
		slog.String("Release", x.release),
	)
}
