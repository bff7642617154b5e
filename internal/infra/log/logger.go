// Package logs builds the process-wide slog.Logger from the env config
// section. JSON output is the default; log.pretty switches to the text
// handler for local development.
package logs

import (
	"log/slog"
	"os"
	"strings"

	"iriscan/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the logger, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the logger. env.debug forces the debug level regardless of the
// configured one, and every record carries the service name.
func New(params Params) (*slog.Logger, error) {
	env := params.Config.Env

	level, err := parseLogLevel(env.Log.Level)
	if err != nil {
		return nil, err
	}
	if env.Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if env.Log.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	if env.ServiceName != "" {
		logger = logger.With(slog.String("service", env.ServiceName))
	}

	return logger, nil
}

// parseLogLevel maps the config string to a slog.Level. An empty string means
// info; anything else unrecognized is a config error.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
