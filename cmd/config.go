package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/gommon/log"
)

// Config holds the settings read from the environment.
type Config struct {
	HTTPPort           string
	LogLevel           string
	DemoResetSchedule  string
	SessionCookie      string
	SessionIdleTimeout string
	MaxSessions        string
	DefaultRole        string
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []error

	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port < 1 || port > 65535 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("HTTP_PORT", c.HTTPPort, 1, 65535))
	}
	if _, err := c.SlogLevel(); err != nil {
		problems = append(problems, err)
	}
	if c.SessionCookie == "" {
		problems = append(problems, errs.NewValueIsRequiredError("SESSION_COOKIE"))
	}
	if _, err := c.IdleTimeout(); err != nil {
		problems = append(problems, err)
	}
	if _, err := c.SessionLimit(); err != nil {
		problems = append(problems, err)
	}
	if _, err := c.Role(); err != nil {
		problems = append(problems, err)
	}

	return errors.Join(problems...)
}

// SlogLevel parses LOG_LEVEL ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	return level, nil
}

// EchoLevel maps LOG_LEVEL onto the echo logger levels.
func (c Config) EchoLevel() log.Lvl {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}

// Role parses DEFAULT_ROLE, the tab a new session opens on.
func (c Config) Role() (kernel.Role, error) {
	role, err := kernel.ParseRole(c.DefaultRole)
	if err != nil {
		return kernel.RoleUnknown, fmt.Errorf("DEFAULT_ROLE: %w", err)
	}
	return role, nil
}

// IdleTimeout parses SESSION_IDLE_TIMEOUT, e.g. "24h". Sessions unused for
// longer are evicted.
func (c Config) IdleTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.SessionIdleTimeout)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("SESSION_IDLE_TIMEOUT", err)
	}
	if d <= 0 {
		return 0, errs.NewValueIsOutOfRangeError("SESSION_IDLE_TIMEOUT", c.SessionIdleTimeout, "1s", "unbounded")
	}
	return d, nil
}

// SessionLimit parses MAX_SESSIONS, the most dashboards kept in memory at once.
func (c Config) SessionLimit() (int, error) {
	n, err := strconv.Atoi(c.MaxSessions)
	if err != nil || n < 1 {
		return 0, errs.NewValueIsOutOfRangeError("MAX_SESSIONS", c.MaxSessions, 1, "unbounded")
	}
	return n, nil
}
