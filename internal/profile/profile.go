// Package profile loads the process-level configuration for datetools:
// the run mode and the current timezone every "local" specifier resolves
// against.
package profile

import (
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/hrygo/datetools/timezone"
)

// Profile is the process configuration.
type Profile struct {
	// Mode can be "prod" or "dev"
	Mode string
	// Timezone is the IANA identifier of the current zone. Empty means the
	// system zone (honoring the TZ environment variable).
	Timezone string
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// getEnvOrDefault returns the environment variable value or the default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FromEnv loads configuration from environment variables.
// DATETOOLS_TIMEZONE takes precedence over the standard TZ variable.
func (p *Profile) FromEnv() {
	p.Mode = getEnvOrDefault("DATETOOLS_MODE", "prod")
	p.Timezone = getEnvOrDefault("DATETOOLS_TIMEZONE", os.Getenv("TZ"))
}

// Apply validates the configured timezone and installs it as the process's
// current zone. Must be called during startup, before any "local" specifier
// is resolved.
func (p *Profile) Apply() error {
	loc := time.Local
	if p.Timezone != "" {
		parsed, err := timezone.ParseTimezone(p.Timezone)
		if err != nil {
			return errors.Wrap(err, "apply profile")
		}
		loc = parsed
	}

	timezone.SetCurrent(loc)
	slog.Info("current timezone configured", "timezone", loc.String(), "mode", p.Mode)
	return nil
}

// New builds a Profile from the environment.
func New() *Profile {
	p := &Profile{}
	p.FromEnv()
	return p
}
