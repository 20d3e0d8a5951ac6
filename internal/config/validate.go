package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if strings.TrimSpace(c.Auth.JWTIssuer) == "" {
		return fmt.Errorf("auth.jwt_issuer must not be empty")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	if err := c.Timeline.validate(); err != nil {
		return fmt.Errorf("timeline: %w", err)
	}

	return nil
}

func (l *LogConfig) validate() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return fmt.Errorf("level %q: %w", l.Level, err)
	}
	switch l.Format {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must be >= 0 (got %v)", r.RequestsPerSecond)
	}
	if r.Enabled() && r.Burst <= 0 {
		return fmt.Errorf("burst must be > 0 when limiting is enabled (got %d)", r.Burst)
	}
	return nil
}

func (t *TimelineConfig) validate() error {
	if t.MaxProjectsPerUser <= 0 {
		return fmt.Errorf("max_projects_per_user must be > 0 (got %d)", t.MaxProjectsPerUser)
	}
	if t.MaxEventsPerProject <= 0 {
		return fmt.Errorf("max_events_per_project must be > 0 (got %d)", t.MaxEventsPerProject)
	}
	if t.MaxImportEvents <= 0 || t.MaxImportEvents > t.MaxEventsPerProject {
		return fmt.Errorf("max_import_events must be in 1..max_events_per_project (got %d)", t.MaxImportEvents)
	}
	return nil
}
