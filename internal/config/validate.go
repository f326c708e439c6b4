package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.CPD.validate(); err != nil {
		return fmt.Errorf("cpd: %w", err)
	}

	if c.Access.RateLimitPerMinute < 0 {
		return fmt.Errorf("access.rate_limit_per_minute must be >= 0 (got %d)", c.Access.RateLimitPerMinute)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.Billing.Enabled() && c.Billing.StripeWebhookSecret == "" {
		return fmt.Errorf("billing.stripe_webhook_secret is required when billing is enabled")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (c *CPDConfig) validate() error {
	if c.RequiredHours <= 0 {
		return fmt.Errorf("required_hours must be > 0 (got %v)", c.RequiredHours)
	}
	if c.EndorsedRequiredHours < c.RequiredHours {
		return fmt.Errorf("endorsed_required_hours must be >= required_hours (got %v < %v)",
			c.EndorsedRequiredHours, c.RequiredHours)
	}
	if c.MinReflectionLength < 0 {
		return fmt.Errorf("min_reflection_length must be >= 0 (got %d)", c.MinReflectionLength)
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	c.Location = loc

	return nil
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case StorageLocal:
		if s.LocalDir == "" {
			return fmt.Errorf("local_dir is required for the local driver")
		}
	case StorageGCS:
		if s.GCSBucket == "" {
			return fmt.Errorf("gcs_bucket is required for the gcs driver")
		}
	default:
		return fmt.Errorf("unknown driver %q", s.Driver)
	}
	if s.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", s.MaxUploadBytes)
	}
	return nil
}
