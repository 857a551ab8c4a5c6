package stock

import (
	"strings"
	"time"

	"stock-sync/core/reconcile"
)

// Config holds the settings of one sync run.
type Config struct {
	// LocationID is the remote location whose quantities are adjusted.
	LocationID string `mapstructure:"location_id" default:""`
	// Source is a local path or an s3://bucket/key location of the stock export.
	Source string `mapstructure:"source" default:""`
	// BatchSize is the maximum number of SKUs per fetch/update cycle.
	BatchSize int `mapstructure:"batch_size" default:"100"`
	// PacingDelaySeconds is the delay between batches. Fractions are allowed.
	PacingDelaySeconds float64 `mapstructure:"pacing_delay_seconds" default:"1"`
	// DryRun renders update mutations without submitting them.
	DryRun bool `mapstructure:"dry_run" default:"false"`
}

// Options converts the configuration into engine options.
func (c Config) Options() reconcile.Options {
	return reconcile.Options{
		LocationID:  strings.TrimSpace(c.LocationID),
		BatchSize:   c.BatchSize,
		PacingDelay: time.Duration(c.PacingDelaySeconds * float64(time.Second)),
		DryRun:      c.DryRun,
	}
}

// Validate checks the run configuration.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return reconcile.NewConfigError("stock source is required")
	}
	return c.Options().Validate()
}
