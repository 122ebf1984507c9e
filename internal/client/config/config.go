// Package config loads runtime settings for the daybook CLI from
// defaults, an optional JSON file, environment variables and
// command-line flags, in that order of precedence.
package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/daybook/internal/common"
)

// Config holds runtime settings for the daybook CLI.
//
// DataDir is the directory holding the local database and the local
// copy of the master index. The S3 fields describe the remote bucket;
// a non-empty S3Endpoint points the client at an S3-compatible server
// such as MinIO. TransferRetries and TransferBackoff bound the retry
// loop around individual content transfers. TombstoneRetention controls
// how long deleted-entry records stay in the index; zero keeps them
// forever.
type Config struct {
	DataDir            string
	S3Endpoint         string
	S3Region           string
	S3Bucket           string
	S3AccessKey        string
	S3SecretKey        string
	TransferRetries    int
	TransferBackoff    time.Duration
	TombstoneRetention time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "daybook"
	c.S3Region = "us-east-1"
	c.TransferRetries = 3
	c.TransferBackoff = 500 * time.Millisecond
	c.TombstoneRetention = 0
}

// Validate reports missing settings that make any sync attempt
// pointless. All violations wrap common.ErrConfig.
func (c *Config) Validate() error {
	if c.S3Bucket == "" {
		return fmt.Errorf("%w: s3 bucket is required", common.ErrConfig)
	}
	if c.S3Region == "" {
		return fmt.Errorf("%w: s3 region is required", common.ErrConfig)
	}
	if c.S3AccessKey == "" || c.S3SecretKey == "" {
		return fmt.Errorf("%w: s3 credentials are required", common.ErrConfig)
	}
	if c.TransferRetries < 0 {
		return fmt.Errorf("%w: transfer retries must not be negative", common.ErrConfig)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
