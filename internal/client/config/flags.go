package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/daybook/internal/flagx"
)

// parseEnv overlays credential and bucket settings from the DAYBOOK_S3_*
// environment variables. Secrets belong in the environment or the JSON
// config rather than on the command line.
func parseEnv(cfg *Config) {
	if v := os.Getenv("DAYBOOK_S3_BUCKET"); v != "" {
		cfg.S3Bucket = v
	}
	if v := os.Getenv("DAYBOOK_S3_ACCESS_KEY"); v != "" {
		cfg.S3AccessKey = v
	}
	if v := os.Getenv("DAYBOOK_S3_SECRET_KEY"); v != "" {
		cfg.S3SecretKey = v
	}
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   data directory for the local database and index
//	-e string   endpoint of an S3-compatible server (empty for AWS)
//	-r string   s3 region
//	-b string   s3 bucket name
//
// The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e", "-r", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.S3Endpoint, "e", cfg.S3Endpoint, "endpoint of an S3-compatible server")
	fs.StringVar(&cfg.S3Region, "r", cfg.S3Region, "s3 region")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "s3 bucket")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
