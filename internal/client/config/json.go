package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/daybook/internal/flagx"
	"github.com/dmitrijs2005/daybook/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can specify intervals either as strings like
// "3s" or as integer nanoseconds. After parsing, values are copied into
// the runtime Config.
type JsonConfig struct {
	DataDir            *string         `json:"data_dir"`
	S3Endpoint         *string         `json:"s3_endpoint"`
	S3Region           *string         `json:"s3_region"`
	S3Bucket           *string         `json:"s3_bucket"`
	S3AccessKey        *string         `json:"s3_access_key"`
	S3SecretKey        *string         `json:"s3_secret_key"`
	TransferRetries    *int            `json:"transfer_retries"`
	TransferBackoff    *timex.Duration `json:"transfer_backoff"`
	TombstoneRetention *timex.Duration `json:"tombstone_retention"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file
// path comes from the -c/-config flags via flagx.JsonConfigFlags; when
// no path is given the function returns without touching cfg. Fields
// absent from the file keep their earlier values. Read or unmarshal
// errors panic, matching the fail-fast startup policy.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.S3Endpoint != nil {
		cfg.S3Endpoint = *jc.S3Endpoint
	}
	if jc.S3Region != nil {
		cfg.S3Region = *jc.S3Region
	}
	if jc.S3Bucket != nil {
		cfg.S3Bucket = *jc.S3Bucket
	}
	if jc.S3AccessKey != nil {
		cfg.S3AccessKey = *jc.S3AccessKey
	}
	if jc.S3SecretKey != nil {
		cfg.S3SecretKey = *jc.S3SecretKey
	}
	if jc.TransferRetries != nil {
		cfg.TransferRetries = *jc.TransferRetries
	}
	if jc.TransferBackoff != nil {
		cfg.TransferBackoff = time.Duration(jc.TransferBackoff.Duration)
	}
	if jc.TombstoneRetention != nil {
		cfg.TombstoneRetention = time.Duration(jc.TombstoneRetention.Duration)
	}
}
