package config

import "time"

// Defaults applied when the environment leaves a value unset or unparsable
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "playpredix"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultProfileCacheSize = 5000
	DefaultProfileCacheTTL  = 10 * time.Minute

	DefaultWorkerCount       = 4
	DefaultLockWatchInterval = time.Minute
	DefaultNotifyTopN        = 5
)

// ConfigPathFixtureSchema is the JSON schema used to validate competition fixture files
const ConfigPathFixtureSchema = "configs/schemas/fixture.schema.json"
