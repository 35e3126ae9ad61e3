package config

import "time"

// Default values applied when an environment variable is absent
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "craftmarket"
	DefaultVersion         = "dev"
	DefaultDBUser          = "postgres"
	DefaultDBPassword      = "postgres"
	DefaultDBHost          = "localhost"
	DefaultDBPort          = "5432"
	DefaultDBName          = "craftmarket"
	DefaultDBMaxConns      = 10
	DefaultDBMaxIdleTime   = 5 * time.Minute
	DefaultDBMaxLifetime   = 30 * time.Minute
	DefaultCostMaxLayers   = 5
	DefaultRequestTimeout  = 10 * time.Second
	DefaultJobCacheSize    = 64
	DefaultJobCacheTTL     = time.Hour
	DefaultRateLimitRPS    = 20.0
	DefaultRateLimitBurst  = 40
	DefaultShutdownTimeout = 15 * time.Second
)

// Bounds enforced by Validate
const (
	MinCostMaxLayers = 1
	MaxCostMaxLayers = 20
)
