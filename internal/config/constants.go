package config

const (
	// Service information
	ServiceName    = "file-locator"
	ServiceVersion = "v1.0.0"

	// DefaultBasePath is where the locator endpoint is mounted
	DefaultBasePath = "/api/file"

	// Default timeouts (seconds)
	DefaultReadTimeout     = 30
	DefaultWriteTimeout    = 30
	DefaultShutdownTimeout = 30

	// EnvPrefix scopes environment overrides, e.g. LOCATOR_PORT
	EnvPrefix = "LOCATOR"
)

// Environment-specific constants
var (
	ProductionLogLevel  = "warn"
	StagingLogLevel     = "info"
	DevelopmentLogLevel = "debug"
	TestLogLevel        = "error"
)
