package config

// Default configuration values
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "INFO"
	DefaultLogFormat   = "json"
	DefaultEnvironment = "dev"
	DefaultVersion     = "dev"
	DefaultDBName      = "shopcore"
)
