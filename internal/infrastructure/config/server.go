package config

import "time"

// ServerConfig holds HTTP API server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"min=1,max=65535"`

	// Graceful shutdown deadline
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// Request rate limiting
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig holds request rate limiting configuration
type RateLimitConfig struct {
	// Sustained requests per second across all clients
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"min=0"`

	// Burst allowance above the sustained rate
	Burst int `mapstructure:"burst" validate:"min=0"`
}
