package internal

import (
	"strings"
	"time"
)

type Config struct {
	Host      string `env:"HOST,required=true"`
	Port      int    `env:"PORT,required=true"`
	DebugPort int    `env:"DEBUG_PORT"`
	LogLevel  string `env:"LOG_LEVEL,required=true"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`

	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	AuthTokenDuration    time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`
	AuthTimeout          time.Duration `env:"AUTH_TIMEOUT,required=true"`

	RateLimitWindow  time.Duration `env:"RATE_LIMIT_WINDOW,required=true"`
	RateLimitDefault int           `env:"RATE_LIMIT_DEFAULT,required=true"`

	AllowedOrigins string        `env:"ALLOWED_ORIGINS"`
	MetricInterval time.Duration `env:"METRIC_INTERVAL,required=true"`
}

func (c Config) Origins() []string {
	if strings.TrimSpace(c.AllowedOrigins) == "" {
		return nil
	}
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
