// internal/config/config.go
package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Dispatch DispatchConfig
}

// DispatchConfig tunes the simulated outbound channel. PerMessageDelay
// stands in for network latency; FailureRate is the fraction of messages
// that fail (0 disables failures, useful in tests).
type DispatchConfig struct {
	PerMessageDelay time.Duration `env:"DISPATCH_DELAY,        default=150ms"`
	FailureRate     float64       `env:"DISPATCH_FAILURE_RATE, default=0.1"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
