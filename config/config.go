package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings read from the environment
type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	AWSRegion      string   `env:"AWS_REGION" envDefault:"ap-southeast-1"`
	S3Bucket       string   `env:"S3_BUCKET_NAME"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
