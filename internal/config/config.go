// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the service configuration
type Config struct {
	// HTTPAddr is the listen address for the API server
	HTTPAddr string `env:"GATHER_HTTP_ADDR" envDefault:":8080"`

	// RedisAddr points at the shared store backing the remotes
	RedisAddr     string `env:"GATHER_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"GATHER_REDIS_PASSWORD"`
	RedisDB       int    `env:"GATHER_REDIS_DB" envDefault:"0"`

	// SyncInterval drives the periodic reconciliation pass
	SyncInterval time.Duration `env:"GATHER_SYNC_INTERVAL" envDefault:"30s"`

	// DefaultMaxParticipants applies to sessions created without an
	// explicit capacity
	DefaultMaxParticipants int `env:"GATHER_DEFAULT_CAPACITY" envDefault:"10"`

	// SendgridAPIKey enables email invitations when set
	SendgridAPIKey  string `env:"SENDGRID_API_KEY"`
	InviteFromName  string `env:"GATHER_INVITE_FROM_NAME" envDefault:"Dayspring"`
	InviteFromEmail string `env:"GATHER_INVITE_FROM_EMAIL" envDefault:"invites@dayspring.app"`
}

// Load parses the configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}
