// Package config loads the application configuration from environment
// variables. A .env file, when present, is loaded by main before parsing.
package config

import (
	"encoding/base64"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// SessionSecretLen is the required decoded length of SESSION_SECRET.
// The secret keys AES-256 cookie encryption, so it must be 32 bytes.
const SessionSecretLen = 32

// Config holds everything the process reads from the environment.
// SESSION_SECRET has no default on purpose: startup fails without it.
type Config struct {
	MongoUser     string `env:"MONGODB_USER"`
	MongoPassword string `env:"MONGODB_PASSWORD"`
	MongoHost     string `env:"MONGODB_HOST" envDefault:"localhost:27017"`
	MongoDatabase string `env:"MONGODB_DATABASE" envDefault:"membersite"`
	Port          int    `env:"PORT" envDefault:"3000"`
	SessionSecret string `env:"SESSION_SECRET,required"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config and validates the session secret.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	key, err := base64.StdEncoding.DecodeString(cfg.SessionSecret)
	if err != nil || len(key) != SessionSecretLen {
		return nil, fmt.Errorf("SESSION_SECRET must be a base64-encoded %d-byte key", SessionSecretLen)
	}

	return cfg, nil
}

// MongoURI assembles the connection string from its parts, the same way the
// deployment composes it. Credentials are optional for local instances.
func (c *Config) MongoURI() string {
	if c.MongoUser == "" {
		return fmt.Sprintf("mongodb://%s/%s", c.MongoHost, c.MongoDatabase)
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/%s?retryWrites=true&w=majority",
		c.MongoUser, c.MongoPassword, c.MongoHost, c.MongoDatabase)
}

// Addr returns the listen address in :port form.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
