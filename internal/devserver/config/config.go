// Package config handles configuration for the development backend,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/common"
)

// secretSize is the number of random bytes of a generated secret.
const secretSize = 32

// Config holds runtime settings for the development backend.
//
// Fields:
//   - Addr: bind address of the HTTP listener.
//   - SecretKey: HMAC secret for signing JWTs (HS256). When empty a random one
//     is generated, so tokens do not survive a restart.
//   - TokenValidity: lifetime of issued tokens.
//   - LogLevel: debug, info, warn or error.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
type Config struct {
	Addr            string
	SecretKey       string
	TokenValidity   time.Duration
	LogLevel        string
	ShutdownTimeout time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.SecretKey = ""
	c.TokenValidity = 60 * time.Minute
	c.LogLevel = "info"
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if cfg.SecretKey == "" {
		secret, err := common.MakeRandHexString(secretSize)
		if err != nil {
			return nil, fmt.Errorf("generate secret key: %w", err)
		}
		cfg.SecretKey = secret
	}
	return cfg, nil
}
