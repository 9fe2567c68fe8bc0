package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/blogpessoal/internal/flagx"
	"github.com/dmitrijs2005/blogpessoal/internal/timex"
)

// JsonConfig is the on-disk shape of Config. Durations accept "90m" as well
// as integer nanoseconds.
type JsonConfig struct {
	Addr            string         `json:"addr"`
	SecretKey       string         `json:"secret_key"`
	TokenValidity   timex.Duration `json:"token_validity"`
	LogLevel        string         `json:"log_level"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays cfg with the file named by -c or -config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	jc := JsonConfig{
		Addr:            cfg.Addr,
		SecretKey:       cfg.SecretKey,
		TokenValidity:   timex.Duration{Duration: cfg.TokenValidity},
		LogLevel:        cfg.LogLevel,
		ShutdownTimeout: timex.Duration{Duration: cfg.ShutdownTimeout},
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Addr = jc.Addr
	cfg.SecretKey = jc.SecretKey
	cfg.TokenValidity = jc.TokenValidity.Duration
	cfg.LogLevel = jc.LogLevel
	cfg.ShutdownTimeout = jc.ShutdownTimeout.Duration
	return nil
}
