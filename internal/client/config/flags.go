package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend (default from Config)
//	-t int      request timeout in seconds
//	-i int      online check interval in seconds
//	-db string  cache database path
//	-l string   log level
//	-r float    outgoing requests per second, 0 disables throttling
//
// Only the flags listed above are picked out of args via flagx.FilterArgs,
// so -c/-config and flags of other components do not interfere.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-i", "-db", "-l", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the blog backend")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.CachePath, "db", cfg.CachePath, "path of the local cache database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.Float64Var(&cfg.RateLimit, "r", cfg.RateLimit, "max requests per second, 0 for unlimited")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if *requestTimeout <= 0 || *onlineCheckInterval <= 0 {
		return fmt.Errorf("parse flags: -t and -i must be positive")
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	return nil
}
