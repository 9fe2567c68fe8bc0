package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/client/photos"
)

// Config holds runtime settings for the blog CLI.
//
// Fields:
//   - ServerURL: base URL of the blog REST backend.
//   - RequestTimeout: upper bound of a single backend request.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - CachePath: SQLite file keeping the last theme/post listings.
//   - LogLevel: debug, info, warn or error.
//   - RateLimit / RateBurst: outgoing request throttle; RateLimit <= 0 disables it.
//   - S3*: optional object storage for profile pictures.
type Config struct {
	ServerURL           string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	CachePath           string
	LogLevel            string
	RateLimit           float64
	RateBurst           int

	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
	S3PublicURL    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.CachePath = defaultCachePath()
	c.LogLevel = "info"
	c.RateLimit = 0
	c.RateBurst = 5
	c.S3Region = "us-east-1"
}

// PhotoConfig returns the photo storage settings.
func (c *Config) PhotoConfig() photos.Config {
	return photos.Config{
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
		AccessKey:    c.S3AccessKey,
		SecretKey:    c.S3SecretKey,
		PublicURL:    c.S3PublicURL,
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "blogpessoal-cache.db"
	}
	return filepath.Join(dir, "blogpessoal", "cache.db")
}
