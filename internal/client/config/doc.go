// Package config loads runtime configuration for the blog CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend, e.g. http://localhost:8080
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-db string  local cache database
//	-l string   log level
//	-r float    outgoing requests per second (0 = unlimited)
//
// # JSON schema
//
// Durations are timex.Duration values, so they can be strings like "3s" or
// integer nanoseconds. Photo storage is configured in JSON only:
//
//	{
//	  "server_url": "http://localhost:8080",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "cache_path": "/home/ana/.cache/blogpessoal/cache.db",
//	  "log_level": "info",
//	  "rate_limit": 5,
//	  "rate_burst": 5,
//	  "s3_bucket": "avatars",
//	  "s3_region": "us-east-1",
//	  "s3_base_endpoint": "http://127.0.0.1:9000",
//	  "s3_access_key": "minio",
//	  "s3_secret_key": "minio123",
//	  "s3_public_url": ""
//	}
package config
