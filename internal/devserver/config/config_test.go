package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Len(t, cfg.SecretKey, 2*secretSize)

	want := &Config{
		Addr:            ":8080",
		SecretKey:       cfg.SecretKey,
		TokenValidity:   time.Hour,
		LogLevel:        "info",
		ShutdownTimeout: 5 * time.Second,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_JSONThenFlags(t *testing.T) {
	path := writeConfig(t, `{"addr":":9090","secret_key":"json","token_validity":"90m","shutdown_timeout":1000000000}`)

	cfg, err := LoadConfig([]string{"-c", path, "-s", "flag", "-l", "debug", "-x", "ignored"})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "flag", cfg.SecretKey)
	assert.Equal(t, 90*time.Minute, cfg.TokenValidity)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_TokenValidityFlagInMinutes(t *testing.T) {
	cfg, err := LoadConfig([]string{"-t", "15"})
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.TokenValidity)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"-config", filepath.Join(t.TempDir(), "nope.json")}},
		{"bad json", []string{"-c", writeConfig(t, "{")}},
		{"bad duration", []string{"-c", writeConfig(t, `{"token_validity":"soon"}`)}},
		{"non-numeric validity", []string{"-t", "abc"}},
		{"zero validity", []string{"-t", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.args)
			require.Error(t, err)
		})
	}
}

func TestLoadConfig_GeneratedSecretsDiffer(t *testing.T) {
	a, err := LoadConfig(nil)
	require.NoError(t, err)
	b, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.SecretKey, b.SecretKey)

	c, err := LoadConfig([]string{"-s", "fixed"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", c.SecretKey)
}
