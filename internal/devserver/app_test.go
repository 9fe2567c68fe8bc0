package devserver

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/devserver/config"
	"github.com/dmitrijs2005/blogpessoal/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_ServesUntilCancelled(t *testing.T) {
	var cfg config.Config
	cfg.LoadDefaults()
	cfg.ShutdownTimeout = time.Second

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	app := NewApp(&cfg, logging.NewDiscardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, ln) }()

	url := "http://" + ln.Addr().String()
	require.Eventually(t, func() bool {
		resp, err := http.Get(url + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	resp, err := http.Get(url + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "go_goroutines")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestApp_RunFailsOnBadAddress(t *testing.T) {
	var cfg config.Config
	cfg.LoadDefaults()
	cfg.Addr = "256.0.0.1:bad"

	err := NewApp(&cfg, logging.NewDiscardLogger()).Run(context.Background())
	require.Error(t, err)
}
