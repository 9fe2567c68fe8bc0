// Package devserver runs a development backend that speaks the blog REST
// contract, so the CLI can be exercised without the production service.
package devserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/devserver/config"
	"github.com/dmitrijs2005/blogpessoal/internal/devserver/handler"
	"github.com/dmitrijs2005/blogpessoal/internal/devserver/metrics"
	"github.com/dmitrijs2005/blogpessoal/internal/devserver/store"
	"github.com/dmitrijs2005/blogpessoal/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *http.Server
}

func NewApp(cfg *config.Config, logger logging.Logger) *App {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := handler.NewRouter(&handler.RouterDeps{
		Store:     store.NewMemory(),
		Logger:    logger,
		Collector: metrics.NewCollector(reg),
		Gatherer:  reg,
		Secret:    []byte(cfg.SecretKey),
		TokenTTL:  cfg.TokenValidity,
	})

	return &App{
		config: cfg,
		logger: logger,
		server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// drains in-flight requests for at most ShutdownTimeout.
func (app *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", app.config.Addr, err)
	}
	return app.serve(ctx, ln)
}

func (app *App) serve(ctx context.Context, ln net.Listener) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	app.initSignalHandler(cancelFunc)

	app.logger.Info(ctx, "Starting server...", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			cancelFunc()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()
	shutdownErr := app.server.Shutdown(shutdownCtx)
	wg.Wait()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	default:
	}
	if shutdownErr != nil {
		return fmt.Errorf("shutdown: %w", shutdownErr)
	}
	app.logger.Info(ctx, "Server stopped")
	return nil
}
