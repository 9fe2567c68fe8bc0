package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/client/api"
	"github.com/dmitrijs2005/blogpessoal/internal/client/config"
	"github.com/dmitrijs2005/blogpessoal/internal/client/guard"
	"github.com/dmitrijs2005/blogpessoal/internal/client/photos"
	"github.com/dmitrijs2005/blogpessoal/internal/client/repositories/cache"
	"github.com/dmitrijs2005/blogpessoal/internal/client/services"
	"github.com/dmitrijs2005/blogpessoal/internal/client/session"
	"github.com/dmitrijs2005/blogpessoal/internal/client/storage"
	"github.com/dmitrijs2005/blogpessoal/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single reachability probe.
const pingTimeout = 3 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger

	store          *session.Store
	nav            *guard.Navigator
	authService    services.AuthService
	themeService   services.ThemeService
	postService    services.PostService
	profileService services.ProfileService

	reader *bufio.Reader
	out    io.Writer

	mu   sync.Mutex
	mode Mode

	closers []func() error
}

// NewApp wires the local cache, the backend client, the session store, the
// navigator and the services together.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.CachePath)
	if err != nil {
		logger.Error(ctx, "error initializing cache database", "path", c.CachePath, "error", err)
		return nil, err
	}

	// The client reads the token from the store at send time; the store needs
	// the client to log in.
	var store *session.Store
	apiClient, err := api.NewHTTPClient(c.ServerURL,
		api.WithTimeout(c.RequestTimeout),
		api.WithTokenSource(func() string { return store.Token() }),
		api.WithRateLimit(c.RateLimit, c.RateBurst),
		api.WithLogger(logger),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	store = session.NewStore(apiClient, logger)

	uploader, err := photos.NewUploader(ctx, c.PhotoConfig())
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	repo := cache.NewSQLiteRepository(db)
	a := newApp(c, logger, store,
		services.NewAuthService(apiClient, store, repo, uploader, logger),
		services.NewThemeService(apiClient, repo, logger),
		services.NewPostService(apiClient, store, repo, logger),
		services.NewProfileService(apiClient, store, uploader, logger),
		bufio.NewReader(os.Stdin), os.Stdout,
	)
	a.closers = append(a.closers, db.Close)
	return a, nil
}

func newApp(
	c *config.Config,
	logger logging.Logger,
	store *session.Store,
	as services.AuthService,
	ts services.ThemeService,
	ps services.PostService,
	prs services.ProfileService,
	reader *bufio.Reader,
	out io.Writer,
) *App {
	a := &App{
		config:         c,
		logger:         logger,
		store:          store,
		nav:            guard.New(store),
		authService:    as,
		themeService:   ts,
		postService:    ps,
		profileService: prs,
		reader:         reader,
		out:            out,
		mode:           ModeOnline,
	}
	a.nav.OnNavigate(func(from, to guard.View) {
		a.logger.Debug(context.Background(), "navigated", "from", string(from), "to", string(to))
	})
	return a
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "switched mode", "mode", string(mode))
		fmt.Fprintf(a.out, "\n[switched to %s mode]\n", mode)
	}
}

// Run starts the REPL and blocks until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)
	a.Root(ctx)
}

func (a *App) Close(ctx context.Context) {
	a.nav.Close()
	if err := a.authService.Close(ctx); err != nil {
		a.logger.Warn(ctx, "error closing backend client", "error", err)
	}
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn(ctx, "error releasing resource", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.Authenticated()
}

// checkOnline probes the backend once and updates the mode.
func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := a.authService.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher probes the backend every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
