package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
	"github.com/dmitrijs2005/blogpessoal/internal/common"
	"github.com/dmitrijs2005/blogpessoal/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// maxErrorBody caps how much of an error response is kept in StatusError.
const maxErrorBody = 512

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	token   TokenSource
	limiter *rate.Limiter
	logger  logging.Logger
}

type Option func(*HTTPClient)

// WithTimeout bounds every request, including reading the response body.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying *http.Client (tests use the one of
// an httptest.Server).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.token = ts }
}

// WithRateLimit throttles outgoing requests to rps per second. A non-positive
// rps disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *HTTPClient) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// NewHTTPClient builds a client for the backend rooted at baseURL, e.g.
// "http://localhost:8080".
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidServerAddr, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidServerAddr, baseURL)
	}

	c := &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: 10 * time.Second},
		token:   func() string { return "" },
		logger:  logging.NewDiscardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Close releases idle connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// Ping reports whether the backend answers HTTP at all. Any status counts as
// reachable; only transport failures yield ErrUnavailable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.String()+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.UserLogin, error) {
	var out models.UserLogin
	if err := c.do(ctx, http.MethodPost, "/usuarios/logar", creds, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, user models.User) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPost, "/usuarios/cadastrar", user, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/usuarios/"+strconv.FormatInt(id, 10), nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.do(ctx, http.MethodGet, "/usuarios/all", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPut, "/usuarios/atualizar", user, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListThemes(ctx context.Context) ([]models.Theme, error) {
	var out []models.Theme
	if err := c.do(ctx, http.MethodGet, "/temas", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetTheme(ctx context.Context, id int64) (*models.Theme, error) {
	var out models.Theme
	if err := c.do(ctx, http.MethodGet, "/temas/"+strconv.FormatInt(id, 10), nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SearchThemes(ctx context.Context, description string) ([]models.Theme, error) {
	var out []models.Theme
	if err := c.do(ctx, http.MethodGet, "/temas/descricao/"+url.PathEscape(description), nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateTheme(ctx context.Context, theme models.Theme) (*models.Theme, error) {
	var out models.Theme
	if err := c.do(ctx, http.MethodPost, "/temas", theme, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateTheme(ctx context.Context, theme models.Theme) (*models.Theme, error) {
	var out models.Theme
	if err := c.do(ctx, http.MethodPut, "/temas", theme, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteTheme(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/temas/"+strconv.FormatInt(id, 10), nil, nil, true)
}

func (c *HTTPClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	var out []models.Post
	if err := c.do(ctx, http.MethodGet, "/postagens", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	var out models.Post
	if err := c.do(ctx, http.MethodGet, "/postagens/"+strconv.FormatInt(id, 10), nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SearchPosts(ctx context.Context, title string) ([]models.Post, error) {
	var out []models.Post
	if err := c.do(ctx, http.MethodGet, "/postagens/titulo/"+url.PathEscape(title), nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, post models.Post) (*models.Post, error) {
	var out models.Post
	if err := c.do(ctx, http.MethodPost, "/postagens", post, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdatePost(ctx context.Context, post models.Post) (*models.Post, error) {
	var out models.Post
	if err := c.do(ctx, http.MethodPut, "/postagens", post, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/postagens/"+strconv.FormatInt(id, 10), nil, nil, true)
}

// do sends one JSON request and decodes the JSON answer into out (when out
// is non-nil and the response has a body).
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any, auth bool) error {
	var token string
	if auth {
		token = c.token()
		if token == "" {
			return ErrUnauthorized
		}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return err
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, token)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "request done",
		"method", method, "path", path, "status", resp.StatusCode,
		"duration", time.Since(started), "request_id", requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method: method,
			Path:   path,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(b)),
			kind:   kindForStatus(resp.StatusCode),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
