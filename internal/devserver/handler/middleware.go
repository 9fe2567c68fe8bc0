package handler

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/common"
	"github.com/dmitrijs2005/blogpessoal/internal/devserver/auth"
	"github.com/dmitrijs2005/blogpessoal/internal/devserver/metrics"
	"github.com/dmitrijs2005/blogpessoal/internal/devserver/store"
	"github.com/dmitrijs2005/blogpessoal/internal/logging"
	"github.com/go-chi/chi/v5"
)

type ctxKey int

const userIDKey ctxKey = iota

var errNoUser = errors.New("no authenticated user in context")

func userIDFromContext(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(userIDKey).(int64)
	if !ok {
		return 0, errNoUser
	}
	return id, nil
}

// statusRecorder remembers the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.written {
		sr.statusCode = code
		sr.written = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.written {
		sr.statusCode = http.StatusOK
		sr.written = true
	}
	return sr.ResponseWriter.Write(b)
}

// observe logs every request and records it in the collector, labelled by
// the matched route pattern rather than the raw path.
func observe(logger logging.Logger, collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := "unmatched"
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				route = rc.RoutePattern()
			}
			duration := time.Since(start)
			collector.RecordRequest(route, r.Method, rec.statusCode, duration)

			args := []any{
				"method", r.Method,
				"route", route,
				"status", rec.statusCode,
				"duration_ms", float64(duration.Nanoseconds()) / float64(time.Millisecond),
				"request_id", r.Header.Get(common.RequestIDHeaderName),
			}
			switch {
			case rec.statusCode >= 500:
				logger.Error(r.Context(), "http_request", args...)
			case rec.statusCode >= 400:
				logger.Warn(r.Context(), "http_request", args...)
			default:
				logger.Info(r.Context(), "http_request", args...)
			}
		})
	}
}

// recovery turns a handler panic into a 500.
func recovery(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error(r.Context(), "panic recovered",
						"panic", rec, "method", r.Method, "path", r.URL.Path, "stack", string(debug.Stack()))
					writeError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// requireAuth accepts requests whose Authorization header carries a valid
// token of an existing user.
func requireAuth(users *store.Memory, secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := auth.GetUserIDFromToken(r.Header.Get(common.AuthorizationHeaderName), secret)
			if err != nil {
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}
			if _, err := users.UserByID(id); err != nil {
				writeError(w, http.StatusUnauthorized, "unknown user")
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, id)))
		})
	}
}
