package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/client/api"
	"github.com/dmitrijs2005/blogpessoal/internal/logging"
)

// Listing is the result of a list call. Stale is set when the backend was
// unreachable and Items come from the local cache, taken at SyncedAt.
type Listing[T any] struct {
	Items    []T
	Stale    bool
	SyncedAt time.Time
}

func orDiscard(l logging.Logger) logging.Logger {
	if l == nil {
		return logging.NewDiscardLogger()
	}
	return l
}

// listWithFallback fetches a listing online and refreshes the cache with it.
// When the backend is unavailable the cached copy is served instead; if
// there is none the original error is returned.
func listWithFallback[T any](
	ctx context.Context,
	logger logging.Logger,
	now time.Time,
	fetch func(context.Context) ([]T, error),
	store func(context.Context, []T, time.Time) error,
	load func(context.Context) ([]T, time.Time, error),
) (Listing[T], error) {
	items, err := fetch(ctx)
	if err == nil {
		if cerr := store(ctx, items, now); cerr != nil {
			logger.Warn(ctx, "failed to refresh cache", "error", cerr)
		}
		return Listing[T]{Items: items, SyncedAt: now}, nil
	}
	if !errors.Is(err, api.ErrUnavailable) {
		return Listing[T]{}, err
	}

	cached, at, cerr := load(ctx)
	if cerr != nil {
		logger.Debug(ctx, "no cached listing to fall back on", "error", cerr)
		return Listing[T]{}, err
	}
	logger.Info(ctx, "serving cached listing", "synced_at", at)
	return Listing[T]{Items: cached, Stale: true, SyncedAt: at}, nil
}
