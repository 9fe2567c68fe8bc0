// Package cache keeps the last theme and post listings fetched from the
// backend so they can still be shown while the backend is unreachable.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
)

// ErrEmpty means the listing was never cached.
var ErrEmpty = errors.New("nothing cached yet")

type Repository interface {
	ReplaceThemes(ctx context.Context, themes []models.Theme, at time.Time) error
	Themes(ctx context.Context) ([]models.Theme, time.Time, error)
	ReplacePosts(ctx context.Context, posts []models.Post, at time.Time) error
	Posts(ctx context.Context) ([]models.Post, time.Time, error)
	Clear(ctx context.Context) error
}
