package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/client/api"
	"github.com/dmitrijs2005/blogpessoal/internal/client/forms"
	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
	"github.com/dmitrijs2005/blogpessoal/internal/client/repositories/cache"
	"github.com/dmitrijs2005/blogpessoal/internal/logging"
)

type ThemeService interface {
	List(ctx context.Context) (Listing[models.Theme], error)
	Get(ctx context.Context, id int64) (*models.Theme, error)
	Search(ctx context.Context, description string) ([]models.Theme, error)
	// Save creates the theme when form.ID is zero and updates it otherwise.
	Save(ctx context.Context, form forms.ThemeForm) (*models.Theme, error)
	Delete(ctx context.Context, id int64) error
}

type themeService struct {
	client api.ThemeAPI
	cache  cache.Repository
	logger logging.Logger
	now    func() time.Time
}

func NewThemeService(client api.ThemeAPI, cache cache.Repository, logger logging.Logger) ThemeService {
	return &themeService{client: client, cache: cache, logger: orDiscard(logger), now: time.Now}
}

func (s *themeService) List(ctx context.Context) (Listing[models.Theme], error) {
	l, err := listWithFallback(ctx, s.logger, s.now(), s.client.ListThemes, s.cache.ReplaceThemes, s.cache.Themes)
	if err != nil {
		return l, fmt.Errorf("list themes: %w", err)
	}
	return l, nil
}

func (s *themeService) Get(ctx context.Context, id int64) (*models.Theme, error) {
	t, err := s.client.GetTheme(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get theme %d: %w", id, err)
	}
	return t, nil
}

func (s *themeService) Search(ctx context.Context, description string) ([]models.Theme, error) {
	themes, err := s.client.SearchThemes(ctx, description)
	if err != nil {
		return nil, fmt.Errorf("search themes: %w", err)
	}
	return themes, nil
}

func (s *themeService) Save(ctx context.Context, form forms.ThemeForm) (*models.Theme, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	var (
		saved *models.Theme
		err   error
	)
	if form.ID == 0 {
		saved, err = s.client.CreateTheme(ctx, form.Theme())
	} else {
		saved, err = s.client.UpdateTheme(ctx, form.Theme())
	}
	if err != nil {
		return nil, fmt.Errorf("save theme: %w", err)
	}
	s.logger.Debug(ctx, "theme saved", "theme_id", saved.ID)
	return saved, nil
}

func (s *themeService) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeleteTheme(ctx, id); err != nil {
		return fmt.Errorf("delete theme %d: %w", id, err)
	}
	return nil
}
