package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogpessoal/internal/client/forms"
	"github.com/dmitrijs2005/blogpessoal/internal/client/guard"
)

func (a *App) ListThemes(ctx context.Context) error {
	if err := a.nav.Navigate(guard.ViewThemes); err != nil {
		return err
	}
	l, err := a.themeService.List(ctx)
	if err != nil {
		return err
	}
	a.printStale(l.Stale, l.SyncedAt)
	printThemes(a.out, l.Items)
	return nil
}

func (a *App) SearchThemes(ctx context.Context, query string) error {
	if err := a.nav.Navigate(guard.ViewThemes); err != nil {
		return err
	}
	themes, err := a.themeService.Search(ctx, query)
	if err != nil {
		return err
	}
	printThemes(a.out, themes)
	return nil
}

func (a *App) AddTheme(ctx context.Context) error {
	if err := a.nav.Navigate(guard.ViewNewTheme); err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	saved, err := a.themeService.Save(ctx, forms.ThemeForm{Description: description})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Theme %d created.\n", saved.ID)
	return a.nav.Navigate(guard.ViewThemes)
}

func (a *App) EditTheme(ctx context.Context, rawID string) error {
	if err := a.nav.Navigate(guard.ViewNewTheme); err != nil {
		return err
	}
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	current, err := a.themeService.Get(ctx, id)
	if err != nil {
		return err
	}
	description, err := GetTextWithDefault(a.reader, "Description", current.Description, a.out)
	if err != nil {
		return err
	}

	if _, err := a.themeService.Save(ctx, forms.ThemeForm{ID: id, Description: description}); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Theme %d updated.\n", id)
	return a.nav.Navigate(guard.ViewThemes)
}

func (a *App) DeleteTheme(ctx context.Context, rawID string) error {
	if err := a.nav.Navigate(guard.ViewThemes); err != nil {
		return err
	}
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete theme %d and its posts?", id), a.out)
	if err != nil || !ok {
		return err
	}

	if err := a.themeService.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Theme %d deleted.\n", id)
	return nil
}
