package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogpessoal/internal/client/forms"
	"github.com/dmitrijs2005/blogpessoal/internal/client/guard"
)

func (a *App) ListPosts(ctx context.Context) error {
	if err := a.nav.Navigate(guard.ViewPosts); err != nil {
		return err
	}
	return a.showPosts(ctx)
}

func (a *App) showPosts(ctx context.Context) error {
	l, err := a.postService.List(ctx)
	if err != nil {
		return err
	}
	a.printStale(l.Stale, l.SyncedAt)
	printPosts(a.out, l.Items)
	return nil
}

func (a *App) SearchPosts(ctx context.Context, query string) error {
	if err := a.nav.Navigate(guard.ViewPosts); err != nil {
		return err
	}
	posts, err := a.postService.Search(ctx, query)
	if err != nil {
		return err
	}
	printPosts(a.out, posts)
	return nil
}

func (a *App) AddPost(ctx context.Context) error {
	if err := a.nav.Navigate(guard.ViewNewPost); err != nil {
		return err
	}

	form, err := a.readPostForm(ctx, forms.PostForm{})
	if err != nil {
		return err
	}
	saved, err := a.postService.Save(ctx, form)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Post %d published.\n", saved.ID)
	return a.nav.Navigate(guard.ViewPosts)
}

func (a *App) EditPost(ctx context.Context, rawID string) error {
	if err := a.nav.Navigate(guard.ViewNewPost); err != nil {
		return err
	}
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	current, err := a.postService.Get(ctx, id)
	if err != nil {
		return err
	}

	seed := forms.PostForm{ID: id, Title: current.Title, Text: current.Text}
	if current.Theme != nil {
		seed.ThemeID = current.Theme.ID
	}
	form, err := a.readPostForm(ctx, seed)
	if err != nil {
		return err
	}
	if _, err := a.postService.Save(ctx, form); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Post %d updated.\n", id)
	return a.nav.Navigate(guard.ViewPosts)
}

func (a *App) DeletePost(ctx context.Context, rawID string) error {
	if err := a.nav.Navigate(guard.ViewPosts); err != nil {
		return err
	}
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete post %d?", id), a.out)
	if err != nil || !ok {
		return err
	}

	if err := a.postService.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Post %d deleted.\n", id)
	return nil
}

// readPostForm prompts for every post field. Fields of seed are offered as
// defaults, so the same prompts serve creation and editing.
func (a *App) readPostForm(ctx context.Context, seed forms.PostForm) (forms.PostForm, error) {
	form := seed
	var err error

	if seed.ID == 0 {
		form.Title, err = getSimpleText(a.reader, "Title", a.out)
	} else {
		form.Title, err = GetTextWithDefault(a.reader, "Title", seed.Title, a.out)
	}
	if err != nil {
		return form, err
	}

	prompt := "Text"
	if seed.ID != 0 {
		prompt = "Text (leave empty to keep the current one)"
	}
	text, err := GetMultiline(a.reader, prompt, a.out)
	if err != nil {
		return form, err
	}
	if text != "" || seed.ID == 0 {
		form.Text = text
	}

	if l, err := a.themeService.List(ctx); err == nil {
		printThemes(a.out, l.Items)
	}
	current := ""
	if seed.ThemeID != 0 {
		current = fmt.Sprint(seed.ThemeID)
	}
	rawTheme, err := GetTextWithDefault(a.reader, "Theme id", current, a.out)
	if err != nil {
		return form, err
	}
	form.ThemeID = 0
	if rawTheme != "" {
		if form.ThemeID, err = parseID(rawTheme); err != nil {
			return form, err
		}
	}
	return form, nil
}
