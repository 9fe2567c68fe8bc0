package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogpessoal/internal/client/forms"
	"github.com/dmitrijs2005/blogpessoal/internal/client/guard"
	"github.com/dmitrijs2005/blogpessoal/internal/common"
)

func (a *App) Profile(ctx context.Context) error {
	if err := a.nav.Navigate(guard.ViewProfile); err != nil {
		return err
	}
	u, err := a.profileService.Current(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Name:     %s\nUsername: %s\n", u.Name, u.Username)
	if u.Photo != "" {
		fmt.Fprintf(a.out, "Photo:    %s\n", u.Photo)
	}
	if len(u.Posts) > 0 {
		fmt.Fprintf(a.out, "Posts (%d):\n", len(u.Posts))
		printPosts(a.out, u.Posts)
	}
	return nil
}

// EditProfile updates name and photo. The password is always asked for,
// with the same rules as registration.
func (a *App) EditProfile(ctx context.Context) error {
	if err := a.nav.Navigate(guard.ViewProfile); err != nil {
		return err
	}
	current := a.store.Current()

	var (
		form forms.ProfileUpdate
		err  error
	)
	if form.Name, err = GetTextWithDefault(a.reader, "Name", current.DisplayName, a.out); err != nil {
		return err
	}
	if form.Photo, err = GetTextWithDefault(a.reader, "Photo (URL or local file)", current.Photo, a.out); err != nil {
		return err
	}
	password, err := getPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.reader, "Confirm new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	form.Password, form.Confirm = string(password), string(confirm)

	if _, err := a.profileService.Update(ctx, &form); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}
