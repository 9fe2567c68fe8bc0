package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogpessoal/internal/client/forms"
	"github.com/dmitrijs2005/blogpessoal/internal/client/guard"
	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
	"github.com/dmitrijs2005/blogpessoal/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Register shows the sign-up page. A form rejected by validation is never
// sent; on success the user is taken to the login page.
func (a *App) Register(ctx context.Context) error {
	if err := a.nav.Navigate(guard.ViewRegister); err != nil {
		return err
	}

	var (
		form forms.Registration
		err  error
	)
	if form.Name, err = getSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if form.Username, err = getSimpleText(a.reader, "Username (email)", a.out); err != nil {
		return err
	}
	if form.Photo, err = getSimpleText(a.reader, "Photo (URL or local file, optional)", a.out); err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	form.Password, form.Confirm = string(password), string(confirm)

	user, err := a.authService.Register(ctx, &form)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account %s created, you can log in now.\n", user.Username)
	return a.nav.Navigate(guard.ViewLogin)
}

// Login shows the login page and authenticates. The navigator moves to
// /home on success; on failure the session is untouched.
func (a *App) Login(ctx context.Context) error {
	if err := a.nav.Navigate(guard.ViewLogin); err != nil {
		return err
	}

	username, err := getSimpleText(a.reader, "Username (email)", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.Login(ctx, models.Credentials{Username: username, Password: string(password)})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", s.DisplayName)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	wasLoggedIn := a.isLoggedIn()
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	if wasLoggedIn {
		fmt.Fprintln(a.out, "Logged out.")
	}
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	s := a.store.Current()
	if !s.Authenticated() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> (id %d)\n", s.DisplayName, s.Username, s.UserID)
	if !s.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "Session valid until %s\n", s.ExpiresAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// Go moves to the view at path and shows it.
func (a *App) Go(ctx context.Context, path string) error {
	v, err := guard.ParseView(path)
	if err != nil {
		return err
	}

	switch v {
	case guard.ViewRoot:
		if err := a.nav.Navigate(v); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Blog Pessoal: use 'login' or 'register'.")
		return nil
	case guard.ViewLogin:
		return a.Login(ctx)
	case guard.ViewRegister:
		return a.Register(ctx)
	case guard.ViewHome:
		return a.Home(ctx)
	case guard.ViewThemes:
		return a.ListThemes(ctx)
	case guard.ViewNewTheme:
		return a.AddTheme(ctx)
	case guard.ViewPosts:
		return a.ListPosts(ctx)
	case guard.ViewNewPost:
		return a.AddPost(ctx)
	case guard.ViewProfile:
		return a.Profile(ctx)
	}
	return nil
}

// Home greets the user and shows the latest posts.
func (a *App) Home(ctx context.Context) error {
	if err := a.nav.Navigate(guard.ViewHome); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Hello, %s! Here are the latest posts:\n", a.store.Current().DisplayName)
	return a.showPosts(ctx)
}
