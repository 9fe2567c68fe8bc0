package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/blogpessoal/internal/client/api"
	"github.com/dmitrijs2005/blogpessoal/internal/client/forms"
	"github.com/dmitrijs2005/blogpessoal/internal/client/guard"
)

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Go(ctx context.Context, path string) error
	ListThemes(ctx context.Context) error
	AddTheme(ctx context.Context) error
	EditTheme(ctx context.Context, id string) error
	DeleteTheme(ctx context.Context, id string) error
	SearchThemes(ctx context.Context, query string) error
	ListPosts(ctx context.Context) error
	AddPost(ctx context.Context) error
	EditPost(ctx context.Context, id string) error
	DeletePost(ctx context.Context, id string) error
	SearchPosts(ctx context.Context, query string) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: register, login, go <view>, help, exit"
	helpLoggedIn  = "Available commands: themes, addtheme, edittheme <id>, deltheme <id>, searchtheme <text>,\n" +
		"  posts, addpost, editpost <id>, delpost <id>, searchpost <text>,\n" +
		"  profile, editprofile, whoami, go <view>, logout, help, exit\n" +
		"Views: / /login /cadastro /home /temas /cadastrartema /postagens /cadastrarpostagem /perfil"
)

// runREPL reads commands from reader until EOF, "exit" or "quit" and
// dispatches them to a. Errors returned by handlers are reported to the
// user and the loop goes on; none of them is fatal.
//
// The prompt shows the current status (from statusFn):
//
//	blog /temas ana@mail.com (online)>
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "blog %s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)
		if cmd == "" {
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpAnonymous)
			}
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		}

		var cmdErr error
		switch cmd {
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.WhoAmI(ctx)
		case "go":
			if arg == "" {
				fmt.Fprintln(w, "Usage: go <view>")
				continue
			}
			cmdErr = a.Go(ctx, arg)
		case "themes":
			cmdErr = a.ListThemes(ctx)
		case "addtheme":
			cmdErr = a.AddTheme(ctx)
		case "edittheme", "deltheme", "editpost", "delpost":
			if arg == "" {
				fmt.Fprintf(w, "Usage: %s <id>\n", cmd)
				continue
			}
			switch cmd {
			case "edittheme":
				cmdErr = a.EditTheme(ctx, arg)
			case "deltheme":
				cmdErr = a.DeleteTheme(ctx, arg)
			case "editpost":
				cmdErr = a.EditPost(ctx, arg)
			case "delpost":
				cmdErr = a.DeletePost(ctx, arg)
			}
		case "searchtheme", "searchpost":
			if arg == "" {
				fmt.Fprintf(w, "Usage: %s <text>\n", cmd)
				continue
			}
			if cmd == "searchtheme" {
				cmdErr = a.SearchThemes(ctx, arg)
			} else {
				cmdErr = a.SearchPosts(ctx, arg)
			}
		case "posts":
			cmdErr = a.ListPosts(ctx)
		case "addpost":
			cmdErr = a.AddPost(ctx)
		case "profile":
			cmdErr = a.Profile(ctx)
		case "editprofile":
			cmdErr = a.EditProfile(ctx)
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
			continue
		}

		if cmdErr != nil {
			fmt.Fprintln(w, "Error:", describeError(cmdErr))
		}
	}
}

// describeError turns an error into the message shown to the user.
func describeError(err error) string {
	var invalid forms.InvalidInput
	switch {
	case errors.As(err, &invalid):
		var b strings.Builder
		b.WriteString("please fix the following fields:")
		for _, e := range invalid {
			b.WriteString("\n  - ")
			b.WriteString(e.Error())
		}
		return b.String()
	case errors.Is(err, guard.ErrSessionExpired):
		return "your session has expired, please log in again"
	case errors.Is(err, guard.ErrAuthRequired):
		return "you need to be logged in (use 'login')"
	case errors.Is(err, api.ErrUnauthorized):
		return "not authorized: check your credentials or log in again"
	case errors.Is(err, api.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, api.ErrNotFound):
		return "not found"
	case errors.Is(err, api.ErrConflict):
		return "already exists"
	}
	return err.Error()
}
