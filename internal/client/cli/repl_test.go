package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/blogpessoal/internal/client/api"
	"github.com/dmitrijs2005/blogpessoal/internal/client/forms"
	"github.com/dmitrijs2005/blogpessoal/internal/client/guard"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	failWith error
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return f.failWith
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(ctx context.Context) error          { return f.record("whoami") }
func (f *fakeExec) Go(ctx context.Context, path string) error { return f.record("go " + path) }
func (f *fakeExec) ListThemes(ctx context.Context) error      { return f.record("themes") }
func (f *fakeExec) AddTheme(ctx context.Context) error        { return f.record("addtheme") }
func (f *fakeExec) EditTheme(ctx context.Context, id string) error {
	return f.record("edittheme " + id)
}
func (f *fakeExec) DeleteTheme(ctx context.Context, id string) error {
	return f.record("deltheme " + id)
}
func (f *fakeExec) SearchThemes(ctx context.Context, q string) error {
	return f.record("searchtheme " + q)
}
func (f *fakeExec) ListPosts(ctx context.Context) error { return f.record("posts") }
func (f *fakeExec) AddPost(ctx context.Context) error   { return f.record("addpost") }
func (f *fakeExec) EditPost(ctx context.Context, id string) error {
	return f.record("editpost " + id)
}
func (f *fakeExec) DeletePost(ctx context.Context, id string) error {
	return f.record("delpost " + id)
}
func (f *fakeExec) SearchPosts(ctx context.Context, q string) error {
	return f.record("searchpost " + q)
}
func (f *fakeExec) Profile(ctx context.Context) error     { return f.record("profile") }
func (f *fakeExec) EditProfile(ctx context.Context) error { return f.record("editprofile") }

func runScript(exec execIface, lines ...string) string {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, reader, &out)
	return out.String()
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(exec,
		"help",
		"login",
		"help",
		"",
		"themes",
		"addtheme",
		"edittheme 3",
		"deltheme 3",
		"searchtheme go lang",
		"posts",
		"addpost",
		"editpost 4",
		"delpost 4",
		"searchpost olá mundo",
		"profile",
		"editprofile",
		"whoami",
		"go /temas",
		"register",
		"logout",
		"foobar",
		"exit",
		"posts",
	)

	assert.Equal(t, []string{
		"login", "themes", "addtheme", "edittheme 3", "deltheme 3", "searchtheme go lang",
		"posts", "addpost", "editpost 4", "delpost 4", "searchpost olá mundo",
		"profile", "editprofile", "whoami", "go /temas", "register", "logout",
	}, exec.calls)
	assert.Contains(t, out, helpAnonymous)
	assert.Contains(t, out, helpLoggedIn)
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "blog status> ")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
}

func TestRunREPL_MissingArgumentsPrintUsage(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	out := runScript(exec, "go", "edittheme", "delpost", "searchtheme", "searchpost   ", "quit")

	assert.Empty(t, exec.calls)
	assert.Contains(t, out, "Usage: go <view>")
	assert.Contains(t, out, "Usage: edittheme <id>")
	assert.Contains(t, out, "Usage: delpost <id>")
	assert.Contains(t, out, "Usage: searchtheme <text>")
	assert.Contains(t, out, "Usage: searchpost <text>")
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(exec, "login")
	assert.Equal(t, []string{"login"}, exec.calls)
	assert.NotContains(t, out, "Bye!")
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	exec := &fakeExec{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("login\n")), &out)
	assert.Empty(t, exec.calls)
	assert.Empty(t, out.String())
}

func TestRunREPL_ReportsErrorsAndGoesOn(t *testing.T) {
	exec := &fakeExec{failWith: api.ErrUnavailable}
	out := runScript(exec, "themes", "posts", "exit")

	assert.Equal(t, []string{"themes", "posts"}, exec.calls)
	assert.Equal(t, 2, strings.Count(out, "Error: server unavailable, try again later"))
}

func TestDescribeError(t *testing.T) {
	invalid := forms.InvalidInput{
		forms.FieldError{Field: "senha", Err: forms.ErrPasswordTooShort},
		forms.FieldError{Field: "confirmarSenha", Err: forms.ErrPasswordMismatch},
	}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid input", invalid, "please fix the following fields:\n  - senha: must have at least 8 characters\n  - confirmarSenha: does not match the password"},
		{"expired", guard.ErrSessionExpired, "your session has expired, please log in again"},
		{"auth required", fmt.Errorf("x: %w", guard.ErrAuthRequired), "you need to be logged in (use 'login')"},
		{"unauthorized", fmt.Errorf("login error: %w", api.ErrUnauthorized), "not authorized: check your credentials or log in again"},
		{"not found", api.ErrNotFound, "not found"},
		{"conflict", fmt.Errorf("register error: %w", api.ErrConflict), "already exists"},
		{"other", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeError(tt.err))
		})
	}
}
