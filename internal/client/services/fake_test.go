package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/blogpessoal/internal/client/api"
	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
)

// fakeAPI implements api.Client and records every call it receives.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	loginRet    *models.UserLogin
	loginErr    error
	registerErr error
	lastUser    models.User

	user      *models.User
	userErr   error
	updateErr error

	themes    []models.Theme
	themesErr error
	lastTheme models.Theme

	posts    []models.Post
	postsErr error
	lastPost models.Post

	deleteErr error
	pingErr   error
}

var _ api.Client = (*fakeAPI)(nil)

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) Login(ctx context.Context, creds models.Credentials) (*models.UserLogin, error) {
	f.record("Login")
	return f.loginRet, f.loginErr
}

func (f *fakeAPI) Register(ctx context.Context, user models.User) (*models.User, error) {
	f.record("Register")
	f.lastUser = user
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	user.ID = 42
	user.Password = ""
	return &user, nil
}

func (f *fakeAPI) GetUser(ctx context.Context, id int64) (*models.User, error) {
	f.record("GetUser")
	if f.userErr != nil {
		return nil, f.userErr
	}
	u := *f.user
	return &u, nil
}

func (f *fakeAPI) ListUsers(ctx context.Context) ([]models.User, error) {
	f.record("ListUsers")
	return nil, nil
}

func (f *fakeAPI) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	f.record("UpdateUser")
	f.lastUser = user
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	user.Password = ""
	return &user, nil
}

func (f *fakeAPI) ListThemes(ctx context.Context) ([]models.Theme, error) {
	f.record("ListThemes")
	return f.themes, f.themesErr
}

func (f *fakeAPI) GetTheme(ctx context.Context, id int64) (*models.Theme, error) {
	f.record("GetTheme")
	if f.themesErr != nil {
		return nil, f.themesErr
	}
	return &models.Theme{ID: id}, nil
}

func (f *fakeAPI) SearchThemes(ctx context.Context, description string) ([]models.Theme, error) {
	f.record("SearchThemes")
	return f.themes, f.themesErr
}

func (f *fakeAPI) CreateTheme(ctx context.Context, theme models.Theme) (*models.Theme, error) {
	f.record("CreateTheme")
	f.lastTheme = theme
	theme.ID = 7
	return &theme, f.themesErr
}

func (f *fakeAPI) UpdateTheme(ctx context.Context, theme models.Theme) (*models.Theme, error) {
	f.record("UpdateTheme")
	f.lastTheme = theme
	return &theme, f.themesErr
}

func (f *fakeAPI) DeleteTheme(ctx context.Context, id int64) error {
	f.record("DeleteTheme")
	return f.deleteErr
}

func (f *fakeAPI) ListPosts(ctx context.Context) ([]models.Post, error) {
	f.record("ListPosts")
	return f.posts, f.postsErr
}

func (f *fakeAPI) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	f.record("GetPost")
	if f.postsErr != nil {
		return nil, f.postsErr
	}
	return &models.Post{ID: id}, nil
}

func (f *fakeAPI) SearchPosts(ctx context.Context, title string) ([]models.Post, error) {
	f.record("SearchPosts")
	return f.posts, f.postsErr
}

func (f *fakeAPI) CreatePost(ctx context.Context, post models.Post) (*models.Post, error) {
	f.record("CreatePost")
	f.lastPost = post
	post.ID = 11
	return &post, f.postsErr
}

func (f *fakeAPI) UpdatePost(ctx context.Context, post models.Post) (*models.Post, error) {
	f.record("UpdatePost")
	f.lastPost = post
	return &post, f.postsErr
}

func (f *fakeAPI) DeletePost(ctx context.Context, id int64) error {
	f.record("DeletePost")
	return f.deleteErr
}

func (f *fakeAPI) Ping(ctx context.Context) error {
	f.record("Ping")
	return f.pingErr
}

func (f *fakeAPI) Close() error {
	f.record("Close")
	return nil
}

type fakeUploader struct {
	enabled bool
	url     string
	err     error
	paths   []string
}

func (u *fakeUploader) Enabled() bool { return u.enabled }

func (u *fakeUploader) Upload(ctx context.Context, path string) (string, error) {
	u.paths = append(u.paths, path)
	return u.url, u.err
}
