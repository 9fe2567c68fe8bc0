package api

import (
	"context"

	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
)

// AuthAPI exchanges credentials for a token and creates accounts.
type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (*models.UserLogin, error)
	Register(ctx context.Context, user models.User) (*models.User, error)
}

type UserAPI interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (*models.User, error)
}

type ThemeAPI interface {
	ListThemes(ctx context.Context) ([]models.Theme, error)
	GetTheme(ctx context.Context, id int64) (*models.Theme, error)
	SearchThemes(ctx context.Context, description string) ([]models.Theme, error)
	CreateTheme(ctx context.Context, theme models.Theme) (*models.Theme, error)
	UpdateTheme(ctx context.Context, theme models.Theme) (*models.Theme, error)
	DeleteTheme(ctx context.Context, id int64) error
}

type PostAPI interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	SearchPosts(ctx context.Context, title string) ([]models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (*models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) (*models.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

// Client is the whole backend surface.
type Client interface {
	AuthAPI
	UserAPI
	ThemeAPI
	PostAPI
	Ping(ctx context.Context) error
	Close() error
}

// TokenSource yields the current session token, "" when anonymous.
type TokenSource func() string
