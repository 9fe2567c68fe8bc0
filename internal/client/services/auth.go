package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogpessoal/internal/client/api"
	"github.com/dmitrijs2005/blogpessoal/internal/client/forms"
	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
	"github.com/dmitrijs2005/blogpessoal/internal/client/repositories/cache"
	"github.com/dmitrijs2005/blogpessoal/internal/client/session"
	"github.com/dmitrijs2005/blogpessoal/internal/logging"
)

// AuthService defines the account operations of the CLI.
//
// Contract:
//   - Register: validate the form locally, then create the account. A form
//     that fails validation never reaches the network and has its password
//     fields cleared.
//   - Login / Logout: drive the session store.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Register(ctx context.Context, form *forms.Registration) (*models.User, error)
	Login(ctx context.Context, creds models.Credentials) (session.Session, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  *session.Store
	cache  cache.Repository
	photos PhotoUploader
	logger logging.Logger
}

func NewAuthService(client api.Client, store *session.Store, cache cache.Repository, photos PhotoUploader, logger logging.Logger) AuthService {
	return &authService{client: client, store: store, cache: cache, photos: photos, logger: orDiscard(logger)}
}

func (a *authService) Register(ctx context.Context, form *forms.Registration) (*models.User, error) {
	if err := form.Validate(); err != nil {
		form.ClearPasswords()
		return nil, err
	}

	photo, err := resolvePhoto(ctx, a.photos, form.Photo)
	if err != nil {
		return nil, err
	}
	user := form.User()
	user.Photo = photo

	created, err := a.client.Register(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	a.logger.Info(ctx, "user registered", "user", created.Username, "user_id", created.ID)
	return created, nil
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (session.Session, error) {
	return a.store.Login(ctx, creds)
}

// Logout ends the session and forgets the cached listings of the previous
// user. The session is cleared even if the cache cannot be.
func (a *authService) Logout(ctx context.Context) error {
	a.store.Logout()
	if err := a.cache.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
