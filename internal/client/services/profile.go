package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogpessoal/internal/client/api"
	"github.com/dmitrijs2005/blogpessoal/internal/client/forms"
	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
	"github.com/dmitrijs2005/blogpessoal/internal/client/session"
	"github.com/dmitrijs2005/blogpessoal/internal/logging"
)

// ProfileService reads and edits the logged-in user.
type ProfileService interface {
	Current(ctx context.Context) (*models.User, error)
	Update(ctx context.Context, form *forms.ProfileUpdate) (*models.User, error)
}

type profileService struct {
	client api.UserAPI
	store  *session.Store
	photos PhotoUploader
	logger logging.Logger
}

func NewProfileService(client api.UserAPI, store *session.Store, photos PhotoUploader, logger logging.Logger) ProfileService {
	return &profileService{client: client, store: store, photos: photos, logger: orDiscard(logger)}
}

func (s *profileService) Current(ctx context.Context) (*models.User, error) {
	current := s.store.Current()
	if !current.Authenticated() {
		return nil, api.ErrUnauthorized
	}
	u, err := s.client.GetUser(ctx, current.UserID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return u, nil
}

// Update validates the form, saves the profile and refreshes the identity
// shown by the session. Like registration, a rejected form has its password
// fields cleared and sends nothing.
func (s *profileService) Update(ctx context.Context, form *forms.ProfileUpdate) (*models.User, error) {
	if err := form.Validate(); err != nil {
		form.ClearPasswords()
		return nil, err
	}

	u, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	photo, err := resolvePhoto(ctx, s.photos, form.Photo)
	if err != nil {
		return nil, err
	}
	edited := *form
	edited.Photo = photo

	updated, err := s.client.UpdateUser(ctx, edited.Apply(*u))
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	s.store.UpdateProfile(*updated)
	s.logger.Info(ctx, "profile updated", "user_id", updated.ID)
	return updated, nil
}
