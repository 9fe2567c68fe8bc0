package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/client/api"
	"github.com/dmitrijs2005/blogpessoal/internal/client/forms"
	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
	"github.com/dmitrijs2005/blogpessoal/internal/client/repositories/cache"
	"github.com/dmitrijs2005/blogpessoal/internal/client/session"
	"github.com/dmitrijs2005/blogpessoal/internal/logging"
)

type PostService interface {
	List(ctx context.Context) (Listing[models.Post], error)
	Get(ctx context.Context, id int64) (*models.Post, error)
	Search(ctx context.Context, title string) ([]models.Post, error)
	// Save creates the post when form.ID is zero and updates it otherwise.
	// The post is attributed to the logged-in user.
	Save(ctx context.Context, form forms.PostForm) (*models.Post, error)
	Delete(ctx context.Context, id int64) error
}

type postService struct {
	client api.PostAPI
	store  *session.Store
	cache  cache.Repository
	logger logging.Logger
	now    func() time.Time
}

func NewPostService(client api.PostAPI, store *session.Store, cache cache.Repository, logger logging.Logger) PostService {
	return &postService{client: client, store: store, cache: cache, logger: orDiscard(logger), now: time.Now}
}

func (s *postService) List(ctx context.Context) (Listing[models.Post], error) {
	l, err := listWithFallback(ctx, s.logger, s.now(), s.client.ListPosts, s.cache.ReplacePosts, s.cache.Posts)
	if err != nil {
		return l, fmt.Errorf("list posts: %w", err)
	}
	return l, nil
}

func (s *postService) Get(ctx context.Context, id int64) (*models.Post, error) {
	p, err := s.client.GetPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	return p, nil
}

func (s *postService) Search(ctx context.Context, title string) ([]models.Post, error) {
	posts, err := s.client.SearchPosts(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	return posts, nil
}

func (s *postService) Save(ctx context.Context, form forms.PostForm) (*models.Post, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	current := s.store.Current()
	if !current.Authenticated() {
		return nil, api.ErrUnauthorized
	}

	var (
		saved *models.Post
		err   error
	)
	post := form.Post(current.UserID)
	if form.ID == 0 {
		saved, err = s.client.CreatePost(ctx, post)
	} else {
		saved, err = s.client.UpdatePost(ctx, post)
	}
	if err != nil {
		return nil, fmt.Errorf("save post: %w", err)
	}
	s.logger.Debug(ctx, "post saved", "post_id", saved.ID)
	return saved, nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return nil
}
