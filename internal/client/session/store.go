package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
	"github.com/dmitrijs2005/blogpessoal/internal/logging"
)

// ErrEmptyToken is returned when the backend accepts the credentials but
// answers without a token; such a login is treated as failed.
var ErrEmptyToken = errors.New("backend returned an empty token")

// Authenticator exchanges credentials for a user and token.
type Authenticator interface {
	Login(ctx context.Context, creds models.Credentials) (*models.UserLogin, error)
}

// Transition describes one committed change of the store.
type Transition struct {
	From State
	To   State
	Old  Session
	New  Session
}

type Observer func(Transition)

type subscription struct {
	id int
	fn Observer
}

// Store is safe for concurrent use. Observers must not call Login or Logout
// synchronously; they may read the store.
type Store struct {
	auth   Authenticator
	logger logging.Logger

	// notifyMu serialises commit+notify so observers see transitions in
	// commit order.
	notifyMu sync.Mutex

	mu        sync.Mutex
	current   Session
	pending   int
	observers []subscription
	nextID    int
}

func NewStore(auth Authenticator, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Store{auth: auth, logger: logger}
}

// Current returns a copy of the current session.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Store) Authenticated() bool {
	return s.Current().Authenticated()
}

// Token returns the current token, "" when anonymous. It matches
// api.TokenSource.
func (s *Store) Token() string {
	return s.Current().Token
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.observers {
				if sub.id == id {
					s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
					return
				}
			}
		})
	}
}

// Login sends creds to the authenticator. On success the session is replaced
// wholesale and returned. On failure the session is left as it was and the
// error is returned for display. Overlapping logins are last-writer-wins.
func (s *Store) Login(ctx context.Context, creds models.Credentials) (Session, error) {
	s.commit(func() { s.pending++ })

	ul, err := s.auth.Login(ctx, creds)
	if err == nil && ul.Token == "" {
		err = ErrEmptyToken
	}

	if err != nil {
		s.commit(func() { s.pending-- })
		s.logger.Info(ctx, "login failed", "user", creds.Username, "error", err)
		return Session{}, fmt.Errorf("login error: %w", err)
	}

	next := Session{
		UserID:      ul.ID,
		DisplayName: ul.Name,
		Username:    ul.Username,
		Photo:       ul.Photo,
		Token:       ul.Token,
		ExpiresAt:   TokenExpiry(ul.Token),
	}
	s.commit(func() {
		s.pending--
		s.current = next
	})
	s.logger.Info(ctx, "login succeeded", "user", next.Username, "user_id", next.UserID)
	return next, nil
}

// Logout resets the session to anonymous. It is idempotent: when nothing
// changes, observers are not called.
func (s *Store) Logout() {
	s.commit(func() { s.current = Session{} })
}

// UpdateProfile refreshes the displayed identity after a profile edit. It
// is ignored when the session belongs to someone else or is anonymous.
func (s *Store) UpdateProfile(u models.User) {
	s.commit(func() {
		if !s.current.Authenticated() || s.current.UserID != u.ID {
			return
		}
		s.current.DisplayName = u.Name
		s.current.Username = u.Username
		s.current.Photo = u.Photo
	})
}

// commit applies mutate under the lock and, if it changed anything, calls
// the observers before returning.
func (s *Store) commit(mutate func()) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	t := Transition{From: s.stateLocked(), Old: s.current}
	mutate()
	t.To, t.New = s.stateLocked(), s.current
	observers := make([]Observer, len(s.observers))
	for i, sub := range s.observers {
		observers[i] = sub.fn
	}
	s.mu.Unlock()

	if t.From == t.To && t.Old == t.New {
		return
	}
	for _, fn := range observers {
		fn(t)
	}
}

func (s *Store) stateLocked() State {
	switch {
	case s.pending > 0:
		return StateAuthenticating
	case s.current.Authenticated():
		return StateAuthenticated
	default:
		return StateAnonymous
	}
}
