// Package guard tracks the view the user is on and keeps it consistent with
// the session: logging in lands on /home, logging out returns to /, and
// protected views refuse anonymous or expired sessions.
package guard

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/client/session"
)

type View string

const (
	ViewRoot     View = "/"
	ViewLogin    View = "/login"
	ViewRegister View = "/cadastro"
	ViewHome     View = "/home"
	ViewThemes   View = "/temas"
	ViewNewTheme View = "/cadastrartema"
	ViewPosts    View = "/postagens"
	ViewNewPost  View = "/cadastrarpostagem"
	ViewProfile  View = "/perfil"
)

var knownViews = map[View]bool{
	ViewRoot: true, ViewLogin: true, ViewRegister: true, ViewHome: true, ViewThemes: true,
	ViewNewTheme: true, ViewPosts: true, ViewNewPost: true, ViewProfile: true,
}

var (
	ErrAuthRequired   = errors.New("you need to be logged in")
	ErrSessionExpired = fmt.Errorf("session expired: %w", ErrAuthRequired)
	ErrUnknownView    = errors.New("unknown view")
)

// Public reports whether v can be shown without a session.
func (v View) Public() bool {
	return v == ViewRoot || v == ViewLogin || v == ViewRegister
}

func ParseView(s string) (View, error) {
	v := View(s)
	if !knownViews[v] {
		return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
	}
	return v, nil
}

// SessionSource is the part of session.Store the guard needs.
type SessionSource interface {
	Current() session.Session
	Subscribe(fn session.Observer) (unsubscribe func())
	Logout()
}

type Listener func(from, to View)

type Navigator struct {
	store SessionSource
	now   func() time.Time

	mu        sync.Mutex
	current   View
	listeners []Listener

	unsubscribe func()
}

// New starts at / and subscribes to store.
func New(store SessionSource) *Navigator {
	n := &Navigator{store: store, now: time.Now, current: ViewRoot}
	n.unsubscribe = store.Subscribe(n.observe)
	return n
}

// Close detaches the navigator from the session store.
func (n *Navigator) Close() {
	n.unsubscribe()
}

func (n *Navigator) Current() View {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// OnNavigate registers fn to be called after every view change.
func (n *Navigator) OnNavigate(fn Listener) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

// Navigate moves to v after checking it is allowed.
func (n *Navigator) Navigate(v View) error {
	if !knownViews[v] {
		return fmt.Errorf("%w: %q", ErrUnknownView, v)
	}
	if err := n.Require(v); err != nil {
		return err
	}
	n.goTo(v)
	return nil
}

// Require checks that v may be shown with the current session. Anonymous
// sessions are sent to /; expired ones are logged out first.
func (n *Navigator) Require(v View) error {
	if v.Public() {
		return nil
	}

	s := n.store.Current()
	if !s.Authenticated() {
		n.goTo(ViewRoot)
		return ErrAuthRequired
	}
	if s.Expired(n.now()) {
		// the logout transition moves us to / through observe.
		n.store.Logout()
		return ErrSessionExpired
	}
	return nil
}

func (n *Navigator) observe(t session.Transition) {
	switch {
	case t.New.Authenticated() && t.New.Token != t.Old.Token:
		n.goTo(ViewHome)
	case t.Old.Authenticated() && !t.New.Authenticated():
		n.goTo(ViewRoot)
	}
}

func (n *Navigator) goTo(v View) {
	n.mu.Lock()
	from := n.current
	if from == v {
		n.mu.Unlock()
		return
	}
	n.current = v
	listeners := append([]Listener(nil), n.listeners...)
	n.mu.Unlock()

	for _, fn := range listeners {
		fn(from, v)
	}
}
