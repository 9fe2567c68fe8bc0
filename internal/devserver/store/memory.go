// Package store keeps the development backend's users, themes and posts in
// memory. Records are returned by value so callers never share state with
// the store.
package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUsernameUsed = errors.New("username already in use")
	ErrThemeMissing = errors.New("theme does not exist")
)

// User is a stored account; the password is kept only as a hash.
type User struct {
	ID           int64
	Name         string
	Username     string
	Photo        string
	PasswordHash []byte
}

// Public returns the user as exposed by the API, without credentials.
func (u User) Public() models.User {
	return models.User{ID: u.ID, Name: u.Name, Username: u.Username, Photo: u.Photo}
}

type post struct {
	ID       int64
	Title    string
	Text     string
	Date     time.Time
	ThemeID  int64
	AuthorID int64
}

type Memory struct {
	mu      sync.RWMutex
	now     func() time.Time
	users   map[int64]User
	themes  map[int64]string
	posts   map[int64]post
	lastIDs struct{ user, theme, post int64 }
}

func NewMemory() *Memory {
	return &Memory{
		now:    time.Now,
		users:  make(map[int64]User),
		themes: make(map[int64]string),
		posts:  make(map[int64]post),
	}
}

// CreateUser stores u under a new id. Usernames are unique, compared without
// regard to case.
func (m *Memory) CreateUser(u User) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.usernameTakenLocked(u.Username, 0) {
		return User{}, ErrUsernameUsed
	}
	m.lastIDs.user++
	u.ID = m.lastIDs.user
	m.users[u.ID] = u
	return u, nil
}

// UpdateUser replaces the stored user with the same id.
func (m *Memory) UpdateUser(u User) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[u.ID]; !ok {
		return User{}, ErrNotFound
	}
	if m.usernameTakenLocked(u.Username, u.ID) {
		return User{}, ErrUsernameUsed
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *Memory) UserByID(id int64) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (m *Memory) UserByUsername(username string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (m *Memory) Users() []User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UserWithPosts returns the public user with the posts they wrote.
func (m *Memory) UserWithPosts(id int64) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	pub := u.Public()
	for _, p := range m.sortedPostsLocked() {
		if p.AuthorID == id {
			pub.Posts = append(pub.Posts, m.postModelLocked(p, false))
		}
	}
	return pub, nil
}

func (m *Memory) CreateTheme(description string) models.Theme {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastIDs.theme++
	m.themes[m.lastIDs.theme] = description
	return models.Theme{ID: m.lastIDs.theme, Description: description}
}

func (m *Memory) UpdateTheme(t models.Theme) (models.Theme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.themes[t.ID]; !ok {
		return models.Theme{}, ErrNotFound
	}
	m.themes[t.ID] = t.Description
	return m.themeModelLocked(t.ID), nil
}

// DeleteTheme removes the theme and every post filed under it.
func (m *Memory) DeleteTheme(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.themes[id]; !ok {
		return ErrNotFound
	}
	delete(m.themes, id)
	for pid, p := range m.posts {
		if p.ThemeID == id {
			delete(m.posts, pid)
		}
	}
	return nil
}

func (m *Memory) Theme(id int64) (models.Theme, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.themes[id]; !ok {
		return models.Theme{}, ErrNotFound
	}
	return m.themeModelLocked(id), nil
}

// Themes lists themes whose description contains filter, ignoring case.
// An empty filter matches everything.
func (m *Memory) Themes(filter string) []models.Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]int64, 0, len(m.themes))
	for id, d := range m.themes {
		if containsFold(d, filter) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]models.Theme, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.themeModelLocked(id))
	}
	return out
}

// CreatePost stores p dated now. The theme must exist.
func (m *Memory) CreatePost(p models.Post, authorID int64) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	themeID, err := m.themeIDLocked(p)
	if err != nil {
		return models.Post{}, err
	}
	m.lastIDs.post++
	stored := post{
		ID:       m.lastIDs.post,
		Title:    p.Title,
		Text:     p.Text,
		Date:     m.now(),
		ThemeID:  themeID,
		AuthorID: authorID,
	}
	m.posts[stored.ID] = stored
	return m.postModelLocked(stored, true), nil
}

// UpdatePost rewrites the post and refreshes its date, keeping its author.
func (m *Memory) UpdatePost(p models.Post) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.posts[p.ID]
	if !ok {
		return models.Post{}, ErrNotFound
	}
	themeID, err := m.themeIDLocked(p)
	if err != nil {
		return models.Post{}, err
	}
	stored.Title, stored.Text, stored.ThemeID, stored.Date = p.Title, p.Text, themeID, m.now()
	m.posts[p.ID] = stored
	return m.postModelLocked(stored, true), nil
}

func (m *Memory) DeletePost(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[id]; !ok {
		return ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *Memory) Post(id int64) (models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.posts[id]
	if !ok {
		return models.Post{}, ErrNotFound
	}
	return m.postModelLocked(p, true), nil
}

// Posts lists posts whose title contains filter, ignoring case, oldest first.
func (m *Memory) Posts(filter string) []models.Post {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Post, 0, len(m.posts))
	for _, p := range m.sortedPostsLocked() {
		if containsFold(p.Title, filter) {
			out = append(out, m.postModelLocked(p, true))
		}
	}
	return out
}

func (m *Memory) usernameTakenLocked(username string, except int64) bool {
	for id, u := range m.users {
		if id != except && strings.EqualFold(u.Username, username) {
			return true
		}
	}
	return false
}

func (m *Memory) themeIDLocked(p models.Post) (int64, error) {
	if p.Theme == nil {
		return 0, ErrThemeMissing
	}
	if _, ok := m.themes[p.Theme.ID]; !ok {
		return 0, ErrThemeMissing
	}
	return p.Theme.ID, nil
}

func (m *Memory) sortedPostsLocked() []post {
	out := make([]post, 0, len(m.posts))
	for _, p := range m.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// themeModelLocked embeds the theme's posts without their theme, the same
// shape the backend serialises.
func (m *Memory) themeModelLocked(id int64) models.Theme {
	t := models.Theme{ID: id, Description: m.themes[id]}
	for _, p := range m.sortedPostsLocked() {
		if p.ThemeID == id {
			pm := m.postModelLocked(p, false)
			pm.Theme = nil
			t.Posts = append(t.Posts, pm)
		}
	}
	return t
}

// postModelLocked builds the API form of p. withAuthor embeds the public
// author; it is off when the post is itself nested in its author.
func (m *Memory) postModelLocked(p post, withAuthor bool) models.Post {
	out := models.Post{
		ID:    p.ID,
		Title: p.Title,
		Text:  p.Text,
		Date:  p.Date.Format(models.PostDateLayout),
		Theme: &models.Theme{ID: p.ThemeID, Description: m.themes[p.ThemeID]},
	}
	if withAuthor {
		if u, ok := m.users[p.AuthorID]; ok {
			pub := u.Public()
			out.Author = &pub
		}
	}
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
