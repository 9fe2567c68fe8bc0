package store

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 18, 10, 0, 0, 0, time.Local)

func newMemory() *Memory {
	m := NewMemory()
	m.now = func() time.Time { return fixedNow }
	return m
}

func TestUsers_UniqueUsername(t *testing.T) {
	m := newMemory()

	ana, err := m.CreateUser(User{Name: "Ana", Username: "ana@mail.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), ana.ID)

	_, err = m.CreateUser(User{Name: "Other", Username: "ANA@mail.com"})
	require.ErrorIs(t, err, ErrUsernameUsed)

	bia, err := m.CreateUser(User{Name: "Bia", Username: "bia@mail.com"})
	require.NoError(t, err)

	bia.Username = "ana@mail.com"
	_, err = m.UpdateUser(bia)
	require.ErrorIs(t, err, ErrUsernameUsed)

	ana.Name = "Ana Maria"
	_, err = m.UpdateUser(ana)
	require.NoError(t, err, "keeping one's own username is fine")

	got, err := m.UserByUsername("Ana@Mail.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Name)

	assert.Len(t, m.Users(), 2)

	_, err = m.UserByID(99)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = m.UpdateUser(User{ID: 99})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestThemesAndPosts(t *testing.T) {
	m := newMemory()
	ana, err := m.CreateUser(User{Name: "Ana", Username: "ana"})
	require.NoError(t, err)

	goTheme := m.CreateTheme("Go")
	m.CreateTheme("Java")

	_, err = m.CreatePost(models.Post{Title: "Hello", Text: "first post"}, ana.ID)
	require.ErrorIs(t, err, ErrThemeMissing)

	p, err := m.CreatePost(models.Post{Title: "Hello", Text: "first post", Theme: goTheme.Ref()}, ana.ID)
	require.NoError(t, err)

	want := models.Post{
		ID: 1, Title: "Hello", Text: "first post", Date: "2026-10-18T10:00:00",
		Theme:  &models.Theme{ID: goTheme.ID, Description: "Go"},
		Author: &models.User{ID: ana.ID, Name: "Ana", Username: "ana"},
	}
	assert.Empty(t, cmp.Diff(want, p))

	theme, err := m.Theme(goTheme.ID)
	require.NoError(t, err)
	require.Len(t, theme.Posts, 1)
	assert.Nil(t, theme.Posts[0].Theme)

	assert.Len(t, m.Themes("ja"), 1)
	assert.Len(t, m.Themes(""), 2)
	assert.Len(t, m.Posts("hel"), 1)
	assert.Empty(t, m.Posts("bye"))

	u, err := m.UserWithPosts(ana.ID)
	require.NoError(t, err)
	require.Len(t, u.Posts, 1)
	assert.Nil(t, u.Posts[0].Author)

	p.Title = "Hello again"
	updated, err := m.UpdatePost(p)
	require.NoError(t, err)
	assert.Equal(t, "Hello again", updated.Title)
	assert.Equal(t, ana.ID, updated.Author.ID)

	require.NoError(t, m.DeleteTheme(goTheme.ID))
	_, err = m.Post(p.ID)
	require.ErrorIs(t, err, ErrNotFound, "posts go with their theme")
	require.ErrorIs(t, m.DeleteTheme(goTheme.ID), ErrNotFound)
	require.ErrorIs(t, m.DeletePost(p.ID), ErrNotFound)
}

func TestUpdateTheme_Missing(t *testing.T) {
	m := newMemory()
	_, err := m.UpdateTheme(models.Theme{ID: 3, Description: "x"})
	require.ErrorIs(t, err, ErrNotFound)
}
