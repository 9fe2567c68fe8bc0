package forms

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
	"github.com/dmitrijs2005/blogpessoal/internal/common"
)

// Post length bounds enforced by the backend.
const (
	PostTitleMin = 5
	PostTitleMax = 100
	PostTextMin  = 10
	PostTextMax  = 1000
)

// Registration is the sign-up form.
type Registration struct {
	Name     string
	Username string
	Photo    string
	Password string
	Confirm  string
}

// Validate requires a name and a username, a password of at least
// common.MinPasswordLength characters and a confirmation equal to it verbatim.
func (r Registration) Validate() error {
	var c collector
	if strings.TrimSpace(r.Name) == "" {
		c.add("nome", ErrRequired)
	}
	if strings.TrimSpace(r.Username) == "" {
		c.add("usuario", ErrRequired)
	}
	checkPassword(&c, r.Password, r.Confirm)
	return c.err()
}

// ClearPasswords empties both password fields, as the form does after a
// rejected submission.
func (r *Registration) ClearPasswords() {
	r.Password = ""
	r.Confirm = ""
}

// User is the request body; the confirmation never leaves the form.
func (r Registration) User() models.User {
	return models.User{
		Name:     strings.TrimSpace(r.Name),
		Username: strings.TrimSpace(r.Username),
		Photo:    strings.TrimSpace(r.Photo),
		Password: r.Password,
	}
}

func checkPassword(c *collector, password, confirm string) {
	if utf8.RuneCountInString(password) < common.MinPasswordLength {
		c.add("senha", ErrPasswordTooShort)
	}
	if confirm != password {
		c.add("confirmarSenha", ErrPasswordMismatch)
	}
}

// ProfileUpdate edits the logged-in user. The backend overwrites the stored
// password on every update, so the form always asks for it.
type ProfileUpdate struct {
	Name     string
	Photo    string
	Password string
	Confirm  string
}

func (p ProfileUpdate) Validate() error {
	var c collector
	if strings.TrimSpace(p.Name) == "" {
		c.add("nome", ErrRequired)
	}
	checkPassword(&c, p.Password, p.Confirm)
	return c.err()
}

func (p *ProfileUpdate) ClearPasswords() {
	p.Password = ""
	p.Confirm = ""
}

// Apply returns u with the edited fields replaced.
func (p ProfileUpdate) Apply(u models.User) models.User {
	u.Name = strings.TrimSpace(p.Name)
	u.Photo = strings.TrimSpace(p.Photo)
	u.Password = p.Password
	u.Posts = nil
	return u
}

// ThemeForm creates or edits a theme; ID is zero on creation.
type ThemeForm struct {
	ID          int64
	Description string
}

func (f ThemeForm) Validate() error {
	var c collector
	if strings.TrimSpace(f.Description) == "" {
		c.add("descricao", ErrRequired)
	}
	return c.err()
}

func (f ThemeForm) Theme() models.Theme {
	return models.Theme{ID: f.ID, Description: strings.TrimSpace(f.Description)}
}

// PostForm creates or edits a post; ID is zero on creation.
type PostForm struct {
	ID      int64
	Title   string
	Text    string
	ThemeID int64
}

func (f PostForm) Validate() error {
	var c collector
	checkLength(&c, "titulo", strings.TrimSpace(f.Title), PostTitleMin, PostTitleMax)
	checkLength(&c, "texto", strings.TrimSpace(f.Text), PostTextMin, PostTextMax)
	if f.ThemeID <= 0 {
		c.add("tema", ErrRequired)
	}
	return c.err()
}

// Post builds the request body, attributing it to authorID.
func (f PostForm) Post(authorID int64) models.Post {
	return models.Post{
		ID:     f.ID,
		Title:  strings.TrimSpace(f.Title),
		Text:   strings.TrimSpace(f.Text),
		Theme:  models.Theme{ID: f.ThemeID}.Ref(),
		Author: models.User{ID: authorID}.Ref(),
	}
}

func checkLength(c *collector, field, v string, min, max int) {
	n := utf8.RuneCountInString(v)
	switch {
	case n == 0:
		c.add(field, ErrRequired)
	case n < min:
		c.add(field, ErrTooShort)
	case n > max:
		c.add(field, ErrTooLong)
	}
}
