// Package models defines the blog resources exchanged with the backend.
// Go field names are English; JSON names follow the backend contract.
package models

// Credentials is what the login form submits.
type Credentials struct {
	Username string `json:"usuario"`
	Password string `json:"senha"`
}

// UserLogin is the backend's answer to a successful login.
type UserLogin struct {
	ID       int64  `json:"id"`
	Name     string `json:"nome"`
	Username string `json:"usuario"`
	Photo    string `json:"foto"`
	Token    string `json:"token"`
}

// User is a registered profile. Password is only ever sent, never shown.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"nome"`
	Username string `json:"usuario"`
	Password string `json:"senha,omitempty"`
	Photo    string `json:"foto"`
	Posts    []Post `json:"postagem,omitempty"`
}

// Ref returns a copy holding only the id, which is how posts point at their
// author.
func (u User) Ref() *User {
	return &User{ID: u.ID}
}
