package models

import "time"

// PostDateLayout is the backend's zone-less timestamp format.
const PostDateLayout = "2006-01-02T15:04:05"

// Post is a blog entry; "postagem" on the backend.
type Post struct {
	ID     int64  `json:"id"`
	Title  string `json:"titulo"`
	Text   string `json:"texto"`
	Date   string `json:"data,omitempty"`
	Theme  *Theme `json:"tema,omitempty"`
	Author *User  `json:"usuario,omitempty"`
}

// ParsedDate interprets Date in the local zone. The zero time is returned
// when Date is empty or malformed.
func (p Post) ParsedDate() time.Time {
	if p.Date == "" {
		return time.Time{}
	}
	// Fractional seconds are sometimes present; trim them.
	s := p.Date
	if len(s) > len(PostDateLayout) {
		s = s[:len(PostDateLayout)]
	}
	t, err := time.ParseInLocation(PostDateLayout, s, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}
