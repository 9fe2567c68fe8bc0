package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
	"github.com/dmitrijs2005/blogpessoal/internal/devserver/store"
	"github.com/go-chi/chi/v5"
)

// Post length bounds, in characters.
const (
	titleMin, titleMax = 5, 100
	textMin, textMax   = 10, 1000
)

type postHandler struct {
	store *store.Memory
}

func (h *postHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Posts(""))
}

func (h *postHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := h.store.Post(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *postHandler) Search(w http.ResponseWriter, r *http.Request) {
	q, err := url.PathUnescape(chi.URLParam(r, "titulo"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid search text")
		return
	}
	writeJSON(w, http.StatusOK, h.store.Posts(q))
}

// Create files the post under the caller, whatever author the body names.
func (h *postHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodePost(w, r)
	if !ok {
		return
	}
	caller, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	p, err := h.store.CreatePost(in, caller)
	if errors.Is(err, store.ErrThemeMissing) {
		writeError(w, http.StatusBadRequest, "tema does not exist")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *postHandler) Update(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodePost(w, r)
	if !ok {
		return
	}
	p, err := h.store.UpdatePost(in)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "post not found")
	case errors.Is(err, store.ErrThemeMissing):
		writeError(w, http.StatusBadRequest, "tema does not exist")
	default:
		writeJSON(w, http.StatusOK, p)
	}
}

func (h *postHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.store.DeletePost(id); err != nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *postHandler) decodePost(w http.ResponseWriter, r *http.Request) (models.Post, bool) {
	var in models.Post
	if !decodeJSON(w, r, &in) {
		return in, false
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Text = strings.TrimSpace(in.Text)

	if n := utf8.RuneCountInString(in.Title); n < titleMin || n > titleMax {
		writeError(w, http.StatusBadRequest, "titulo must have between 5 and 100 characters")
		return in, false
	}
	if n := utf8.RuneCountInString(in.Text); n < textMin || n > textMax {
		writeError(w, http.StatusBadRequest, "texto must have between 10 and 1000 characters")
		return in, false
	}
	return in, true
}
