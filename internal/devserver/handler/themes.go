package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
	"github.com/dmitrijs2005/blogpessoal/internal/devserver/store"
	"github.com/go-chi/chi/v5"
)

type themeHandler struct {
	store *store.Memory
}

func (h *themeHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Themes(""))
}

func (h *themeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	t, err := h.store.Theme(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "theme not found")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *themeHandler) Search(w http.ResponseWriter, r *http.Request) {
	q, err := url.PathUnescape(chi.URLParam(r, "descricao"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid search text")
		return
	}
	writeJSON(w, http.StatusOK, h.store.Themes(q))
}

func (h *themeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.Theme
	if !decodeJSON(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Description) == "" {
		writeError(w, http.StatusBadRequest, "descricao is required")
		return
	}
	writeJSON(w, http.StatusCreated, h.store.CreateTheme(strings.TrimSpace(in.Description)))
}

func (h *themeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in models.Theme
	if !decodeJSON(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Description) == "" {
		writeError(w, http.StatusBadRequest, "descricao is required")
		return
	}
	in.Description = strings.TrimSpace(in.Description)
	t, err := h.store.UpdateTheme(in)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "theme not found")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *themeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.store.DeleteTheme(id); err != nil {
		writeError(w, http.StatusNotFound, "theme not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
