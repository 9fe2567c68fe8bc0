package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
	"github.com/dmitrijs2005/blogpessoal/internal/common"
	"github.com/dmitrijs2005/blogpessoal/internal/devserver/auth"
	"github.com/dmitrijs2005/blogpessoal/internal/devserver/metrics"
	"github.com/dmitrijs2005/blogpessoal/internal/devserver/store"
	"github.com/go-chi/chi/v5"
)

type userHandler struct {
	store     *store.Memory
	collector *metrics.Collector
	secret    []byte
	ttl       time.Duration
}

func (h *userHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if !decodeJSON(w, r, &creds) {
		return
	}

	u, err := h.store.UserByUsername(creds.Username)
	if err == nil {
		err = auth.CheckPassword(u.PasswordHash, creds.Password)
	}
	if err != nil {
		h.collector.RecordLogin(false)
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := auth.GenerateToken(u.ID, u.Username, h.secret, h.ttl)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	h.collector.RecordLogin(true)
	writeJSON(w, http.StatusOK, models.UserLogin{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Photo:    u.Photo,
		Token:    token,
	})
}

func (h *userHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in models.User
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := validateUser(in); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not hash password")
		return
	}
	u, err := h.store.CreateUser(store.User{
		Name:         strings.TrimSpace(in.Name),
		Username:     strings.TrimSpace(in.Username),
		Photo:        in.Photo,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrUsernameUsed) {
		writeError(w, http.StatusConflict, "username already in use")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, u.Public())
}

func (h *userHandler) List(w http.ResponseWriter, r *http.Request) {
	users := h.store.Users()
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *userHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	u, err := h.store.UserWithPosts(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// Update rewrites the caller's own account, password included.
func (h *userHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in models.User
	if !decodeJSON(w, r, &in) {
		return
	}
	caller, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if in.ID != caller {
		writeError(w, http.StatusForbidden, "you can only update your own profile")
		return
	}
	if msg := validateUser(in); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not hash password")
		return
	}
	u, err := h.store.UpdateUser(store.User{
		ID:           in.ID,
		Name:         strings.TrimSpace(in.Name),
		Username:     strings.TrimSpace(in.Username),
		Photo:        in.Photo,
		PasswordHash: hash,
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, store.ErrUsernameUsed):
		writeError(w, http.StatusConflict, "username already in use")
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, u.Public())
	}
}

func validateUser(u models.User) string {
	switch {
	case strings.TrimSpace(u.Name) == "":
		return "nome is required"
	case strings.TrimSpace(u.Username) == "":
		return "usuario is required"
	case utf8.RuneCountInString(u.Password) < common.MinPasswordLength:
		return "senha must have at least 8 characters"
	}
	return ""
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
