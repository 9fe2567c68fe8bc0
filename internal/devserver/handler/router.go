// Package handler serves the blog REST contract over the in-memory store.
package handler

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/devserver/metrics"
	"github.com/dmitrijs2005/blogpessoal/internal/devserver/store"
	"github.com/dmitrijs2005/blogpessoal/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// RouterDeps groups what NewRouter needs.
type RouterDeps struct {
	Store     *store.Memory
	Logger    logging.Logger
	Collector *metrics.Collector
	Gatherer  prometheus.Gatherer
	Secret    []byte
	TokenTTL  time.Duration
}

// NewRouter builds the full route table:
//
//	GET  /                        liveness
//	GET  /metrics                 Prometheus scrape
//	POST /usuarios/logar          public
//	POST /usuarios/cadastrar      public
//	everything else               requires a token
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(recovery(deps.Logger))
	r.Use(observe(deps.Logger, deps.Collector))

	uh := &userHandler{store: deps.Store, collector: deps.Collector, secret: deps.Secret, ttl: deps.TokenTTL}
	th := &themeHandler{store: deps.Store}
	ph := &postHandler{store: deps.Store}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))

	r.Post("/usuarios/logar", uh.Login)
	r.Post("/usuarios/cadastrar", uh.Register)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth(deps.Store, deps.Secret))

		r.Route("/usuarios", func(r chi.Router) {
			r.Get("/all", uh.List)
			r.Get("/{id}", uh.Get)
			r.Put("/atualizar", uh.Update)
		})

		r.Route("/temas", func(r chi.Router) {
			r.Get("/", th.List)
			r.Post("/", th.Create)
			r.Put("/", th.Update)
			r.Get("/descricao/{descricao}", th.Search)
			r.Get("/{id}", th.Get)
			r.Delete("/{id}", th.Delete)
		})

		r.Route("/postagens", func(r chi.Router) {
			r.Get("/", ph.List)
			r.Post("/", ph.Create)
			r.Put("/", ph.Update)
			r.Get("/titulo/{titulo}", ph.Search)
			r.Get("/{id}", ph.Get)
			r.Delete("/{id}", ph.Delete)
		})
	})

	return r
}
