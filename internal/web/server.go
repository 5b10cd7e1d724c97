package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/app"
)

// NewServer wires routes and returns an http.Handler.
func NewServer(s *app.Service, timeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(timeout))
	r.Use(accessLog)

	h := &handlers{svc: s, tpl: loadTemplates()}
	r.Get("/", h.index)
	r.Get("/health", h.health)
	r.Post("/play", h.play)
	r.Post("/jump", h.jump)
	r.Post("/order", h.order)
	r.Post("/reset", h.reset)
	return r
}

// accessLog logs each request with its chi request id.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
