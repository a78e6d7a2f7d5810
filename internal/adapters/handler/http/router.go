package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handlers struct {
	Poll       *PollHandler
	Vote       *VoteHandler
	Suggestion *SuggestionHandler
	Admin      *AdminHandler
	Static     *StaticHandler
}

func NewHandler(h Handlers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/bootstrap", h.Poll.Bootstrap)
		r.Post("/vote", h.Vote.Vote)
		r.Post("/suggestion", h.Suggestion.Submit)

		r.With(h.Admin.Authorize).Get("/admin/config", h.Admin.GetConfig)
		r.With(h.Admin.Authorize).Post("/admin/config", h.Admin.ReplaceConfig)
	})

	r.Get("/*", h.Static.Serve)
	r.Head("/*", h.Static.Head)

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found")
}
