package login

import "github.com/go-chi/chi/v5"

// Routes mounts the login screen (typically at "/login").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeLogin)
	r.Post("/", h.HandleLogin)
	return r
}
