package authgoogle

import "github.com/go-chi/chi/v5"

// Routes returns the router for Google OAuth endpoints. These routes are
// public; signing in is the point.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeLogin)
	r.Get("/callback", h.ServeCallback)
	return r
}
