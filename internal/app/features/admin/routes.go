package admin

import "github.com/go-chi/chi/v5"

// Routes mounts the console landing (typically at "/admin"). Gating happens
// inside the handler so unauthorized requests get the not-found page, not a
// redirect that reveals the route.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeDashboard)
	return r
}
