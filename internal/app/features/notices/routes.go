package notices

import "github.com/go-chi/chi/v5"

// Routes mounts the notice feed (typically at "/notices").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeActive)
	r.Post("/{id}/dismiss", h.HandleDismiss)
	return r
}
