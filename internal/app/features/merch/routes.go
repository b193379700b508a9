package merch

import "github.com/go-chi/chi/v5"

// Routes mounts the storefront under the base path (typically "/merch").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
