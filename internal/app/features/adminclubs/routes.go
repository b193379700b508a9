package adminclubs

import (
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the club screens under the base path (typically
// "/admin/clubs").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/", h.ServeList)
	r.Get("/new", h.ServeNew)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}/edit", h.ServeEdit)
	r.Post("/{id}/edit", h.HandleUpdate)
	r.Post("/{id}/delete", h.HandleDelete)

	return r
}
