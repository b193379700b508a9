package adminusers

import (
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the user management screens under the base path (typically
// "/admin/users").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/", h.ServeList)
	r.Get("/new", h.ServeNew)
	r.Post("/", h.HandleCreate)
	r.Post("/{id}/role", h.HandleRoleChange)
	r.Post("/{id}/delete", h.HandleDelete)

	return r
}
