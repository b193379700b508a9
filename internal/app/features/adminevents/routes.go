package adminevents

import (
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the admin event screens under the base path (typically
// "/admin/events"). RequireSignedIn handles the signed-out redirect; role
// checks live in the handlers so failures render as not-found.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/", h.ServeList)
	r.Get("/new", h.ServeNew)
	r.Post("/", h.HandleCreate)

	r.Get("/{id}/edit", h.ServeEdit)
	r.Post("/{id}/edit", h.HandleUpdate)
	r.Post("/{id}/toggle", h.HandleToggle)
	r.Post("/{id}/delete", h.HandleDelete)

	r.Get("/{id}/participants", h.ServeParticipants)
	r.Get("/{id}/participants.csv", h.ServeParticipantsCSV)

	return r
}
