package events

import (
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the event detail routes under the base path (typically
// "/events" from bootstrap). The listing itself lives in the home feature.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Get("/{id}", h.ServeDetail)

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Post("/{id}/register", h.HandleRegister)
	})

	return r
}
