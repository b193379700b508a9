package dashboard

import (
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the dashboard under the base path (typically "/dashboard").
// Everything here requires a signed-in user.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/", h.ServeDashboard)
	r.Get("/pay/{id}", h.ServePay)
	r.Post("/pay/{id}/confirm", h.HandleConfirmPayment)
	r.Post("/registrations/{id}/leave", h.HandleLeave)
	r.Post("/invitations/{id}", h.HandleInvitation)

	return r
}
