package adminevents

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	uierrors "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/errors"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/authz"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/gates"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/timeouts"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/txn"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

// toggleFields maps the posted field name to the flag it flips. Anything
// else is rejected before reaching the API.
var toggleFields = map[string]func(*models.Event) *bool{
	"registrationsOpen": func(e *models.Event) *bool { return &e.RegistrationsOpen },
	"isHidden":          func(e *models.Event) *bool { return &e.IsHidden },
	"isPinned":          func(e *models.Event) *bool { return &e.IsPinned },
}

// HandleToggle handles POST /admin/events/{id}/toggle: flip one visibility
// flag. The flip is optimistic; a rejected patch reverts and surfaces the
// server's message.
func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireEventManager(w, r); !g.OK() {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad toggle form", err,
			"That request couldn't be read.", "/admin/events")
		return
	}

	field := r.PostFormValue("field")
	access, ok := toggleFields[field]
	if !ok {
		h.ErrLog.LogBadRequest(w, r, "unknown toggle field", nil,
			"That setting can't be changed here.", "/admin/events")
		return
	}
	if field == "isPinned" && !authz.CanPinEvents(r) {
		uierrors.RenderNotFound(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	api := h.API.Bearer(auth.Token(r))

	event, ok := h.manageableEvent(ctx, w, r, api)
	if !ok {
		return
	}

	flip := txn.Begin(event, func(e models.Event) models.Event { return e })
	flip.Apply(func(e *models.Event) { flag := access(e); *flag = !*flag })

	next := flip.Value()
	if _, err := api.PatchEvent(ctx, event.ID, map[string]any{field: *access(&next)}); err != nil {
		flip.Revert()
		h.notices(r).Error(remote.Message(err, "Couldn't update the event."))
		h.Log.Warn("event toggle rejected",
			zap.String("event_id", event.ID),
			zap.String("field", field),
			zap.Error(err))
	} else {
		flip.Commit()
	}

	http.Redirect(w, r, "/admin/events", http.StatusSeeOther)
}
