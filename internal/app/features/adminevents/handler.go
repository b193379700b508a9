package adminevents

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/errors"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/authz"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/gates"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/notify"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/timeouts"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/viewdata"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Handler serves the admin events screens: the management table with its
// visibility toggles, the create and edit forms, and the participant views.
type Handler struct {
	API     *remote.Client
	Notices *notify.Hub
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

func NewHandler(api *remote.Client, hub *notify.Hub, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		API:     api,
		Notices: hub,
		ErrLog:  errLog,
		Log:     logger,
	}
}

// notices resolves the caller's session channel so toasts stay private to
// the browser that triggered them.
func (h *Handler) notices(r *http.Request) *notify.Bus {
	return h.Notices.Channel(auth.Token(r))
}

// Row is one line of the management table: the event joined with its
// registration summary when one exists.
type Row struct {
	Event   models.Event
	Summary *remote.EventSummary
}

type listData struct {
	viewdata.BaseVM
	Rows   []Row
	CanPin bool
}

// ServeList handles GET /admin/events.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireEventManager(w, r)
	if !g.OK() {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	api := h.API.Bearer(auth.Token(r))

	events, err := api.ListEvents(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list events failed", err,
			remote.Message(err, "Couldn't load events. Please try again."), "/admin")
		return
	}

	summaries, err := api.AdminEvents(ctx)
	if err != nil {
		// The table is still useful without counts.
		h.Log.Warn("admin event summaries failed", zap.Error(err))
		summaries = nil
	}

	templates.Render(w, r, "adminevents", listData{
		BaseVM: viewdata.NewBaseVM(r, "Manage Events", "/admin"),
		Rows:   BuildRows(events, summaries, g.Role, g.UserID),
		CanPin: authz.CanPinEvents(r),
	})
}

// BuildRows joins events with their summaries and scopes the table to what
// the role may manage: coordinators only see their assigned events.
func BuildRows(events []models.Event, summaries []remote.EventSummary, role, userID string) []Row {
	byID := make(map[string]*remote.EventSummary, len(summaries))
	for i := range summaries {
		byID[summaries[i].ID] = &summaries[i]
	}

	rows := make([]Row, 0, len(events))
	for _, e := range events {
		if role == models.RoleCoordinator && !e.HasCoordinator(userID) {
			continue
		}
		rows = append(rows, Row{Event: e, Summary: byID[e.ID]})
	}
	return rows
}

// manageableEvent loads the event and applies per-event scoping. Events the
// role cannot touch are reported as not found, same as unknown ids.
func (h *Handler) manageableEvent(ctx context.Context, w http.ResponseWriter, r *http.Request, api *remote.Client) (models.Event, bool) {
	event, err := api.GetEvent(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if remote.IsNotFound(err) {
			uierrors.RenderNotFound(w, r, "That event doesn't exist.", "/admin/events")
			return models.Event{}, false
		}
		h.ErrLog.LogServerError(w, r, "get event failed", err,
			remote.Message(err, "Couldn't load that event. Please try again."), "/admin/events")
		return models.Event{}, false
	}
	if !authz.CanManageEvent(r, &event) {
		uierrors.RenderNotFound(w, r)
		return models.Event{}, false
	}
	return event, true
}
