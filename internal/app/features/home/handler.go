package home

import (
	"context"
	"net/http"
	"sort"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/errors"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/timeouts"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/viewdata"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

// Handler serves the public storefront: the landing page and the full
// events listing.
type Handler struct {
	API    *remote.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(api *remote.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		API:    api,
		ErrLog: errLog,
		Log:    logger,
	}
}

type listData struct {
	viewdata.BaseVM
	Events []models.Event
}

// ServeRoot handles GET /: the storefront landing with the event grid.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	h.serveListing(w, r, "Welcome")
}

// ServeEvents handles GET /events.
func (h *Handler) ServeEvents(w http.ResponseWriter, r *http.Request) {
	h.serveListing(w, r, "Events")
}

func (h *Handler) serveListing(w http.ResponseWriter, r *http.Request, title string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	events, err := h.API.Bearer(auth.Token(r)).ListEvents(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list events failed", err,
			remote.Message(err, "Couldn't load events. Please try again."), "/")
		return
	}

	templates.Render(w, r, "home", listData{
		BaseVM: viewdata.NewBaseVM(r, title, "/"),
		Events: Visible(events),
	})
}

// Visible filters out hidden events and orders the rest for display:
// pinned events first, then by start date, name as the tiebreak.
func Visible(events []models.Event) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !e.IsHidden {
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsPinned != b.IsPinned {
			return a.IsPinned
		}
		switch {
		case a.StartDate == nil && b.StartDate == nil:
			return a.Name < b.Name
		case a.StartDate == nil:
			return false
		case b.StartDate == nil:
			return true
		case !a.StartDate.Equal(*b.StartDate):
			return a.StartDate.Before(*b.StartDate)
		}
		return a.Name < b.Name
	})

	return out
}
