package notices

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/notify"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the toast feed: the layout's notice script polls the
// active list and posts dismissals back. Notices are scoped to the calling
// session through the hub, so one visitor never sees or dismisses
// another's toasts.
type Handler struct {
	Hub *notify.Hub
	Log *zap.Logger
}

func NewHandler(hub *notify.Hub, logger *zap.Logger) *Handler {
	return &Handler{Hub: hub, Log: logger}
}

// wireNotice is the JSON shape the page script consumes. Duration crosses
// the wire in milliseconds; zero means sticky.
type wireNotice struct {
	ID         string `json:"id"`
	Message    string `json:"message"`
	Kind       string `json:"kind"`
	DurationMS int64  `json:"durationMs"`
}

// ServeActive handles GET /notices.
func (h *Handler) ServeActive(w http.ResponseWriter, r *http.Request) {
	active := h.Hub.Active(auth.Token(r))
	out := make([]wireNotice, len(active))
	for i, n := range active {
		out[i] = wireNotice{
			ID:         n.ID,
			Message:    n.Message,
			Kind:       string(n.Kind),
			DurationMS: n.Duration.Milliseconds(),
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		h.Log.Warn("notice feed encode failed", zap.Error(err))
	}
}

// HandleDismiss handles POST /notices/{id}/dismiss. The dismiss lands on
// the calling session's queue only.
func (h *Handler) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing notice id", http.StatusBadRequest)
		return
	}
	h.Hub.Dismiss(auth.Token(r), id)
	w.WriteHeader(http.StatusNoContent)
}
