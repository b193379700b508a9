package logout

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
)

// Handler clears the session. No template; it always redirects.
type Handler struct {
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

func NewHandler(sm *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{SessionMgr: sm, Log: logger}
}

// HandleLogout handles POST /logout.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.SessionMgr.Logout(w, r)
}
