package admin

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
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/timeouts"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/viewdata"
)

// Handler serves the admin console landing: aggregate stats plus the links
// the current role may use.
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

type pageData struct {
	viewdata.BaseVM
	Stats remote.Stats

	CanManageEvents bool
	CanManageMerch  bool
	CanManageUsers  bool
}

// ServeDashboard handles GET /admin.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireStaff(w, r); !g.OK() {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stats, err := h.API.Bearer(auth.Token(r)).AdminStats(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "admin stats failed", err,
			remote.Message(err, "Couldn't load the stats. Please try again."), "/")
		return
	}

	templates.Render(w, r, "admin", pageData{
		BaseVM: viewdata.NewBaseVM(r, "Admin", "/"),
		Stats:  stats,

		CanManageEvents: authz.CanManageEvents(r),
		CanManageMerch:  authz.CanManageMerch(r),
		CanManageUsers:  authz.CanManageUsers(r),
	})
}
