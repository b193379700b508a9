package adminusers

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/errors"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/gates"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/notify"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/timeouts"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/viewdata"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// AssignableRoles are the roles the role picker offers.
var AssignableRoles = []string{
	models.RoleStudent,
	models.RoleCoordinator,
	models.RoleSuperCoordinator,
	models.RoleRegistrationCoordinator,
	models.RoleMerchCoordinator,
	models.RoleAdmin,
}

// Handler serves the user management screens.
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

type listData struct {
	viewdata.BaseVM
	Users  []models.User
	Query  string
	Roles  []string
	SelfID string
}

// ServeList handles GET /admin/users, with an optional ?q= name/email
// filter.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireUserManager(w, r)
	if !g.OK() {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	users, err := h.API.Bearer(auth.Token(r)).ListUsers(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list users failed", err,
			remote.Message(err, "Couldn't load the users. Please try again."), "/admin")
		return
	}

	q := query.Search(r, "q")

	templates.Render(w, r, "adminusers", listData{
		BaseVM: viewdata.NewBaseVM(r, "Manage Users", "/admin"),
		Users:  Filter(users, q),
		Query:  q,
		Roles:  AssignableRoles,
		SelfID: g.UserID,
	})
}

// Filter narrows the user list by a case-insensitive substring match on
// name, email, or registration number, then orders by name.
func Filter(users []models.User, query string) []models.User {
	out := make([]models.User, 0, len(users))
	q := strings.ToLower(query)
	for _, u := range users {
		if q != "" &&
			!strings.Contains(strings.ToLower(u.Name), q) &&
			!strings.Contains(strings.ToLower(u.Email), q) &&
			!strings.Contains(strings.ToLower(u.RegistrationNumber), q) {
			continue
		}
		out = append(out, u)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// HandleRoleChange handles POST /admin/users/{id}/role.
func (h *Handler) HandleRoleChange(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireUserManager(w, r)
	if !g.OK() {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad role form", err,
			"That request couldn't be read.", "/admin/users")
		return
	}

	userID := chi.URLParam(r, "id")
	role := models.NormalizeRole(r.PostFormValue("role"))

	if !assignable(role) {
		h.ErrLog.LogBadRequest(w, r, "unknown role", nil,
			"That role doesn't exist.", "/admin/users")
		return
	}
	if userID == g.UserID {
		h.notices(r).Warning("You can't change your own role.")
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.API.Bearer(auth.Token(r)).UpdateUserRole(ctx, userID, role); err != nil {
		h.notices(r).Error(remote.Message(err, "Couldn't change the role."))
		h.Log.Warn("role change rejected",
			zap.String("user_id", userID),
			zap.String("role", role),
			zap.Error(err))
	} else {
		h.notices(r).Success("Role updated.")
	}
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// HandleDelete handles POST /admin/users/{id}/delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireUserManager(w, r)
	if !g.OK() {
		return
	}

	userID := chi.URLParam(r, "id")
	if userID == g.UserID {
		h.notices(r).Warning("You can't delete your own account from here.")
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.API.Bearer(auth.Token(r)).DeleteUser(ctx, userID); err != nil {
		h.notices(r).Error(remote.Message(err, "Couldn't delete the account."))
	} else {
		h.notices(r).Success("Account deleted.")
	}
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func assignable(role string) bool {
	for _, r := range AssignableRoles {
		if r == role {
			return true
		}
	}
	return false
}
