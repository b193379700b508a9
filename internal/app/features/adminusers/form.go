package adminusers

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/gates"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/normalize"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/timeouts"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/viewdata"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

// CreatableRoles are the roles the coordinator creation form offers.
// Students sign themselves up; admins are promoted through the role picker.
var CreatableRoles = []string{
	models.RoleCoordinator,
	models.RoleSuperCoordinator,
	models.RoleMerchCoordinator,
}

// Schools are the campus school codes the form offers.
var Schools = []string{
	"sense", "select", "scope", "sas", "ssl", "smec", "vfit", "sce", "vitsol",
}

type formData struct {
	viewdata.BaseVM
	Form    remote.UserCreateInput
	Roles   []string
	Schools []string
	Clubs   []models.Club
	Error   string
}

// ServeNew handles GET /admin/users/new.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireUserManager(w, r); !g.OK() {
		return
	}
	h.renderForm(w, r, formData{
		Form: remote.UserCreateInput{Role: models.RoleCoordinator},
	})
}

// HandleCreate handles POST /admin/users: provision a coordinator account.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireUserManager(w, r); !g.OK() {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad user form", err,
			"That form couldn't be read.", "/admin/users")
		return
	}

	in := remote.UserCreateInput{
		Name:        normalize.Name(r.PostFormValue("name")),
		Email:       normalize.Email(r.PostFormValue("email")),
		Password:    r.PostFormValue("password"),
		Role:        models.NormalizeRole(r.PostFormValue("role")),
		PhoneNumber: strings.TrimSpace(r.PostFormValue("phone_number")),
		School:      r.PostFormValue("school"),
		Club:        r.PostFormValue("club"),
	}

	if msg := validateCreate(in); msg != "" {
		in.Password = ""
		h.renderForm(w, r, formData{Form: in, Error: msg})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.API.Bearer(auth.Token(r)).CreateUser(ctx, in)
	if err != nil {
		h.Log.Warn("user create rejected",
			zap.String("email", in.Email),
			zap.String("role", in.Role),
			zap.Error(err))
		in.Password = ""
		h.renderForm(w, r, formData{
			Form:  in,
			Error: remote.Message(err, "Couldn't create the account."),
		})
		return
	}

	h.notices(r).Success("Account created for " + user.Name + ".")
	h.Log.Info("user created",
		zap.String("user_id", user.ID),
		zap.String("role", in.Role))
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// validateCreate applies the local checks; the API enforces the rest.
func validateCreate(in remote.UserCreateInput) string {
	switch {
	case in.Name == "":
		return "Enter a name."
	case in.Email == "":
		return "Enter an email."
	case len(in.Password) < 8:
		return "Passwords need at least 8 characters."
	case !creatable(in.Role):
		return "That role can't be assigned here."
	}
	return ""
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, data formData) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	clubs, err := h.API.Bearer(auth.Token(r)).ListClubs(ctx)
	if err != nil {
		// The club picker degrades to empty; the form still works.
		h.Log.Warn("list clubs failed", zap.Error(err))
	}
	data.Clubs = clubs
	data.Roles = CreatableRoles
	data.Schools = Schools
	data.BaseVM = viewdata.NewBaseVM(r, "New Coordinator", "/admin/users")

	templates.Render(w, r, "adminusers_form", data)
}

func creatable(role string) bool {
	for _, r := range CreatableRoles {
		if r == role {
			return true
		}
	}
	return false
}
