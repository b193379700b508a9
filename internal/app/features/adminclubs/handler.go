package adminclubs

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/errors"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/gates"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/normalize"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/notify"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/timeouts"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/viewdata"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Handler serves the club management screens.
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
	Clubs []models.Club
}

type formData struct {
	viewdata.BaseVM
	ClubID   string
	Form     remote.ClubInput
	Faculty  string
	Students string
	Error    string
}

// ServeList handles GET /admin/clubs.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireUserManager(w, r); !g.OK() {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	clubs, err := h.API.Bearer(auth.Token(r)).ListClubs(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list clubs failed", err,
			remote.Message(err, "Couldn't load the clubs. Please try again."), "/admin")
		return
	}

	templates.Render(w, r, "adminclubs", listData{
		BaseVM: viewdata.NewBaseVM(r, "Manage Clubs", "/admin"),
		Clubs:  clubs,
	})
}

// ServeNew handles GET /admin/clubs/new.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireUserManager(w, r); !g.OK() {
		return
	}
	h.renderForm(w, r, formData{})
}

// HandleCreate handles POST /admin/clubs.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireUserManager(w, r); !g.OK() {
		return
	}

	in, faculty, students, err := parseClubForm(r)
	if err != nil {
		h.renderForm(w, r, formData{Form: in, Faculty: faculty, Students: students, Error: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.API.Bearer(auth.Token(r)).CreateClub(ctx, in); err != nil {
		h.renderForm(w, r, formData{
			Form: in, Faculty: faculty, Students: students,
			Error: remote.Message(err, "Couldn't create the club. Please try again."),
		})
		return
	}

	h.notices(r).Success("Club created.")
	http.Redirect(w, r, "/admin/clubs", http.StatusSeeOther)
}

// ServeEdit handles GET /admin/clubs/{id}/edit.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireUserManager(w, r); !g.OK() {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	club, ok := h.findClub(ctx, w, r)
	if !ok {
		return
	}

	h.renderForm(w, r, formData{
		ClubID: club.ID,
		Form: remote.ClubInput{
			Name:                club.Name,
			FacultyCoordinators: club.FacultyCoordinators,
			StudentCoordinators: club.StudentCoordinators,
		},
		Faculty:  formatCoordinators(club.FacultyCoordinators),
		Students: formatCoordinators(club.StudentCoordinators),
	})
}

// HandleUpdate handles POST /admin/clubs/{id}/edit.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireUserManager(w, r); !g.OK() {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	club, ok := h.findClub(ctx, w, r)
	if !ok {
		return
	}

	in, faculty, students, err := parseClubForm(r)
	if err != nil {
		h.renderForm(w, r, formData{ClubID: club.ID, Form: in, Faculty: faculty, Students: students, Error: err.Error()})
		return
	}

	if _, err := h.API.Bearer(auth.Token(r)).UpdateClub(ctx, club.ID, in); err != nil {
		h.renderForm(w, r, formData{
			ClubID: club.ID, Form: in, Faculty: faculty, Students: students,
			Error: remote.Message(err, "Couldn't save the club. Please try again."),
		})
		return
	}

	h.notices(r).Success("Club saved.")
	http.Redirect(w, r, "/admin/clubs", http.StatusSeeOther)
}

// HandleDelete handles POST /admin/clubs/{id}/delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireUserManager(w, r); !g.OK() {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	club, ok := h.findClub(ctx, w, r)
	if !ok {
		return
	}

	if err := h.API.Bearer(auth.Token(r)).DeleteClub(ctx, club.ID); err != nil {
		h.notices(r).Error(remote.Message(err, "Couldn't delete the club."))
	} else {
		h.notices(r).Success("Club deleted.")
	}
	http.Redirect(w, r, "/admin/clubs", http.StatusSeeOther)
}

func (h *Handler) findClub(ctx context.Context, w http.ResponseWriter, r *http.Request) (models.Club, bool) {
	clubs, err := h.API.Bearer(auth.Token(r)).ListClubs(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list clubs failed", err,
			remote.Message(err, "Couldn't load the clubs. Please try again."), "/admin/clubs")
		return models.Club{}, false
	}
	id := chi.URLParam(r, "id")
	for _, c := range clubs {
		if c.ID == id {
			return c, true
		}
	}
	uierrors.RenderNotFound(w, r, "That club doesn't exist.", "/admin/clubs")
	return models.Club{}, false
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, data formData) {
	title := "New Club"
	if data.ClubID != "" {
		title = "Edit Club"
	}
	data.BaseVM = viewdata.NewBaseVM(r, title, "/admin/clubs")
	templates.Render(w, r, "adminclubs_form", data)
}

// parseClubForm reads the club name and the two coordinator lists, one
// "name, email, phone" per line.
func parseClubForm(r *http.Request) (remote.ClubInput, string, string, error) {
	if err := r.ParseForm(); err != nil {
		return remote.ClubInput{}, "", "", fmt.Errorf("the form couldn't be read")
	}

	faculty := r.PostFormValue("faculty_coordinators")
	students := r.PostFormValue("student_coordinators")

	in := remote.ClubInput{
		Name:                normalize.Name(r.PostFormValue("name")),
		FacultyCoordinators: parseCoordinators(faculty),
		StudentCoordinators: parseCoordinators(students),
	}
	if in.Name == "" {
		return in, faculty, students, fmt.Errorf("the club needs a name")
	}
	return in, faculty, students, nil
}

func parseCoordinators(raw string) []models.Coordinator {
	out := []models.Coordinator{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 3)
		c := models.Coordinator{Name: normalize.Name(parts[0])}
		if len(parts) > 1 {
			c.Email = normalize.Email(parts[1])
		}
		if len(parts) > 2 {
			c.Phone = strings.TrimSpace(parts[2])
		}
		out = append(out, c)
	}
	return out
}

func formatCoordinators(list []models.Coordinator) string {
	var b strings.Builder
	for _, c := range list {
		fmt.Fprintf(&b, "%s, %s, %s\n", c.Name, c.Email, c.Phone)
	}
	return b.String()
}
