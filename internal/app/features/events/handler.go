package events

import (
	"context"
	"html/template"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/errors"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/fees"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/htmlsanitize"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/normalize"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/notify"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/regform"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/timeouts"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/viewdata"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Handler serves the event detail page and drives the registration form.
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

type detailData struct {
	viewdata.BaseVM
	Event       models.Event
	Description template.HTML
	Form        *regform.Form
	Fee         float64
	Status      regform.Status
	FormError   string
}

// ServeDetail handles GET /events/{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	api := h.API.Bearer(auth.Token(r))

	event, err := api.GetEvent(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if remote.IsNotFound(err) {
			uierrors.RenderNotFound(w, r, "That event doesn't exist.", "/events")
			return
		}
		h.ErrLog.LogServerError(w, r, "get event failed", err,
			remote.Message(err, "Couldn't load this event. Please try again."), "/events")
		return
	}

	form := regform.New(&event)
	if _, signedIn := viewdata.CurrentUser(r); signedIn {
		form.Status = h.registrationStatus(ctx, api, event.ID)
	}

	h.render(w, r, event, form, "")
}

// HandleRegister handles POST /events/{id}/register. The posted form carries
// the invitee slots; the "action" field selects between adding a slot,
// removing one, and submitting the registration.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad registration form", err,
			"That form couldn't be read. Please try again.", "/events")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	api := h.API.Bearer(auth.Token(r))

	event, err := api.GetEvent(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if remote.IsNotFound(err) {
			uierrors.RenderNotFound(w, r, "That event doesn't exist.", "/events")
			return
		}
		h.ErrLog.LogServerError(w, r, "get event failed", err,
			remote.Message(err, "Couldn't load this event. Please try again."), "/events")
		return
	}

	if !event.RegistrationsOpen {
		h.render(w, r, event, regform.New(&event), "Registrations for this event are closed.")
		return
	}

	form := regform.New(&event)
	for i, email := range r.PostForm["team_email"] {
		form.Emails = append(form.Emails, "")
		form.SetEmail(i, normalize.Email(email))
	}

	if v := r.PostFormValue("remove_slot"); v != "" {
		idx, err := strconv.Atoi(v)
		if err != nil {
			idx = -1
		}
		form.RemoveSlot(idx)
		h.render(w, r, event, form, "")
		return
	}

	switch r.PostFormValue("action") {
	case "add_slot":
		if err := form.AddSlot(); err != nil {
			h.notices(r).Warning(err.Error())
		}
		h.render(w, r, event, form, "")

	default:
		h.submit(w, r, api, event, form)
	}
}

// submit validates locally and only then calls the registration endpoint.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request, api *remote.Client, event models.Event, form *regform.Form) {
	if err := form.Validate(); err != nil {
		h.render(w, r, event, form, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	loading := h.notices(r).Loading("Submitting your registration...")
	_, err := api.CreateRegistration(ctx, event.ID, form.TeamEmails())
	h.notices(r).Dismiss(loading)
	if err != nil {
		msg := remote.Message(err, "Registration failed. Please try again.")
		h.notices(r).Error(msg)
		h.Log.Warn("create registration failed",
			zap.String("event_id", event.ID),
			zap.Error(err))
		h.render(w, r, event, form, msg)
		return
	}

	form.MarkPending()
	h.notices(r).Success("You're registered! Complete the payment to confirm your spot.")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, event models.Event, form *regform.Form, formError string) {
	templates.Render(w, r, "events", detailData{
		BaseVM:      viewdata.NewBaseVM(r, event.Name, "/events"),
		Event:       event,
		Description: htmlsanitize.Rich(event.Description),
		Form:        form,
		Fee:         fees.Calculate(&event, form.MemberCount()),
		Status:      form.Status,
		FormError:   formError,
	})
}

// registrationStatus looks up the signed-in user's registration for the
// event. A lookup failure degrades to NotRegistered; the detail page still
// renders and the dashboard remains the source of truth.
func (h *Handler) registrationStatus(ctx context.Context, api *remote.Client, eventID string) regform.Status {
	regs, err := api.ListRegistrations(ctx)
	if err != nil {
		h.Log.Warn("list registrations failed", zap.Error(err))
		return regform.NotRegistered
	}
	for _, reg := range regs {
		if reg.Event.ID != eventID {
			continue
		}
		if reg.IsPaid() {
			return regform.Paid
		}
		return regform.Pending
	}
	return regform.NotRegistered
}
