package signup

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/errors"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/normalize"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/timeouts"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/viewdata"
)

// Handler serves the account creation screen.
type Handler struct {
	API        *remote.Client
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(api *remote.Client, sm *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		API:        api,
		SessionMgr: sm,
		ErrLog:     errLog,
		Log:        logger,
	}
}

type pageData struct {
	viewdata.BaseVM
	Form  remote.SignupRequest
	Error string
}

// ServeSignup handles GET /signup.
func (h *Handler) ServeSignup(w http.ResponseWriter, r *http.Request) {
	if _, signedIn := viewdata.CurrentUser(r); signedIn {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.render(w, r, remote.SignupRequest{}, "")
}

// HandleSignup handles POST /signup.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad signup form", err,
			"That form couldn't be read. Please try again.", "/signup")
		return
	}

	form := remote.SignupRequest{
		Name:               normalize.Name(r.PostFormValue("name")),
		Email:              normalize.Email(r.PostFormValue("email")),
		Password:           r.PostFormValue("password"),
		IsVITian:           r.PostFormValue("is_vitian") == "yes",
		RegistrationNumber: strings.TrimSpace(r.PostFormValue("registration_number")),
		PhoneNumber:        strings.TrimSpace(r.PostFormValue("phone_number")),
		CollegeName:        strings.TrimSpace(r.PostFormValue("college_name")),
	}

	if msg := validate(form); msg != "" {
		h.render(w, r, form, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	tok, err := h.API.Signup(ctx, form)
	if err != nil {
		h.Log.Info("signup rejected", zap.String("email", form.Email), zap.Error(err))
		h.render(w, r, form, remote.Message(err, "Sign up failed. Please try again."))
		return
	}

	if err := h.SessionMgr.Login(w, r, tok.AccessToken); err != nil {
		h.ErrLog.LogServerError(w, r, "session save failed", err,
			"Your account was created but sign-in failed. Try signing in.", "/login")
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// validate applies the local checks: the API enforces the rest.
func validate(form remote.SignupRequest) string {
	switch {
	case form.Name == "":
		return "Enter your name."
	case form.Email == "":
		return "Enter your email."
	case len(form.Password) < 8:
		return "Passwords need at least 8 characters."
	case form.IsVITian && form.RegistrationNumber == "":
		return "VIT students need their registration number."
	case !form.IsVITian && form.CollegeName == "":
		return "Enter your college name."
	}
	return ""
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, form remote.SignupRequest, errMsg string) {
	form.Password = ""
	templates.Render(w, r, "signup", pageData{
		BaseVM: viewdata.NewBaseVM(r, "Create Account", "/login"),
		Form:   form,
		Error:  errMsg,
	})
}
