package login

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/errors"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/normalize"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/timeouts"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/viewdata"
)

// Handler serves the email/password login screen.
type Handler struct {
	API        *remote.Client
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger

	// GoogleEnabled shows the Google sign-in button when OAuth is configured.
	GoogleEnabled bool
}

func NewHandler(api *remote.Client, sm *auth.SessionManager, errLog *uierrors.ErrorLogger, googleEnabled bool, logger *zap.Logger) *Handler {
	return &Handler{
		API:           api,
		SessionMgr:    sm,
		ErrLog:        errLog,
		GoogleEnabled: googleEnabled,
		Log:           logger,
	}
}

type pageData struct {
	viewdata.BaseVM
	Email         string
	ReturnURL     string
	Error         string
	GoogleEnabled bool
}

// ServeLogin handles GET /login.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, signedIn := viewdata.CurrentUser(r); signedIn {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.render(w, r, "", "")
}

// HandleLogin handles POST /login.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad login form", err,
			"That form couldn't be read. Please try again.", "/login")
		return
	}

	email := normalize.Email(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		h.render(w, r, email, "Enter your email and password.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	tok, err := h.API.Login(ctx, email, password)
	if err != nil {
		h.Log.Info("login rejected", zap.String("email", email), zap.Error(err))
		h.render(w, r, email, remote.Message(err, "Sign in failed. Check your email and password."))
		return
	}

	if err := h.SessionMgr.Login(w, r, tok.AccessToken); err != nil {
		h.ErrLog.LogServerError(w, r, "session save failed", err,
			"Couldn't start your session. Please try again.", "/login")
		return
	}

	http.Redirect(w, r, returnTarget(r), http.StatusSeeOther)
}

// returnTarget picks the post-login destination: a same-site return URL if
// one was carried through the form, the dashboard otherwise.
func returnTarget(r *http.Request) string {
	if ret := r.PostFormValue("return"); ret != "" && ret[0] == '/' {
		return ret
	}
	return "/dashboard"
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, email, errMsg string) {
	ret := r.URL.Query().Get("return")
	if ret == "" {
		ret = r.PostFormValue("return")
	}
	templates.Render(w, r, "login", pageData{
		BaseVM:        viewdata.NewBaseVM(r, "Sign In", "/"),
		Email:         email,
		ReturnURL:     ret,
		Error:         errMsg,
		GoogleEnabled: h.GoogleEnabled,
	})
}
