// Package errors renders the portal's failure pages. Per the access design,
// forbidden routes render the same generic not-found page as unknown URLs,
// so restricted screens are indistinguishable from absent ones.
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

// pageData is the basic view model for error pages.
type pageData struct {
	Title      string
	IsLoggedIn bool
	IsStaff    bool
	UserName   string
	Message    string
	BackURL    string
}

// Handler is the errors feature handler. No backend needed; it just renders
// templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders the generic not-found page. Mounted as the router's
// NotFound handler and reused by gates for forbidden screens.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r)
}

// RenderNotFound writes the generic 404 page. Callers may override the
// message and the back link: RenderNotFound(w, r, message, backURL).
func RenderNotFound(w http.ResponseWriter, r *http.Request, opts ...string) {
	user, signed := auth.CurrentUser(r)
	name, staff := "", false
	if signed {
		name = user.Name
		staff = models.IsStaffRole(user.Role)
	}

	message := "The page you are looking for doesn't exist."
	backURL := "/"
	if len(opts) > 0 && opts[0] != "" {
		message = opts[0]
	}
	if len(opts) > 1 && opts[1] != "" {
		backURL = opts[1]
	}

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_notfound", pageData{
		Title:      "Page not found",
		IsLoggedIn: signed,
		IsStaff:    staff,
		UserName:   name,
		Message:    message,
		BackURL:    backURL,
	})
}

// RenderUnavailable writes a retryable 503 page, shown when the session
// could not be resolved because the fest API was unreachable.
func RenderUnavailable(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusServiceUnavailable)
	templates.Render(w, r, "error_unavailable", pageData{
		Title:   "Temporarily unavailable",
		Message: "We couldn't reach the events service. Please try again in a moment.",
		BackURL: r.URL.RequestURI(),
	})
}
