// Package gates is the single capability check consumed by every gated
// view. A gate resolves to one of three outcomes:
//
//   - Allowed: proceed, user context returned.
//   - NotFound: signed out or insufficient role. Restricted routes render
//     the generic not-found page rather than an explicit permission error,
//     so their existence is not revealed to unauthorized users.
//   - Loading: a stored credential exists but the profile could not be
//     resolved this request (transient API failure). Capabilities are
//     unknown, not absent; the caller renders a retryable page.
package gates

import (
	"net/http"

	uierrors "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/errors"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/authz"
)

// Outcome is the tri-state gate decision.
type Outcome int

const (
	Allowed Outcome = iota
	NotFound
	Loading
)

// Result carries the decision plus the user context for allowed requests.
type Result struct {
	Outcome Outcome
	Role    string
	Name    string
	UserID  string
}

// OK reports whether the request may proceed.
func (g Result) OK() bool { return g.Outcome == Allowed }

// Check evaluates allow against the session state without writing a
// response. Views that need custom failure rendering use this directly.
func Check(r *http.Request, allow func(*http.Request) bool) Result {
	if st := auth.StateFrom(r); st != nil && st.Pending {
		return Result{Outcome: Loading}
	}
	role, name, userID, ok := authz.UserCtx(r)
	if !ok || !allow(r) {
		return Result{Outcome: NotFound}
	}
	return Result{Outcome: Allowed, Role: role, Name: name, UserID: userID}
}

// Require evaluates allow and renders the failure page itself: the generic
// not-found view for NotFound, the retryable unavailable view for Loading.
// Callers return immediately when OK() is false.
func Require(w http.ResponseWriter, r *http.Request, allow func(*http.Request) bool) Result {
	res := Check(r, allow)
	switch res.Outcome {
	case NotFound:
		uierrors.RenderNotFound(w, r)
	case Loading:
		uierrors.RenderUnavailable(w, r)
	}
	return res
}

// RequireStaff gates the admin console shell.
func RequireStaff(w http.ResponseWriter, r *http.Request) Result {
	return Require(w, r, authz.IsStaff)
}

// RequireEventManager gates the admin events screens.
func RequireEventManager(w http.ResponseWriter, r *http.Request) Result {
	return Require(w, r, authz.CanManageEvents)
}

// RequireMerchManager gates the admin merch screens.
func RequireMerchManager(w http.ResponseWriter, r *http.Request) Result {
	return Require(w, r, authz.CanManageMerch)
}

// RequireUserManager gates the admin users and clubs screens.
func RequireUserManager(w http.ResponseWriter, r *http.Request) Result {
	return Require(w, r, authz.CanManageUsers)
}
