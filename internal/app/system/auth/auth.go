// Package auth owns the portal's session state: the bearer token issued by
// the fest API, persisted in a signed cookie session under a fixed key, and
// the current user resolved from it. There is exactly one SessionManager per
// running application, constructed in bootstrap and injected into every
// feature that needs it.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/timeouts"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

// tokenKey is the fixed name the credential token is stored under. Expiry is
// not tracked here; a stale token is discovered when a profile fetch fails.
const tokenKey = "fest_token"

// State is what the middleware resolves for a request.
//
// Exactly one of these shapes holds:
//   - User set: the token was accepted and the profile fetched.
//   - Pending: a token exists but the profile fetch failed transiently, so
//     the user's capabilities are unknown right now.
//   - neither: signed out (no token, or the API rejected the token and the
//     middleware cleared it).
type State struct {
	User    *models.User
	Token   string
	Pending bool
}

// SessionManager resolves and mutates session state. Construct with
// NewSessionManager; the zero value is unusable.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	api   *remote.Client
	log   *zap.Logger
}

// NewSessionManager builds the cookie store and wires the remote client used
// to resolve profiles. secure controls the cookie Secure flag and SameSite
// mode (None in production for the hosted payment redirect, Lax in dev).
func NewSessionManager(sessionKey, cookieName, domain string, secure bool, api *remote.Client, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide >=32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	}
	store.Options = opts

	return &SessionManager{
		store: store,
		name:  cookieName,
		api:   api,
		log:   logger,
	}, nil
}

type ctxKey string

const stateKey ctxKey = "sessionState"

// CurrentUser returns the resolved user and a found flag.
func CurrentUser(r *http.Request) (*models.User, bool) {
	st := StateFrom(r)
	if st == nil || st.User == nil {
		return nil, false
	}
	return st.User, true
}

// StateFrom returns the session state the middleware attached, or nil for
// a signed-out request.
func StateFrom(r *http.Request) *State {
	st, _ := r.Context().Value(stateKey).(*State)
	return st
}

// Token returns the bearer token for the request, empty when signed out.
func Token(r *http.Request) string {
	if st := StateFrom(r); st != nil {
		return st.Token
	}
	return ""
}

// LoadSessionUser resolves the current user on every request. If a stored
// token exists it fetches the profile from the fest API: on success the user
// is attached to the context; on a credential rejection the token is cleared
// silently and the request proceeds signed out; on any other failure the
// state is marked pending so gates can tell "unknown" from "absent".
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := sm.store.Get(r, sm.name)

		token, _ := sess.Values[tokenKey].(string)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		user, err := sm.api.Bearer(token).Profile(ctx)
		cancel()

		switch {
		case err == nil:
			user.Role = models.NormalizeRole(user.Role)
			r = withState(r, &State{User: &user, Token: token})
		case remote.IsAuthError(err):
			// Stored credential is no longer valid: discard it and present
			// the signed-out state without surfacing an error.
			delete(sess.Values, tokenKey)
			if saveErr := sess.Save(r, w); saveErr != nil {
				sm.log.Warn("clearing stale token failed", zap.Error(saveErr))
			}
		default:
			sm.log.Warn("profile fetch failed", zap.Error(err))
			r = withState(r, &State{Token: token, Pending: true})
		}

		next.ServeHTTP(w, r)
	})
}

// Login persists a newly issued credential token. The next request's
// middleware pass resolves the profile; callers usually redirect right away.
func (sm *SessionManager) Login(w http.ResponseWriter, r *http.Request, token string) error {
	sess, _ := sm.store.Get(r, sm.name)
	sess.Values[tokenKey] = token
	return sess.Save(r, w)
}

// Logout clears the stored token and redirects to the login screen.
func (sm *SessionManager) Logout(w http.ResponseWriter, r *http.Request) {
	sess, _ := sm.store.Get(r, sm.name)
	delete(sess.Values, tokenKey)
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		sm.log.Warn("logout save failed", zap.Error(err))
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// RequireSignedIn redirects signed-out requests to /login with a return
// parameter. Pending sessions pass through; gates decide what to render.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := StateFrom(r)
		if st == nil {
			ret := url.QueryEscape(currentURI(r))
			if wantsHTML(r) {
				http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
				return
			}
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// helpers

func withState(r *http.Request, st *State) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), stateKey, st))
}

// WithTestState attaches a session state directly, bypassing the middleware.
// Test helper; production code never calls this.
func WithTestState(r *http.Request, st *State) *http.Request {
	return withState(r, st)
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func currentURI(r *http.Request) string {
	u := *r.URL
	return u.RequestURI()
}
