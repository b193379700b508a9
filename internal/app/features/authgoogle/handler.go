package authgoogle

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/timeouts"
)

const stateCookie = "fest_oauth_state"

// stateClaims is the round-trip payload sealed in the state cookie: the
// random state value plus where to send the user after sign-in.
type stateClaims struct {
	State     string
	ReturnURL string
}

// Handler handles Google OAuth sign-in. The consent flow runs here; the
// credential exchange for a fest token happens at the API.
type Handler struct {
	API        *remote.Client
	SessionMgr *auth.SessionManager
	Log        *zap.Logger

	ClientID     string
	ClientSecret string
	RedirectURL  string

	codec  *securecookie.SecureCookie
	secure bool
}

// NewHandler wires the OAuth flow. baseURL is this portal's public origin;
// the Google console must list baseURL+"/auth/google/callback".
func NewHandler(api *remote.Client, sm *auth.SessionManager, clientID, clientSecret, baseURL, stateKey string, secure bool, logger *zap.Logger) *Handler {
	return &Handler{
		API:          api,
		SessionMgr:   sm,
		Log:          logger,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  baseURL + "/auth/google/callback",
		codec:        securecookie.New([]byte(stateKey), nil),
		secure:       secure,
	}
}

// IsConfigured reports whether Google sign-in can be offered.
func (h *Handler) IsConfigured() bool {
	return h.ClientID != "" && h.ClientSecret != ""
}

func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.RedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// ServeLogin handles GET /auth/google: seals the anti-forgery state in a
// short-lived cookie and redirects to the consent screen.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if !h.IsConfigured() {
		h.Log.Warn("google oauth not configured")
		http.Redirect(w, r, "/login?error=google_not_configured", http.StatusSeeOther)
		return
	}

	state, err := generateState()
	if err != nil {
		h.Log.Error("oauth state generation failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	returnURL := r.URL.Query().Get("return")
	if returnURL == "" || returnURL[0] != '/' {
		returnURL = "/dashboard"
	}

	encoded, err := h.codec.Encode(stateCookie, stateClaims{State: state, ReturnURL: returnURL})
	if err != nil {
		h.Log.Error("oauth state encode failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    encoded,
		Path:     "/auth/google",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.oauth2Config().AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// ServeCallback handles GET /auth/google/callback.
func (h *Handler) ServeCallback(w http.ResponseWriter, r *http.Request) {
	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.Log.Warn("google oauth denied",
			zap.String("error", errParam),
			zap.String("description", r.URL.Query().Get("error_description")))
		http.Redirect(w, r, "/login?error=google_denied", http.StatusSeeOther)
		return
	}

	claims, ok := h.readState(w, r)
	if !ok {
		http.Redirect(w, r, "/login?error=invalid_state", http.StatusSeeOther)
		return
	}
	if state := r.URL.Query().Get("state"); state == "" || state != claims.State {
		h.Log.Warn("oauth state mismatch")
		http.Redirect(w, r, "/login?error=invalid_state", http.StatusSeeOther)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Redirect(w, r, "/login?error=invalid_code", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	token, err := h.oauth2Config().Exchange(ctx, code)
	if err != nil {
		h.Log.Error("oauth code exchange failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=token_exchange", http.StatusSeeOther)
		return
	}

	idToken, _ := token.Extra("id_token").(string)
	if idToken == "" {
		h.Log.Error("google token response missing id_token")
		http.Redirect(w, r, "/login?error=token_exchange", http.StatusSeeOther)
		return
	}

	fest, err := h.API.GoogleExchange(ctx, idToken)
	if err != nil {
		h.Log.Error("credential exchange with API failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=google_rejected", http.StatusSeeOther)
		return
	}

	if err := h.SessionMgr.Login(w, r, fest.AccessToken); err != nil {
		h.Log.Error("session save failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, claims.ReturnURL, http.StatusSeeOther)
}

// readState decodes and expires the state cookie. One callback per consent;
// replays fail decode or mismatch.
func (h *Handler) readState(w http.ResponseWriter, r *http.Request) (stateClaims, bool) {
	var claims stateClaims
	c, err := r.Cookie(stateCookie)
	if err != nil {
		h.Log.Warn("oauth state cookie missing")
		return claims, false
	}
	if err := h.codec.Decode(stateCookie, c.Value, &claims); err != nil {
		h.Log.Warn("oauth state cookie rejected", zap.Error(err))
		return claims, false
	}
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Path:     "/auth/google",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return claims, true
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
