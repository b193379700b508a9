package authgoogle_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/authgoogle"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
)

func newHandler(t *testing.T, clientID string) *authgoogle.Handler {
	t.Helper()
	logger := zap.NewNop()
	client := remote.New("http://api.invalid", http.DefaultClient, logger)
	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "fest_session", "", false, client, logger)
	if err != nil {
		t.Fatal(err)
	}
	return authgoogle.NewHandler(client, sm, clientID, "secret", "https://fest.example",
		"0123456789abcdef0123456789abcdef", false, logger)
}

func TestServeLogin_RedirectsToConsentWithStateCookie(t *testing.T) {
	h := newHandler(t, "client-id")

	req := httptest.NewRequest("GET", "/auth/google?return=/events/e1", nil)
	rec := httptest.NewRecorder()
	h.ServeLogin(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTemporaryRedirect)
	}
	loc := rec.Header().Get("Location")
	if !strings.Contains(loc, "accounts.google.com") {
		t.Errorf("redirect = %q, want Google consent URL", loc)
	}
	if !strings.Contains(loc, "state=") {
		t.Errorf("redirect = %q, missing state parameter", loc)
	}

	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "fest_oauth_state" && c.Value != "" && c.HttpOnly {
			found = true
		}
	}
	if !found {
		t.Error("expected an HttpOnly state cookie")
	}
}

func TestServeLogin_UnconfiguredRedirectsToLogin(t *testing.T) {
	h := newHandler(t, "")

	req := httptest.NewRequest("GET", "/auth/google", nil)
	rec := httptest.NewRecorder()
	h.ServeLogin(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/login") {
		t.Errorf("redirect = %q, want /login", loc)
	}
}

func TestServeCallback_MissingStateCookieRejected(t *testing.T) {
	h := newHandler(t, "client-id")

	req := httptest.NewRequest("GET", "/auth/google/callback?state=abc&code=xyz", nil)
	rec := httptest.NewRecorder()
	h.ServeCallback(rec, req)

	if loc := rec.Header().Get("Location"); loc != "/login?error=invalid_state" {
		t.Errorf("redirect = %q, want invalid_state", loc)
	}
}

func TestServeCallback_StateMismatchRejected(t *testing.T) {
	h := newHandler(t, "client-id")

	// Get a real state cookie from the login leg.
	loginRec := httptest.NewRecorder()
	h.ServeLogin(loginRec, httptest.NewRequest("GET", "/auth/google", nil))

	req := httptest.NewRequest("GET", "/auth/google/callback?state=forged&code=xyz", nil)
	for _, c := range loginRec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeCallback(rec, req)

	if loc := rec.Header().Get("Location"); loc != "/login?error=invalid_state" {
		t.Errorf("redirect = %q, want invalid_state", loc)
	}
}

func TestServeCallback_ProviderErrorRedirects(t *testing.T) {
	h := newHandler(t, "client-id")

	req := httptest.NewRequest("GET", "/auth/google/callback?error=access_denied", nil)
	rec := httptest.NewRecorder()
	h.ServeCallback(rec, req)

	if loc := rec.Header().Get("Location"); loc != "/login?error=google_denied" {
		t.Errorf("redirect = %q, want google_denied", loc)
	}
}
