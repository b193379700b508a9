package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/auth"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
)

const testSessionKey = "test-session-key-must-be-32-chars!!"

func newManager(t *testing.T, apiHandler http.HandlerFunc) *auth.SessionManager {
	t.Helper()
	srv := httptest.NewServer(apiHandler)
	t.Cleanup(srv.Close)

	api := remote.New(srv.URL, srv.Client(), nil)
	sm, err := auth.NewSessionManager(testSessionKey, "vitfest-session", "", false, api, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return sm
}

// roundTrip runs one request through LoadSessionUser carrying the cookies
// produced by a previous response.
func roundTrip(sm *auth.SessionManager, cookies []*http.Cookie, inspect func(r *http.Request)) *httptest.ResponseRecorder {
	handler := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inspect(r)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func loginCookies(t *testing.T, sm *auth.SessionManager, token string) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest("POST", "/login", nil)
	rec := httptest.NewRecorder()
	if err := sm.Login(rec, req, token); err != nil {
		t.Fatalf("Login: %v", err)
	}
	return rec.Result().Cookies()
}

func TestLoadSessionUser_ResolvesProfile(t *testing.T) {
	sm := newManager(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(models.User{ID: "u1", Email: "s@vit.ac.in", Role: "Student"})
	})

	cookies := loginCookies(t, sm, "tok-1")

	var got *models.User
	roundTrip(sm, cookies, func(r *http.Request) {
		got, _ = auth.CurrentUser(r)
	})

	if got == nil {
		t.Fatal("no user resolved")
	}
	if got.Role != models.RoleStudent {
		t.Errorf("role = %q, want normalized %q", got.Role, models.RoleStudent)
	}
}

func TestLoadSessionUser_AuthFailureClearsToken(t *testing.T) {
	sm := newManager(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "token expired"})
	})

	cookies := loginCookies(t, sm, "expired")

	var signedIn bool
	rec := roundTrip(sm, cookies, func(r *http.Request) {
		_, signedIn = auth.CurrentUser(r)
	})

	if signedIn {
		t.Error("user resolved from a rejected token")
	}
	// The middleware rewrites the session cookie to drop the token.
	if len(rec.Result().Cookies()) == 0 {
		t.Error("expected the session cookie to be rewritten without the token")
	}
}

func TestLoadSessionUser_TransientFailureIsPending(t *testing.T) {
	sm := newManager(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	cookies := loginCookies(t, sm, "tok-2")

	var st *auth.State
	roundTrip(sm, cookies, func(r *http.Request) {
		st = auth.StateFrom(r)
	})

	if st == nil || !st.Pending {
		t.Fatalf("state = %+v, want pending", st)
	}
	if st.User != nil {
		t.Error("pending state must not carry a user")
	}
}

func TestLogout_ClearsUserRegardlessOfPriorState(t *testing.T) {
	sm := newManager(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.User{ID: "u1", Email: "s@vit.ac.in", Role: "admin"})
	})

	cookies := loginCookies(t, sm, "tok-3")

	req := httptest.NewRequest("GET", "/logout", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	sm.Logout(rec, req)

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Errorf("logout response = %d %q, want 303 to /login", rec.Code, rec.Header().Get("Location"))
	}

	// A follow-up request with the cleared cookie resolves no user.
	var signedIn bool
	roundTrip(sm, rec.Result().Cookies(), func(r *http.Request) {
		_, signedIn = auth.CurrentUser(r)
	})
	if signedIn {
		t.Error("user still resolved after logout")
	}
}

func TestRequireSignedIn_RedirectsWithReturn(t *testing.T) {
	sm := newManager(t, func(w http.ResponseWriter, r *http.Request) {})

	handler := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/login?return=") {
		t.Errorf("Location = %q, want /login?return=...", loc)
	}
}
