package adminusers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/adminusers"
	uierrors "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/errors"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/notify"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/testutil"
)

func TestFilter(t *testing.T) {
	users := []models.User{
		{ID: "1", Name: "Asha Kumar", Email: "asha@vit.ac.in", RegistrationNumber: "22BCE1234"},
		{ID: "2", Name: "Vikram Rao", Email: "vikram@ext.ac.in"},
		{ID: "3", Name: "Zed", Email: "zed@vit.ac.in"},
	}

	if got := adminusers.Filter(users, ""); len(got) != 3 {
		t.Fatalf("empty query: got %d, want 3", len(got))
	}
	if got := adminusers.Filter(users, "vikram"); len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("name query: got %+v", got)
	}
	if got := adminusers.Filter(users, "22bce"); len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("reg no query: got %+v", got)
	}
	if got := adminusers.Filter(users, "vit.ac.in"); len(got) != 2 {
		t.Fatalf("email query: got %d, want 2", len(got))
	}
}

type fakeAPI struct {
	patches []string
	deletes []string
	creates []string
}

func newHandler(t *testing.T, api *fakeAPI) (*adminusers.Handler, *notify.Bus) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /users/{id}", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		api.patches = append(api.patches, r.PathValue("id")+" "+string(body))
		json.NewEncoder(w).Encode(models.User{})
	})
	mux.HandleFunc("DELETE /users/{id}", func(w http.ResponseWriter, r *http.Request) {
		api.deletes = append(api.deletes, r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /users/admin/create", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		api.creates = append(api.creates, string(body))
		json.NewEncoder(w).Encode(models.User{ID: "u9", Name: "Priya Menon"})
	})
	mux.HandleFunc("GET /clubs/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Club{{ID: "c1", Name: "Music Club"}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	logger := zap.NewNop()
	client := remote.New(srv.URL, srv.Client(), logger)
	hub := notify.NewHub()
	bus := hub.Channel(testutil.SessionToken)
	return adminusers.NewHandler(client, hub, uierrors.NewErrorLogger(logger), logger), bus
}

func postRole(h *adminusers.Handler, user testutil.TestUser, targetID, role string) *httptest.ResponseRecorder {
	form := url.Values{"role": {role}}
	req := httptest.NewRequest("POST", "/admin/users/"+targetID+"/role", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = testutil.WithChiURLParam(req, "id", targetID)
	req = testutil.WithUser(req, user)
	rec := httptest.NewRecorder()
	testutil.Render(func() { h.HandleRoleChange(rec, req) })
	return rec
}

func TestHandleRoleChange_AdminPromotesUser(t *testing.T) {
	api := &fakeAPI{}
	h, _ := newHandler(t, api)

	rec := postRole(h, testutil.AdminUser(), "u2", models.RoleCoordinator)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if len(api.patches) != 1 || !strings.Contains(api.patches[0], `"role":"coordinator"`) {
		t.Fatalf("patches = %v", api.patches)
	}
}

func TestHandleRoleChange_SelfChangeBlocked(t *testing.T) {
	api := &fakeAPI{}
	h, bus := newHandler(t, api)

	var warned bool
	defer bus.Subscribe(func(n notify.Notice) {
		if n.Kind == notify.KindWarning {
			warned = true
		}
	})()

	admin := testutil.AdminUser()
	rec := postRole(h, admin, admin.ID, models.RoleStudent)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect", rec.Code)
	}
	if len(api.patches) != 0 {
		t.Fatalf("patches = %v, want none", api.patches)
	}
	if !warned {
		t.Error("expected a warning notice")
	}
}

func TestHandleRoleChange_UnknownRoleRejected(t *testing.T) {
	api := &fakeAPI{}
	h, _ := newHandler(t, api)

	postRole(h, testutil.AdminUser(), "u2", "overlord")

	if len(api.patches) != 0 {
		t.Fatalf("patches = %v, want none", api.patches)
	}
}

func TestHandleRoleChange_CoordinatorGetsNotFound(t *testing.T) {
	api := &fakeAPI{}
	h, _ := newHandler(t, api)

	rec := postRole(h, testutil.CoordinatorUser(), "u2", models.RoleStudent)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if len(api.patches) != 0 {
		t.Fatalf("patches = %v, want none", api.patches)
	}
}

func postCreate(h *adminusers.Handler, user testutil.TestUser, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/admin/users", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = testutil.WithUser(req, user)
	rec := httptest.NewRecorder()
	testutil.Render(func() { h.HandleCreate(rec, req) })
	return rec
}

func TestHandleCreate_AdminProvisionsCoordinator(t *testing.T) {
	api := &fakeAPI{}
	h, bus := newHandler(t, api)

	var created bool
	defer bus.Subscribe(func(n notify.Notice) {
		if n.Kind == notify.KindSuccess {
			created = true
		}
	})()

	rec := postCreate(h, testutil.AdminUser(), url.Values{
		"name":         {"Priya Menon"},
		"email":        {"priya@vit.ac.in"},
		"password":     {"correct-horse"},
		"role":         {models.RoleCoordinator},
		"school":       {"scope"},
		"club":         {"c1"},
		"phone_number": {"9876543210"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if len(api.creates) != 1 {
		t.Fatalf("got %d creates, want 1", len(api.creates))
	}
	body := api.creates[0]
	for _, want := range []string{`"role":"coordinator"`, `"club":"c1"`, `"school":"scope"`, `"email":"priya@vit.ac.in"`} {
		if !strings.Contains(body, want) {
			t.Errorf("create body = %s, missing %s", body, want)
		}
	}
	if !created {
		t.Error("expected a success notice")
	}
}

func TestHandleCreate_ShortPasswordNeverReachesAPI(t *testing.T) {
	api := &fakeAPI{}
	h, _ := newHandler(t, api)

	rec := postCreate(h, testutil.AdminUser(), url.Values{
		"name":     {"Priya Menon"},
		"email":    {"priya@vit.ac.in"},
		"password": {"short"},
		"role":     {models.RoleCoordinator},
	})

	if rec.Code == http.StatusSeeOther {
		t.Fatal("invalid form must not redirect")
	}
	if len(api.creates) != 0 {
		t.Fatalf("creates = %v, want none", api.creates)
	}
}

func TestHandleCreate_AdminRoleNotOffered(t *testing.T) {
	api := &fakeAPI{}
	h, _ := newHandler(t, api)

	postCreate(h, testutil.AdminUser(), url.Values{
		"name":     {"Priya Menon"},
		"email":    {"priya@vit.ac.in"},
		"password": {"correct-horse"},
		"role":     {models.RoleAdmin},
	})

	if len(api.creates) != 0 {
		t.Fatalf("creates = %v, want none", api.creates)
	}
}

func TestHandleCreate_CoordinatorGetsNotFound(t *testing.T) {
	api := &fakeAPI{}
	h, _ := newHandler(t, api)

	rec := postCreate(h, testutil.CoordinatorUser(), url.Values{
		"name":     {"Priya Menon"},
		"email":    {"priya@vit.ac.in"},
		"password": {"correct-horse"},
		"role":     {models.RoleCoordinator},
	})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if len(api.creates) != 0 {
		t.Fatalf("creates = %v, want none", api.creates)
	}
}

func TestHandleDelete_RemovesOtherAccount(t *testing.T) {
	api := &fakeAPI{}
	h, _ := newHandler(t, api)

	req := httptest.NewRequest("POST", "/admin/users/u2/delete", nil)
	req = testutil.WithChiURLParam(req, "id", "u2")
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()
	testutil.Render(func() { h.HandleDelete(rec, req) })

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if len(api.deletes) != 1 || api.deletes[0] != "u2" {
		t.Fatalf("deletes = %v", api.deletes)
	}
}
