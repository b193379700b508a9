package adminclubs_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/adminclubs"
	uierrors "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/errors"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/notify"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/testutil"
)

func newHandler(t *testing.T, creates *[]string) *adminclubs.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /clubs/", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*creates = append(*creates, string(body))
		json.NewEncoder(w).Encode(models.Club{ID: "c1"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	logger := zap.NewNop()
	client := remote.New(srv.URL, srv.Client(), logger)
	hub := notify.NewHub()
	return adminclubs.NewHandler(client, hub, uierrors.NewErrorLogger(logger), logger)
}

func postCreate(h *adminclubs.Handler, user testutil.TestUser, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/admin/clubs", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = testutil.WithUser(req, user)
	rec := httptest.NewRecorder()
	testutil.Render(func() { h.HandleCreate(rec, req) })
	return rec
}

func TestHandleCreate_ParsesCoordinatorLines(t *testing.T) {
	var creates []string
	h := newHandler(t, &creates)

	rec := postCreate(h, testutil.AdminUser(), url.Values{
		"name":                 {"Robotics Club"},
		"faculty_coordinators": {"Dr. Rao, rao@vit.ac.in, 9000000000"},
		"student_coordinators": {"Asha, asha@vitstudent.ac.in\nVikram, vikram@vitstudent.ac.in, 9111111111"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if len(creates) != 1 {
		t.Fatalf("got %d creates, want 1", len(creates))
	}
	body := creates[0]
	for _, want := range []string{"Robotics Club", "rao@vit.ac.in", "9111111111", "Vikram"} {
		if !strings.Contains(body, want) {
			t.Errorf("create body missing %q: %s", want, body)
		}
	}
}

func TestHandleCreate_MissingNameMakesNoCall(t *testing.T) {
	var creates []string
	h := newHandler(t, &creates)

	rec := postCreate(h, testutil.AdminUser(), url.Values{"name": {"  "}})

	if len(creates) != 0 {
		t.Fatalf("got %d creates, want 0", len(creates))
	}
	if rec.Code == http.StatusSeeOther {
		t.Error("expected re-render, got redirect")
	}
}

func TestHandleCreate_CoordinatorRoleGetsNotFound(t *testing.T) {
	var creates []string
	h := newHandler(t, &creates)

	rec := postCreate(h, testutil.CoordinatorUser(), url.Values{"name": {"Robotics Club"}})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if len(creates) != 0 {
		t.Fatalf("got %d creates, want 0", len(creates))
	}
}
