package adminevents_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/adminevents"
	uierrors "github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/errors"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/remote"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/notify"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/domain/models"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/testutil"
)

func TestBuildRows_CoordinatorSeesOnlyAssignedEvents(t *testing.T) {
	events := []models.Event{
		{ID: "e1", Name: "Mine", StudentCoordinators: []models.CoordinatorInfo{{ID: "u1"}}},
		{ID: "e2", Name: "Not mine"},
	}
	summaries := []remote.EventSummary{{ID: "e1", Registered: 5}}

	rows := adminevents.BuildRows(events, summaries, models.RoleCoordinator, "u1")
	if len(rows) != 1 || rows[0].Event.ID != "e1" {
		t.Fatalf("rows = %+v, want only e1", rows)
	}
	if rows[0].Summary == nil || rows[0].Summary.Registered != 5 {
		t.Error("summary not joined onto the row")
	}
}

func TestBuildRows_AdminSeesEverything(t *testing.T) {
	events := []models.Event{{ID: "e1"}, {ID: "e2", IsHidden: true}}
	rows := adminevents.BuildRows(events, nil, models.RoleAdmin, "u9")
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (hidden events included)", len(rows))
	}
	if rows[0].Summary != nil {
		t.Error("missing summaries must join as nil")
	}
}

func TestParseFeeStructure(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    map[string]float64
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"single tier", "2: 100", map[string]float64{"2": 100}, false},
		{"multiple tiers", "2: 100\n3: 150\n", map[string]float64{"2": 100, "3": 150}, false},
		{"blank lines skipped", "\n2:100\n\n", map[string]float64{"2": 100}, false},
		{"missing colon", "2 100", nil, true},
		{"bad size", "zero: 100", nil, true},
		{"negative amount", "2: -5", nil, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := adminevents.ParseFeeStructure(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for k, v := range tc.want {
				if got[k] != v {
					t.Errorf("tier %s = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestFormatFeeStructure_RoundTripsSorted(t *testing.T) {
	out := adminevents.FormatFeeStructure(map[string]float64{"3": 150, "2": 100})
	if out != "2: 100\n3: 150\n" {
		t.Fatalf("formatted = %q", out)
	}
}

type fakeAPI struct {
	event   models.Event
	patches []string
	failAll bool
}

func (f *fakeAPI) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /events/{id}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(f.event)
	})
	mux.HandleFunc("PATCH /events/{id}", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.patches = append(f.patches, string(body))
		if f.failAll {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Not allowed"})
			return
		}
		json.NewEncoder(w).Encode(f.event)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newToggleHandler(t *testing.T, api *fakeAPI) (*adminevents.Handler, *notify.Bus) {
	t.Helper()
	srv := api.server(t)
	logger := zap.NewNop()
	client := remote.New(srv.URL, srv.Client(), logger)
	hub := notify.NewHub()
	bus := hub.Channel(testutil.SessionToken)
	return adminevents.NewHandler(client, hub, uierrors.NewErrorLogger(logger), logger), bus
}

func postToggle(h *adminevents.Handler, user testutil.TestUser, field string) *httptest.ResponseRecorder {
	form := url.Values{"field": {field}}
	req := httptest.NewRequest("POST", "/admin/events/e1/toggle", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = testutil.WithChiURLParam(req, "id", "e1")
	req = testutil.WithUser(req, user)
	rec := httptest.NewRecorder()
	testutil.Render(func() { h.HandleToggle(rec, req) })
	return rec
}

func TestHandleToggle_AdminFlipsFlagViaPatch(t *testing.T) {
	api := &fakeAPI{event: models.Event{ID: "e1", RegistrationsOpen: true}}
	h, _ := newToggleHandler(t, api)

	rec := postToggle(h, testutil.AdminUser(), "registrationsOpen")

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if len(api.patches) != 1 {
		t.Fatalf("got %d patches, want 1", len(api.patches))
	}
	if !strings.Contains(api.patches[0], `"registrationsOpen":false`) {
		t.Errorf("patch body = %s, want the flipped value", api.patches[0])
	}
}

func TestHandleToggle_CoordinatorCannotPin(t *testing.T) {
	api := &fakeAPI{event: models.Event{
		ID:                  "e1",
		StudentCoordinators: []models.CoordinatorInfo{{ID: "u1"}},
	}}
	h, _ := newToggleHandler(t, api)

	user := testutil.CoordinatorUser()
	user.ID = "u1"
	rec := postToggle(h, user, "isPinned")

	if rec.Code == http.StatusSeeOther {
		t.Fatal("pin toggle must not succeed for a coordinator")
	}
	if len(api.patches) != 0 {
		t.Fatalf("got %d patches, want 0", len(api.patches))
	}
}

func TestHandleToggle_UnassignedCoordinatorGetsNotFound(t *testing.T) {
	api := &fakeAPI{event: models.Event{ID: "e1"}}
	h, _ := newToggleHandler(t, api)

	rec := postToggle(h, testutil.CoordinatorUser(), "isHidden")

	if rec.Code == http.StatusSeeOther {
		t.Fatal("toggle on an unassigned event must not succeed")
	}
	if len(api.patches) != 0 {
		t.Fatalf("got %d patches, want 0", len(api.patches))
	}
}

func TestHandleToggle_RejectedPatchPublishesError(t *testing.T) {
	api := &fakeAPI{event: models.Event{ID: "e1"}, failAll: true}
	h, bus := newToggleHandler(t, api)

	var errMsg string
	defer bus.Subscribe(func(n notify.Notice) {
		if n.Kind == notify.KindError {
			errMsg = n.Message
		}
	})()

	rec := postToggle(h, testutil.AdminUser(), "isHidden")

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect even on failure", rec.Code)
	}
	if errMsg != "Not allowed" {
		t.Errorf("error notice = %q, want the API detail", errMsg)
	}
}

func TestHandleToggle_UnknownFieldRejected(t *testing.T) {
	api := &fakeAPI{event: models.Event{ID: "e1"}}
	h, _ := newToggleHandler(t, api)

	postToggle(h, testutil.AdminUser(), "name")

	if len(api.patches) != 0 {
		t.Fatalf("got %d patches, want 0", len(api.patches))
	}
}

func TestHandleToggle_StudentGetsNotFound(t *testing.T) {
	api := &fakeAPI{event: models.Event{ID: "e1"}}
	h, _ := newToggleHandler(t, api)

	rec := postToggle(h, testutil.StudentUser(), "isHidden")

	if rec.Code == http.StatusSeeOther {
		t.Fatal("students must not reach the toggle")
	}
	if len(api.patches) != 0 {
		t.Fatalf("got %d patches, want 0", len(api.patches))
	}
}
