package notices_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/features/notices"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/notify"
	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/testutil"
)

func newHandler(t *testing.T) (*notices.Handler, *notify.Hub) {
	t.Helper()
	hub := notify.NewHub()
	return notices.NewHandler(hub, zap.NewNop()), hub
}

// serveFeed polls the feed as the given user; a zero TestUser polls
// signed out.
func serveFeed(h *notices.Handler, user testutil.TestUser) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/notices", nil)
	if user.ID != "" {
		req = testutil.WithUser(req, user)
	}
	rec := httptest.NewRecorder()
	h.ServeActive(rec, req)
	return rec
}

type feedItem struct {
	ID         string `json:"id"`
	Message    string `json:"message"`
	Kind       string `json:"kind"`
	DurationMS int64  `json:"durationMs"`
}

func decodeFeed(t *testing.T, rec *httptest.ResponseRecorder) []feedItem {
	t.Helper()
	var got []feedItem
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	return got
}

func TestServeActive_ReturnsPublishedNoticesInOrder(t *testing.T) {
	h, hub := newHandler(t)
	user := testutil.StudentUser()

	bus := hub.Channel(testutil.SessionToken)
	bus.Success("first")
	bus.Error("second")
	bus.Loading("third")

	rec := serveFeed(h, user)

	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}

	got := decodeFeed(t, rec)
	if len(got) != 3 {
		t.Fatalf("got %d notices, want 3", len(got))
	}
	if got[0].Message != "first" || got[1].Message != "second" || got[2].Message != "third" {
		t.Errorf("order wrong: %+v", got)
	}
	if got[2].Kind != "loading" || got[2].DurationMS != 0 {
		t.Errorf("loading notice must be sticky: %+v", got[2])
	}
	if got[0].DurationMS != notify.DefaultDuration.Milliseconds() {
		t.Errorf("duration = %d, want %d", got[0].DurationMS, notify.DefaultDuration.Milliseconds())
	}
}

func TestServeActive_OtherSessionsSeeNothing(t *testing.T) {
	h, hub := newHandler(t)

	// A notice raised while handling one user's request can carry private
	// detail, like the invitee emails in a failed registration.
	hub.Channel("user-a-token").Error("Registration failed for alice@vit.ac.in")

	if got := decodeFeed(t, serveFeed(h, testutil.TestUser{})); len(got) != 0 {
		t.Fatalf("signed-out feed = %+v, want empty", got)
	}
	if got := decodeFeed(t, serveFeed(h, testutil.StudentUser())); len(got) != 0 {
		t.Fatalf("another session's feed = %+v, want empty", got)
	}
}

func TestHandleDismiss_RemovesNotice(t *testing.T) {
	h, hub := newHandler(t)
	user := testutil.StudentUser()

	id := hub.Channel(testutil.SessionToken).Loading("working")

	req := httptest.NewRequest("POST", "/notices/"+id+"/dismiss", nil)
	req = testutil.WithChiURLParam(req, "id", id)
	req = testutil.WithUser(req, user)
	rec := httptest.NewRecorder()
	h.HandleDismiss(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}

	if got := decodeFeed(t, serveFeed(h, user)); len(got) != 0 {
		t.Fatalf("got %d notices after dismiss, want 0", len(got))
	}
}

func TestHandleDismiss_CannotTouchAnotherSession(t *testing.T) {
	h, hub := newHandler(t)
	owner := testutil.StudentUser()

	id := hub.Channel(testutil.SessionToken).Loading("working")

	// A different visitor replays the id; the owner's toast must survive.
	req := httptest.NewRequest("POST", "/notices/"+id+"/dismiss", nil)
	req = testutil.WithChiURLParam(req, "id", id)
	rec := httptest.NewRecorder()
	h.HandleDismiss(rec, req)

	got := decodeFeed(t, serveFeed(h, owner))
	if len(got) != 1 || got[0].ID != id {
		t.Fatalf("owner feed after foreign dismiss = %+v, want the loading notice intact", got)
	}
}
