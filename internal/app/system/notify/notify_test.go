package notify_test

import (
	"testing"
	"time"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/system/notify"
)

func TestBus_FIFOPerSubscriber(t *testing.T) {
	bus := notify.NewBus()

	var first, second []string
	bus.Subscribe(func(n notify.Notice) { first = append(first, n.Message) })
	bus.Subscribe(func(n notify.Notice) { second = append(second, n.Message) })

	bus.Success("one")
	bus.Error("two")
	bus.Info("three")

	want := []string{"one", "two", "three"}
	for name, got := range map[string][]string{"first": first, "second": second} {
		if len(got) != len(want) {
			t.Fatalf("%s subscriber received %d notices, want %d", name, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s subscriber order: got %v, want %v", name, got, want)
				break
			}
		}
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := notify.NewBus()

	var count int
	unsub := bus.Subscribe(func(notify.Notice) { count++ })

	bus.Info("before")
	unsub()
	bus.Info("after")

	if count != 1 {
		t.Errorf("subscriber called %d times after unsubscribe, want 1", count)
	}
}

func TestQueue_AppendsInInsertionOrder(t *testing.T) {
	bus := notify.NewBus()
	q := notify.NewQueue()
	defer q.Attach(bus)()

	bus.Warning("a")
	bus.Success("b")

	active := q.Active()
	if len(active) != 2 || active[0].Message != "a" || active[1].Message != "b" {
		t.Errorf("Active = %v, want [a b] in order", active)
	}
}

func TestQueue_AutoExpiry(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }

	bus := notify.NewBus()
	q := notify.NewQueueWithClock(clock)
	defer q.Attach(bus)()

	bus.Success("short lived")

	if got := q.Active(); len(got) != 1 {
		t.Fatalf("Active before expiry = %d entries, want 1", len(got))
	}

	now = now.Add(notify.DefaultDuration)
	if got := q.Active(); len(got) != 0 {
		t.Errorf("Active after expiry = %v, want empty", got)
	}
}

func TestQueue_LoadingPersistsUntilDismiss(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }

	bus := notify.NewBus()
	q := notify.NewQueueWithClock(clock)
	defer q.Attach(bus)()

	id := bus.Loading("submitting registration")

	now = now.Add(time.Hour)
	if got := q.Active(); len(got) != 1 {
		t.Fatalf("loading notice expired, want it persistent: %v", got)
	}

	bus.Dismiss(id)
	if got := q.Active(); len(got) != 0 {
		t.Errorf("Active after dismiss = %v, want empty", got)
	}
}

func TestQueue_DismissRemovesAllEntriesWithID(t *testing.T) {
	bus := notify.NewBus()
	q := notify.NewQueue()
	defer q.Attach(bus)()

	// A producer can reuse an id before the first notice is dismissed.
	// Duplicates are kept as separate entries; one dismiss clears them all.
	bus.Publish(notify.Notice{ID: "upload", Message: "first", Kind: notify.KindLoading})
	bus.Success("unrelated")
	bus.Publish(notify.Notice{ID: "upload", Message: "second", Kind: notify.KindLoading})

	if got := q.Active(); len(got) != 3 {
		t.Fatalf("Active = %d entries, want 3 (duplicates kept)", len(got))
	}

	bus.Dismiss("upload")

	active := q.Active()
	if len(active) != 1 || active[0].Message != "unrelated" {
		t.Errorf("Active after dismiss = %v, want only the unrelated notice", active)
	}
}

func TestHub_ChannelsAreIsolatedPerSession(t *testing.T) {
	hub := notify.NewHub()

	hub.Channel("sess-a").Error("registration failed for alice@vit.ac.in")
	hub.Channel("sess-b").Success("merch saved")

	a := hub.Active("sess-a")
	if len(a) != 1 || a[0].Kind != notify.KindError {
		t.Fatalf("session a feed = %v, want its own error notice", a)
	}
	b := hub.Active("sess-b")
	if len(b) != 1 || b[0].Kind != notify.KindSuccess {
		t.Fatalf("session b feed = %v, want its own success notice", b)
	}
	if got := hub.Active("sess-c"); got != nil {
		t.Errorf("unknown session feed = %v, want nil", got)
	}
}

func TestHub_DismissOnlyTouchesOwningSession(t *testing.T) {
	hub := notify.NewHub()

	id := hub.Channel("sess-a").Loading("uploading")
	hub.Channel("sess-b").Loading("also uploading")

	// Another session dismissing the same id must not clear sess-a's toast.
	hub.Dismiss("sess-b", id)
	if got := hub.Active("sess-a"); len(got) != 1 {
		t.Fatalf("session a feed = %v, want the loading notice intact", got)
	}

	hub.Dismiss("sess-a", id)
	if got := hub.Active("sess-a"); len(got) != 0 {
		t.Errorf("session a feed after own dismiss = %v, want empty", got)
	}
}

func TestHub_AnonymousPublishesLandNowhere(t *testing.T) {
	hub := notify.NewHub()

	hub.Channel("").Error("should vanish")

	if got := hub.Active(""); got != nil {
		t.Errorf("anonymous feed = %v, want nil", got)
	}
}

func TestHub_PrunesIdleSessions(t *testing.T) {
	now := time.Now()
	hub := notify.NewHubWithClock(func() time.Time { return now })

	hub.Channel("sess-a").Loading("stuck")

	now = now.Add(31 * time.Minute)
	// Touching any channel prunes the idle one.
	hub.Channel("sess-b")

	if got := hub.Active("sess-a"); got != nil {
		t.Errorf("idle session feed = %v, want nil after pruning", got)
	}
}
