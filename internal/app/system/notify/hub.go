package notify

import (
	"sync"
	"time"
)

// idleTTL is how long a session's channel survives without being published
// to or polled before the hub drops it.
const idleTTL = 30 * time.Minute

// Hub keys notice channels by session so one visitor's toasts never reach
// another's feed. Each session gets its own Bus with an attached Queue;
// channels for sessions that have gone quiet are pruned on access.
type Hub struct {
	mu       sync.Mutex
	now      func() time.Time
	channels map[string]*sessionChannel
}

type sessionChannel struct {
	bus      *Bus
	queue    *Queue
	lastSeen time.Time
}

// NewHub returns an empty hub using the real clock.
func NewHub() *Hub {
	return NewHubWithClock(time.Now)
}

// NewHubWithClock returns a hub with an injected clock, for tests.
func NewHubWithClock(now func() time.Time) *Hub {
	return &Hub{now: now, channels: make(map[string]*sessionChannel)}
}

// Channel returns the bus for the given session, creating it on first use.
// An empty session id gets a detached bus with no queue behind it, so
// publishes from anonymous requests land nowhere.
func (h *Hub) Channel(sid string) *Bus {
	if sid == "" {
		return NewBus()
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.prune()

	ch, ok := h.channels[sid]
	if !ok {
		ch = &sessionChannel{bus: NewBus(), queue: NewQueueWithClock(h.now)}
		ch.queue.Attach(ch.bus)
		h.channels[sid] = ch
	}
	ch.lastSeen = h.now()
	return ch.bus
}

// Active returns the session's visible notices in insertion order, or nil
// when the session has no channel.
func (h *Hub) Active(sid string) []Notice {
	if sid == "" {
		return nil
	}

	h.mu.Lock()
	ch, ok := h.channels[sid]
	if ok {
		ch.lastSeen = h.now()
	}
	h.prune()
	h.mu.Unlock()

	if !ok {
		return nil
	}
	return ch.queue.Active()
}

// Dismiss removes the notice with the given id from the owning session's
// queue only. Other sessions never observe the dismiss.
func (h *Hub) Dismiss(sid, id string) {
	if sid == "" {
		return
	}

	h.mu.Lock()
	ch, ok := h.channels[sid]
	if ok {
		ch.lastSeen = h.now()
	}
	h.mu.Unlock()

	if ok {
		ch.bus.Dismiss(id)
	}
}

// prune drops idle channels. Caller holds h.mu.
func (h *Hub) prune() {
	cutoff := h.now().Add(-idleTTL)
	for sid, ch := range h.channels {
		if ch.lastSeen.Before(cutoff) {
			delete(h.channels, sid)
		}
	}
}
