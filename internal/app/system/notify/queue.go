package notify

import (
	"sync"
	"time"
)

// Queue is the rendering subscriber: it keeps the currently visible notices
// in insertion order, drops entries whose duration has elapsed, and removes
// entries immediately on a matching dismiss. Duplicate ids are kept as
// separate entries; Dismiss removes all of them.
type Queue struct {
	mu      sync.Mutex
	now     func() time.Time
	entries []queueEntry
}

type queueEntry struct {
	notice Notice
	added  time.Time
}

// NewQueue returns an empty queue using the real clock.
func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

// NewQueueWithClock returns a queue with an injected clock, for tests.
func NewQueueWithClock(now func() time.Time) *Queue {
	return &Queue{now: now}
}

// Attach subscribes the queue to the bus and returns the unsubscribe
// function.
func (q *Queue) Attach(bus *Bus) func() {
	return bus.Subscribe(q.receive)
}

func (q *Queue) receive(n Notice) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if n.Kind == KindDismiss {
		kept := q.entries[:0]
		for _, e := range q.entries {
			if e.notice.ID != n.ID {
				kept = append(kept, e)
			}
		}
		q.entries = kept
		return
	}

	q.entries = append(q.entries, queueEntry{notice: n, added: q.now()})
}

// Active prunes expired entries and returns the visible notices in
// insertion order. Entries with duration 0 never expire.
func (q *Queue) Active() []Notice {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	kept := q.entries[:0]
	for _, e := range q.entries {
		if e.notice.Duration > 0 && now.Sub(e.added) >= e.notice.Duration {
			continue
		}
		kept = append(kept, e)
	}
	q.entries = kept

	out := make([]Notice, len(q.entries))
	for i, e := range q.entries {
		out[i] = e.notice
	}
	return out
}
