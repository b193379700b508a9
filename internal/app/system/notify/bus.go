// Package notify is the portal's transient status channel. Handlers publish
// success/error/info/warning/loading notices on their session's Bus, reached
// through the Hub; each session's Queue keeps the visible notices that the
// page layout polls via the notices feature. Delivery is synchronous and
// FIFO per subscriber.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a notice.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindLoading Kind = "loading"
	KindDismiss Kind = "dismiss"
)

// DefaultDuration is how long a non-loading notice stays visible.
const DefaultDuration = 3 * time.Second

// Notice is one published event. Duration == 0 means the notice never
// auto-expires (used for loading notices, removed by a matching dismiss).
type Notice struct {
	ID       string        `json:"id"`
	Message  string        `json:"message"`
	Kind     Kind          `json:"type"`
	Duration time.Duration `json:"duration"`
}

type subscriber struct {
	fn func(Notice)
}

// Bus broadcasts notices to all current subscribers. Each publish call
// notifies subscribers in subscription order before returning, and the
// internal lock is held across the fan-out, so every subscriber observes
// notices in the exact publish order.
type Bus struct {
	mu   sync.Mutex
	subs []*subscriber
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn and returns an unsubscribe function. fn is invoked
// synchronously from the publisher's goroutine and must not block.
func (b *Bus) Subscribe(fn func(Notice)) func() {
	s := &subscriber{fn: fn}

	b.mu.Lock()
	b.subs = append(b.subs, s)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, cur := range b.subs {
			if cur == s {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish broadcasts a fully formed notice. Producers that manage their own
// ids use this directly; ids are not deduplicated, so publishing the same id
// twice yields two queue entries.
func (b *Bus) Publish(n Notice) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	b.publish(n)
}

func (b *Bus) publish(n Notice) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.subs {
		s.fn(n)
	}
}

func (b *Bus) emit(message string, kind Kind, duration time.Duration) string {
	id := uuid.NewString()
	b.publish(Notice{ID: id, Message: message, Kind: kind, Duration: duration})
	return id
}

// Success publishes a success notice with the default duration.
func (b *Bus) Success(message string) string { return b.emit(message, KindSuccess, DefaultDuration) }

// Error publishes an error notice with the default duration.
func (b *Bus) Error(message string) string { return b.emit(message, KindError, DefaultDuration) }

// Info publishes an info notice with the default duration.
func (b *Bus) Info(message string) string { return b.emit(message, KindInfo, DefaultDuration) }

// Warning publishes a warning notice with the default duration.
func (b *Bus) Warning(message string) string { return b.emit(message, KindWarning, DefaultDuration) }

// Loading publishes a persistent notice (duration 0) and returns its id so
// the caller can dismiss it when the operation settles.
func (b *Bus) Loading(message string) string { return b.emit(message, KindLoading, 0) }

// Dismiss removes the notice with the given id from every subscriber's
// queue. Ids are not deduplicated on publish, so a dismiss removes all
// entries carrying the id.
func (b *Bus) Dismiss(id string) {
	b.publish(Notice{ID: id, Kind: KindDismiss})
}
