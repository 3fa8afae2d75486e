// Package events delivers change and sync notifications to subscribers
// such as the CLI browser.
//
// Listeners run synchronously on the publishing goroutine, after the
// mutation they describe has committed and outside any store lock.
package events

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

// ChangeListener receives committed local mutations of one entity kind.
type ChangeListener func(ctx context.Context, event models.ChangeEvent)

// SyncListener receives sync progress and failures.
type SyncListener func(ctx context.Context, event models.SyncEvent)

// Bus fans events out to subscribed listeners. The zero value is not
// usable; create one with NewBus.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	change map[models.EntityKind]map[uint64]ChangeListener
	sync   map[uint64]SyncListener
}

func NewBus() *Bus {
	return &Bus{
		change: make(map[models.EntityKind]map[uint64]ChangeListener),
		sync:   make(map[uint64]SyncListener),
	}
}

// OnChange subscribes listener to changes of kind. The returned function
// removes the subscription and may be called more than once.
func (b *Bus) OnChange(kind models.EntityKind, listener ChangeListener) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	if b.change[kind] == nil {
		b.change[kind] = make(map[uint64]ChangeListener)
	}
	b.change[kind][id] = listener

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.change[kind], id)
	}
}

// OnSync subscribes listener to every sync event.
func (b *Bus) OnSync(listener SyncListener) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.sync[id] = listener

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.sync, id)
	}
}

// Publish delivers event to the listeners of event.Kind.
func (b *Bus) Publish(ctx context.Context, event models.ChangeEvent) {
	if b == nil {
		return
	}
	b.mu.RLock()
	listeners := make([]ChangeListener, 0, len(b.change[event.Kind]))
	for _, l := range b.change[event.Kind] {
		listeners = append(listeners, l)
	}
	b.mu.RUnlock()

	for _, l := range listeners {
		callSafely(ctx, "Bus.Publish", func() { l(ctx, event) })
	}
}

// PublishSync delivers event to every sync listener.
func (b *Bus) PublishSync(ctx context.Context, event models.SyncEvent) {
	if b == nil {
		return
	}
	b.mu.RLock()
	listeners := make([]SyncListener, 0, len(b.sync))
	for _, l := range b.sync {
		listeners = append(listeners, l)
	}
	b.mu.RUnlock()

	for _, l := range listeners {
		callSafely(ctx, "Bus.PublishSync", func() { l(ctx, event) })
	}
}

func callSafely(ctx context.Context, fn string, call func()) {
	defer func() {
		if p := recover(); p != nil {
			logger.FromContext(ctx).Error().Str("func", fn).Interface("panic", p).Msg("event listener panicked")
		}
	}()
	call()
}
