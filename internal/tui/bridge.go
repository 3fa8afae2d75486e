package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-prompt-keeper/internal/events"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

// busBridge turns bus events into tea messages. Listeners never block the
// publisher: when the buffer is full the event is dropped, the next reload
// picks the change up anyway.
type busBridge struct {
	ch   chan tea.Msg
	done chan struct{}

	once        sync.Once
	unsubscribe []func()
}

func newBusBridge(bus *events.Bus) *busBridge {
	b := &busBridge{
		ch:   make(chan tea.Msg, 64),
		done: make(chan struct{}),
	}
	if bus == nil {
		return b
	}

	for _, kind := range []models.EntityKind{models.KindPrompt, models.KindTag, models.KindFolder} {
		b.unsubscribe = append(b.unsubscribe, bus.OnChange(kind, func(_ context.Context, e models.ChangeEvent) {
			b.send(changedMsg{event: e})
		}))
	}
	b.unsubscribe = append(b.unsubscribe, bus.OnSync(func(_ context.Context, e models.SyncEvent) {
		b.send(syncEventMsg{event: e})
	}))
	return b
}

func (b *busBridge) send(msg tea.Msg) {
	select {
	case b.ch <- msg:
	default:
	}
}

// wait delivers the next bus event. Re-issue it after every event.
func (b *busBridge) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.ch:
			return msg
		case <-b.done:
			return nil
		}
	}
}

func (b *busBridge) Close() {
	b.once.Do(func() {
		for _, unsubscribe := range b.unsubscribe {
			unsubscribe()
		}
		close(b.done)
	})
}
