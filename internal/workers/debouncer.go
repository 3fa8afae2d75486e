// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
)

// Debouncer coalesces bursts of work per key: only the last action
// scheduled for a key within the delay window runs.
//
// Every Schedule bumps the key's generation and re-arms its timer, so a
// timer that fires for an older generation does nothing. At most one
// action per key runs at a time; a timer that fires while the previous
// action is still running re-arms after it finishes.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	entries map[string]*debounceEntry
	stopped bool
	wg      sync.WaitGroup
}

type debounceEntry struct {
	timer      *time.Timer
	generation uint64
	running    bool
	pending    bool

	ctx context.Context
	fn  func(ctx context.Context)
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:   delay,
		entries: make(map[string]*debounceEntry),
	}
}

// Schedule arms fn to run after the delay unless key is scheduled again
// first. fn receives ctx detached from its cancellation, so values such
// as the logger and the active owner survive the caller returning.
func (d *Debouncer) Schedule(ctx context.Context, key string, fn func(ctx context.Context)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	e, ok := d.entries[key]
	if !ok {
		e = &debounceEntry{}
		d.entries[key] = e
	}
	e.ctx = context.WithoutCancel(ctx)
	e.fn = fn
	d.arm(key, e)
}

// arm must be called with d.mu held.
func (d *Debouncer) arm(key string, e *debounceEntry) {
	if e.timer != nil {
		e.timer.Stop()
	}
	e.generation++
	gen := e.generation
	e.timer = time.AfterFunc(d.delay, func() { d.fire(key, gen) })
}

func (d *Debouncer) fire(key string, gen uint64) {
	d.mu.Lock()
	e, ok := d.entries[key]
	if !ok || e.generation != gen {
		d.mu.Unlock()
		return
	}
	e.timer = nil
	if e.running {
		e.pending = true
		d.mu.Unlock()
		return
	}
	e.running = true
	ctx, fn := e.ctx, e.fn
	d.wg.Add(1)
	d.mu.Unlock()

	defer d.wg.Done()
	d.run(ctx, key, fn)

	d.mu.Lock()
	defer d.mu.Unlock()
	e.running = false
	switch {
	case e.pending && !d.stopped:
		e.pending = false
		d.arm(key, e)
	case e.timer == nil:
		delete(d.entries, key)
	}
}

func (d *Debouncer) run(ctx context.Context, key string, fn func(ctx context.Context)) {
	defer func() {
		if p := recover(); p != nil {
			logger.FromContext(ctx).Error().
				Str("func", "Debouncer.run").
				Str("key", key).
				Interface("panic", p).
				Msg("debounced action panicked")
		}
	}()
	fn(ctx)
}

// Cancel drops whatever is scheduled for key. An action already running
// finishes but is not re-armed.
func (d *Debouncer) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.entries[key]
	if !ok {
		return
	}
	d.disarm(e)
	if !e.running {
		delete(d.entries, key)
	}
}

// disarm must be called with d.mu held.
func (d *Debouncer) disarm(e *debounceEntry) {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.generation++
	e.pending = false
}

// Pending returns how many keys have an armed timer or a running action.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

// Start re-enables scheduling after Stop.
func (d *Debouncer) Start(context.Context) {
	d.mu.Lock()
	d.stopped = false
	d.mu.Unlock()
}

// Stop drops every armed timer and waits for running actions to finish.
// Dropped work is not lost: entities stay marked as unsynced.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	for key, e := range d.entries {
		d.disarm(e)
		if !e.running {
			delete(d.entries, key)
		}
	}
	d.mu.Unlock()

	d.wg.Wait()
}
