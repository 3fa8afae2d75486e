// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockWorker records Start/Stop calls into a shared journal.
type mockWorker struct {
	id      int
	journal *[]string
	started int
	stopped int
}

func (m *mockWorker) Start(context.Context) {
	m.started++
	*m.journal = append(*m.journal, "start", string(rune('0'+m.id)))
}

func (m *mockWorker) Stop() {
	m.stopped++
	*m.journal = append(*m.journal, "stop", string(rune('0'+m.id)))
}

func TestWorkers_StartStop_Order(t *testing.T) {
	var journal []string
	w1 := &mockWorker{id: 1, journal: &journal}
	w2 := &mockWorker{id: 2, journal: &journal}
	w3 := &mockWorker{id: 3, journal: &journal}

	ws := NewWorkers(w1, w2, w3)
	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{
		"start", "1", "start", "2", "start", "3",
		"stop", "3", "stop", "2", "stop", "1",
	}, journal)
	for _, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.started)
		assert.Equal(t, 1, w.stopped)
	}
}

func TestWorkers_Empty(t *testing.T) {
	// Пустой и nil наборы не должны паниковать
	assert.NotPanics(t, func() {
		ws := NewWorkers()
		ws.Start(context.Background())
		ws.Stop()
	})
	assert.NotPanics(t, func() {
		ws := &Workers{}
		ws.Start(context.Background())
		ws.Stop()
	})
}
