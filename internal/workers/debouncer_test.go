package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey string

func TestDebouncer_CoalescesBurstIntoLastAction(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var (
		mu   sync.Mutex
		runs []int
	)
	for i := 1; i <= 5; i++ {
		i := i
		d.Schedule(context.Background(), "p1", func(context.Context) {
			mu.Lock()
			runs = append(runs, i)
			mu.Unlock()
		})
	}

	assert.Eventually(t, func() bool { return d.Pending() == 0 }, time.Second, 5*time.Millisecond)
	time.Sleep(40 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{5}, runs)
}

func TestDebouncer_KeysAreIndependent(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	defer d.Stop()

	var a, b atomic.Int32
	d.Schedule(context.Background(), "a", func(context.Context) { a.Add(1) })
	d.Schedule(context.Background(), "b", func(context.Context) { b.Add(1) })

	assert.Eventually(t, func() bool { return a.Load() == 1 && b.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestDebouncer_CancelDropsScheduledAction(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	d.Schedule(context.Background(), "p1", func(context.Context) { calls.Add(1) })
	require.Equal(t, 1, d.Pending())

	d.Cancel("p1")
	assert.Equal(t, 0, d.Pending())

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	// отмена неизвестного ключа ничего не делает
	assert.NotPanics(t, func() { d.Cancel("missing") })
}

func TestDebouncer_DetachesCancellationKeepsValues(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	defer d.Stop()

	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey("owner"), "u1"))
	got := make(chan context.Context, 1)
	d.Schedule(ctx, "p1", func(ctx context.Context) { got <- ctx })
	cancel()

	select {
	case runCtx := <-got:
		assert.NoError(t, runCtx.Err())
		assert.Equal(t, "u1", runCtx.Value(ctxKey("owner")))
	case <-time.After(time.Second):
		t.Fatal("debounced action did not run")
	}
}

func TestDebouncer_SingleRunInFlightPerKey(t *testing.T) {
	d := NewDebouncer(5 * time.Millisecond)
	defer d.Stop()

	var (
		inFlight atomic.Int32
		overlap  atomic.Bool
		calls    atomic.Int32
	)
	release := make(chan struct{})
	slow := func(context.Context) {
		if inFlight.Add(1) > 1 {
			overlap.Store(true)
		}
		calls.Add(1)
		<-release
		inFlight.Add(-1)
	}

	d.Schedule(context.Background(), "p1", slow)
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	// второй таймер срабатывает, пока первое действие ещё выполняется
	d.Schedule(context.Background(), "p1", slow)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	close(release)
	assert.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, time.Millisecond)
	assert.Eventually(t, func() bool { return d.Pending() == 0 }, time.Second, time.Millisecond)
	assert.False(t, overlap.Load())
}

func TestDebouncer_RecoversPanics(t *testing.T) {
	d := NewDebouncer(5 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	d.Schedule(context.Background(), "p1", func(context.Context) { panic("boom") })
	assert.Eventually(t, func() bool { return d.Pending() == 0 }, time.Second, time.Millisecond)

	d.Schedule(context.Background(), "p1", func(context.Context) { calls.Add(1) })
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
}

func TestDebouncer_StopDropsTimersAndWaitsForRunning(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	started := make(chan struct{})
	var finished atomic.Bool
	d.Schedule(context.Background(), "slow", func(context.Context) {
		close(started)
		time.Sleep(30 * time.Millisecond)
		finished.Store(true)
	})
	<-started

	var dropped atomic.Int32
	d.Schedule(context.Background(), "later", func(context.Context) { dropped.Add(1) })

	d.Stop()
	assert.True(t, finished.Load())
	assert.Equal(t, 0, d.Pending())

	// после Stop новые задачи не принимаются
	d.Schedule(context.Background(), "after", func(context.Context) { dropped.Add(1) })
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), dropped.Load())
	assert.Equal(t, 0, d.Pending())
}

func TestDebouncer_StartAfterStopAcceptsWork(t *testing.T) {
	d := NewDebouncer(5 * time.Millisecond)
	d.Stop()
	d.Start(context.Background())
	defer d.Stop()

	var calls atomic.Int32
	d.Schedule(context.Background(), "p1", func(context.Context) { calls.Add(1) })
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
}
