package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
)

// DefaultTickerInterval is used when a Ticker is given a non-positive interval.
const DefaultTickerInterval = 5 * time.Minute

// Ticker calls a job every interval until stopped. Job errors are logged
// and do not stop the ticker.
type Ticker struct {
	name     string
	interval time.Duration
	job      func(ctx context.Context) error

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTicker creates a Ticker that is idle until Start is called.
func NewTicker(name string, interval time.Duration, job func(ctx context.Context) error) *Ticker {
	if interval <= 0 {
		interval = DefaultTickerInterval
	}
	return &Ticker{name: name, interval: interval, job: job}
}

// Start stops any previous run and launches the ticking goroutine. The
// goroutine exits when ctx is cancelled or Stop is called.
func (t *Ticker) Start(ctx context.Context) {
	t.Stop()

	t.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.wg.Add(1)
	t.mu.Unlock()

	go func() {
		defer t.wg.Done()
		tick := time.NewTicker(t.interval)
		defer tick.Stop()

		log := logger.FromContext(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-tick.C:
				if err := t.job(jobCtx); err != nil {
					log.Err(err).Str("func", "Ticker.Start").Str("worker", t.name).Msg("periodic job failed")
				}
			}
		}
	}()
}

// Stop cancels the goroutine and waits for it to exit. Safe to call when
// the ticker is not running.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	t.wg.Wait()
}
