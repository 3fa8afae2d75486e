package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-prompt-keeper/internal/config"
	"github.com/MKhiriev/go-prompt-keeper/internal/events"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

const (
	ownerA = "owner-a"
	ownerB = "owner-b"
)

// никогда не срабатывает в рамках теста
const longDebounce = time.Hour

var testEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *store.LocalStore {
	t.Helper()
	s, err := store.NewLocalStore(context.Background(), config.ClientStorage{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// newLocalSync returns a sync service without a remote: every sync call is a
// no-op, so entity services can be tested on their own.
func newLocalSync(t *testing.T, local *store.LocalStore, bus *events.Bus) SyncService {
	t.Helper()
	svc := NewSyncService(local, nil, bus, longDebounce)
	t.Cleanup(svc.Close)
	return svc
}

func ownerCtx(owner string) context.Context {
	return utils.WithOwner(context.Background(), owner)
}

func ptr[T any](v T) *T { return &v }

// changeRecorder collects change events of one kind.
type changeRecorder struct {
	mu     sync.Mutex
	events []models.ChangeEvent
}

func recordChanges(bus *events.Bus, kind models.EntityKind) *changeRecorder {
	r := &changeRecorder{}
	bus.OnChange(kind, func(_ context.Context, e models.ChangeEvent) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.events = append(r.events, e)
	})
	return r
}

func (r *changeRecorder) ops() []models.ChangeOp {
	r.mu.Lock()
	defer r.mu.Unlock()
	ops := make([]models.ChangeOp, len(r.events))
	for i, e := range r.events {
		ops[i] = e.Op
	}
	return ops
}

func putRows(t *testing.T, local *store.LocalStore, fn func(ctx context.Context, tx *store.Tx) error) {
	t.Helper()
	tables := []store.Table{
		store.TablePrompts, store.TableTags, store.TableFolders,
		store.TableVersions, store.TablePendingDeletes,
	}
	require.NoError(t, local.Transaction(context.Background(), tables, fn))
}
