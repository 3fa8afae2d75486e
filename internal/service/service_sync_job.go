package service

import (
	"time"

	"github.com/MKhiriev/go-prompt-keeper/internal/workers"
)

// NewSyncJob returns the background worker that retries pending pushes
// every interval. The context passed to Start must carry the owner.
func NewSyncJob(syncService SyncService, interval time.Duration) *workers.Ticker {
	return workers.NewTicker("sync-push-pending", interval, syncService.PushPending)
}
