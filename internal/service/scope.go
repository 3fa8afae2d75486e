package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-prompt-keeper/internal/events"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

// inScope reports whether a row owned by ownerID is visible under the owner
// carried by ctx.
func inScope(ctx context.Context, ownerID *string) bool {
	return equalPtr(utils.OwnerPtrFromContext(ctx), ownerID)
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// uniqueIDs drops empty and repeated ids, keeping first occurrences.
func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

func requireName(name, what string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: %s must not be empty", ErrInvalidInput, what)
	}
	return name, nil
}

// localDeps is what every local entity service needs.
type localDeps struct {
	local *store.LocalStore
	sync  SyncService
	bus   *events.Bus
	ids   utils.IDFunc
}

func newLocalDeps(local *store.LocalStore, sync SyncService, bus *events.Bus) localDeps {
	return localDeps{local: local, sync: sync, bus: bus, ids: utils.NewUUIDGenerator()}
}

func (d localDeps) publish(ctx context.Context, kind models.EntityKind, op models.ChangeOp, ids ...string) {
	for _, id := range ids {
		d.bus.Publish(ctx, models.ChangeEvent{Kind: kind, Op: op, ID: id})
	}
}
