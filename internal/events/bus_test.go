package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

func TestBus_OnChange_ReceivesOnlyItsKind(t *testing.T) {
	bus := NewBus()
	ctx := context.Background()

	var prompts, tags []models.ChangeEvent
	bus.OnChange(models.KindPrompt, func(_ context.Context, e models.ChangeEvent) { prompts = append(prompts, e) })
	bus.OnChange(models.KindTag, func(_ context.Context, e models.ChangeEvent) { tags = append(tags, e) })

	bus.Publish(ctx, models.ChangeEvent{Kind: models.KindPrompt, Op: models.OpCreated, ID: "p1"})
	bus.Publish(ctx, models.ChangeEvent{Kind: models.KindPrompt, Op: models.OpUpdated, ID: "p1"})
	bus.Publish(ctx, models.ChangeEvent{Kind: models.KindTag, Op: models.OpDeleted, ID: "t1"})

	assert.Equal(t, []models.ChangeEvent{
		{Kind: models.KindPrompt, Op: models.OpCreated, ID: "p1"},
		{Kind: models.KindPrompt, Op: models.OpUpdated, ID: "p1"},
	}, prompts)
	assert.Equal(t, []models.ChangeEvent{{Kind: models.KindTag, Op: models.OpDeleted, ID: "t1"}}, tags)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	ctx := context.Background()

	calls := 0
	unsubscribe := bus.OnChange(models.KindFolder, func(context.Context, models.ChangeEvent) { calls++ })

	bus.Publish(ctx, models.ChangeEvent{Kind: models.KindFolder, ID: "f1"})
	unsubscribe()
	unsubscribe()
	bus.Publish(ctx, models.ChangeEvent{Kind: models.KindFolder, ID: "f2"})

	assert.Equal(t, 1, calls)
}

func TestBus_PanickingListenerIsRecovered(t *testing.T) {
	bus := NewBus()
	ctx := context.Background()

	calls := 0
	bus.OnChange(models.KindPrompt, func(context.Context, models.ChangeEvent) { panic("listener bug") })
	bus.OnChange(models.KindPrompt, func(context.Context, models.ChangeEvent) { calls++ })

	assert.NotPanics(t, func() {
		bus.Publish(ctx, models.ChangeEvent{Kind: models.KindPrompt, ID: "p1"})
	})
	// второй слушатель всё равно получил событие
	assert.Equal(t, 1, calls)
}

func TestBus_OnSync(t *testing.T) {
	bus := NewBus()
	ctx := context.Background()

	var got []models.SyncEvent
	unsubscribe := bus.OnSync(func(_ context.Context, e models.SyncEvent) { got = append(got, e) })

	syncErr := errors.New("offline")
	bus.PublishSync(ctx, models.SyncEvent{Kind: models.KindPrompt, ID: "p1", State: models.SyncFailed, Err: syncErr})
	unsubscribe()
	bus.PublishSync(ctx, models.SyncEvent{Kind: models.KindPrompt, ID: "p1", State: models.SyncSynced})

	if assert.Len(t, got, 1) {
		assert.Equal(t, models.SyncFailed, got[0].State)
		assert.ErrorIs(t, got[0].Err, syncErr)
	}
}

func TestBus_ListenerMaySubscribeDuringPublish(t *testing.T) {
	bus := NewBus()
	ctx := context.Background()

	bus.OnChange(models.KindTag, func(context.Context, models.ChangeEvent) {
		bus.OnChange(models.KindTag, func(context.Context, models.ChangeEvent) {})
	})

	assert.NotPanics(t, func() {
		bus.Publish(ctx, models.ChangeEvent{Kind: models.KindTag, ID: "t1"})
	})
}

func TestBus_NilIsNoop(t *testing.T) {
	var bus *Bus
	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), models.ChangeEvent{Kind: models.KindTag})
		bus.PublishSync(context.Background(), models.SyncEvent{Kind: models.KindTag})
	})
}
