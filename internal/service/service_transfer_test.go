package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-prompt-keeper/internal/events"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

type transferFixture struct {
	local    *store.LocalStore
	prompts  PromptService
	tags     TagService
	folders  FolderService
	presets  PresetService
	transfer TransferService
	bus      *events.Bus
}

func newTransferFixture(t *testing.T) transferFixture {
	t.Helper()
	local := newTestStore(t)
	bus := events.NewBus()
	syncSvc := newLocalSync(t, local, bus)
	return transferFixture{
		local:    local,
		prompts:  NewPromptService(local, syncSvc, bus),
		tags:     NewTagService(local, syncSvc, bus),
		folders:  NewFolderService(local, syncSvc, bus),
		presets:  NewPresetService(local, bus),
		transfer: NewTransferService(local, syncSvc, bus),
		bus:      bus,
	}
}

// seed creates a small library: one folder, one tag, a prompt with two
// versions and a preset.
func (f transferFixture) seed(t *testing.T, ctx context.Context) models.Prompt {
	t.Helper()
	tag, err := f.tags.CreateTag(ctx, "work")
	require.NoError(t, err)
	folder, err := f.folders.CreateFolder(ctx, models.FolderInput{Name: "drafts"})
	require.NoError(t, err)
	p, err := f.prompts.CreatePrompt(ctx, models.PromptInput{Title: "t", Content: "v1", TagIDs: []string{tag.ID}, FolderID: &folder.ID})
	require.NoError(t, err)
	p, err = f.prompts.UpdatePrompt(ctx, p.ID, models.PromptInput{Title: "t", Content: "v2", TagIDs: []string{tag.ID}, FolderID: &folder.ID})
	require.NoError(t, err)
	_, err = f.presets.CreatePreset(ctx, validPresetInput("creative"))
	require.NoError(t, err)
	return p
}

func TestTransferService_Export(t *testing.T) {
	f := newTransferFixture(t)
	ctx := ownerCtx(ownerA)
	f.seed(t, ctx)

	// чужие данные не попадают в экспорт
	_, err := f.prompts.CreatePrompt(ownerCtx(ownerB), models.PromptInput{Title: "foreign"})
	require.NoError(t, err)

	snapshot, err := f.transfer.Export(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.SnapshotFormatVersion, snapshot.FormatVersion)
	assert.Len(t, snapshot.Prompts, 1)
	assert.Len(t, snapshot.Tags, 1)
	assert.Len(t, snapshot.Folders, 1)
	assert.Len(t, snapshot.Versions, 2)
	assert.Len(t, snapshot.Presets, 1)

	for _, p := range snapshot.Prompts {
		assert.Nil(t, p.OwnerID)
		assert.Nil(t, p.LastSyncedAt)
	}
	for _, v := range snapshot.Versions {
		assert.Nil(t, v.OwnerID)
	}
}

func TestTransferService_Export_Empty(t *testing.T) {
	f := newTransferFixture(t)

	snapshot, err := f.transfer.Export(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, snapshot.Prompts)
	assert.NotNil(t, snapshot.Tags)
	assert.NotNil(t, snapshot.Folders)
	assert.NotNil(t, snapshot.Versions)
	assert.NotNil(t, snapshot.Presets)
}

func TestTransferService_Import_MergeIntoAnotherDevice(t *testing.T) {
	src := newTransferFixture(t)
	original := src.seed(t, ownerCtx(ownerA))

	snapshot, err := src.transfer.Export(ownerCtx(ownerA))
	require.NoError(t, err)

	dst := newTransferFixture(t)
	ctx := ownerCtx(ownerB)

	// тег с тем же именем, но другим id уже есть у получателя
	existing, err := dst.tags.CreateTag(ctx, "work")
	require.NoError(t, err)
	changes := recordChanges(dst.bus, models.KindPrompt)

	report, err := dst.transfer.Import(ctx, snapshot, models.ImportMerge)
	require.NoError(t, err)

	assert.Equal(t, models.ImportReport{Prompts: 1, Tags: 0, Folders: 1, Versions: 2, Presets: 1, MergedTags: 1}, report)

	got, ok, err := dst.prompts.GetPrompt(ctx, original.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, got.OwnerID)
	assert.Equal(t, ownerB, *got.OwnerID)
	assert.Equal(t, []string{existing.ID}, got.TagIDs, "tag references follow the merged tag")
	assert.NotNil(t, got.FolderID)
	assert.Nil(t, got.LastSyncedAt, "imported rows are pending")

	versions, err := dst.prompts.ListVersions(ctx, original.ID)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, "v2", versions[0].Content)

	tags, err := dst.tags.ListTags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)

	assert.Equal(t, []models.ChangeOp{models.OpUpdated}, changes.ops(), "one bulk event per kind")
}

func TestTransferService_Import_Overwrite(t *testing.T) {
	src := newTransferFixture(t)
	src.seed(t, context.Background())
	snapshot, err := src.transfer.Export(context.Background())
	require.NoError(t, err)

	dst := newTransferFixture(t)
	ctx := context.Background()
	stale, err := dst.prompts.CreatePrompt(ctx, models.PromptInput{Title: "stale"})
	require.NoError(t, err)
	_, err = dst.presets.CreatePreset(ctx, validPresetInput("old preset"))
	require.NoError(t, err)

	report, err := dst.transfer.Import(ctx, snapshot, models.ImportOverwrite)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Prompts)

	_, ok, err := dst.prompts.GetPrompt(ctx, stale.ID)
	require.NoError(t, err)
	assert.False(t, ok, "overwrite clears local prompts first")

	presets, err := dst.presets.ListPresets(ctx)
	require.NoError(t, err)
	require.Len(t, presets, 1)
	assert.Equal(t, "creative", presets[0].Name)
}

func TestTransferService_Import_CreatesMissingInitialVersion(t *testing.T) {
	f := newTransferFixture(t)
	ctx := ownerCtx(ownerA)

	snapshot := models.Snapshot{
		FormatVersion: models.SnapshotFormatVersion,
		Prompts: []models.Prompt{{
			ID: "p1", Title: "no history", Content: "body",
			TagIDs: []string{"unknown-tag"}, FolderID: ptr("unknown-folder"),
			CreatedAt: testEpoch, UpdatedAt: testEpoch,
		}},
	}

	report, err := f.transfer.Import(ctx, snapshot, models.ImportMerge)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Versions)

	p, ok, err := f.prompts.GetPrompt(ctx, "p1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, p.TagIDs, "dangling tag references are dropped")
	assert.Nil(t, p.FolderID, "dangling folder references are dropped")

	versions, err := f.prompts.ListVersions(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, "body", versions[0].Content)
}

func TestTransferService_Import_Rejects(t *testing.T) {
	f := newTransferFixture(t)
	ctx := context.Background()
	existing, err := f.prompts.CreatePrompt(ctx, models.PromptInput{Title: "keep me"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		snapshot models.Snapshot
		mode     models.ImportMode
		wantErr  error
	}{
		{
			name:     "unknown format",
			snapshot: models.Snapshot{FormatVersion: 99},
			mode:     models.ImportMerge,
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "unknown mode",
			snapshot: models.Snapshot{FormatVersion: models.SnapshotFormatVersion},
			mode:     "replace",
			wantErr:  ErrInvalidInput,
		},
		{
			name: "preset out of range",
			snapshot: models.Snapshot{
				FormatVersion: models.SnapshotFormatVersion,
				Presets:       []models.ExecutionPreset{{ID: "x", Name: "hot", Temperature: 5}},
			},
			mode:    models.ImportOverwrite,
			wantErr: ErrInvalidInput,
		},
		{
			name: "version without prompt",
			snapshot: models.Snapshot{
				FormatVersion: models.SnapshotFormatVersion,
				Versions:      []models.PromptVersion{{ID: "v1", Content: "x"}},
			},
			mode:    models.ImportOverwrite,
			wantErr: ErrInvalidInput,
		},
		{
			name: "folder cycle",
			snapshot: models.Snapshot{
				FormatVersion: models.SnapshotFormatVersion,
				Folders: []models.Folder{
					{ID: "f1", Name: "one", ParentID: ptr("f2")},
					{ID: "f2", Name: "two", ParentID: ptr("f1")},
				},
			},
			mode:    models.ImportOverwrite,
			wantErr: ErrFolderCycle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.transfer.Import(ctx, tt.snapshot, tt.mode)
			assert.ErrorIs(t, err, tt.wantErr)

			// откат: ничего не удалено даже в режиме overwrite
			_, ok, err := f.prompts.GetPrompt(ctx, existing.ID)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

// Another account on the same device imports a snapshot whose ids already
// belong to owner A: nothing of A is touched and every such row is counted
// as skipped.
func TestTransferService_Import_MergeSkipsRowsOfAnotherOwner(t *testing.T) {
	f := newTransferFixture(t)
	original := f.seed(t, ownerCtx(ownerA))

	snapshot, err := f.transfer.Export(ownerCtx(ownerA))
	require.NoError(t, err)
	snapshot.Prompts[0].Content = "hijacked"

	ctx := ownerCtx(ownerB)
	report, err := f.transfer.Import(ctx, snapshot, models.ImportMerge)
	require.NoError(t, err)

	// тег, папка, промпт и две версии
	assert.Equal(t, models.ImportReport{Presets: 1, Skipped: 5}, report)

	raw, ok, err := f.local.Prompts().Get(context.Background(), original.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, raw.OwnerID)
	assert.Equal(t, ownerA, *raw.OwnerID, "чужая строка не меняет владельца")
	assert.Equal(t, "v2", raw.Content)

	prompts, err := f.prompts.ListPrompts(ctx, models.PromptFilter{})
	require.NoError(t, err)
	assert.Empty(t, prompts)
	tags, err := f.tags.ListTags(ctx)
	require.NoError(t, err)
	assert.Empty(t, tags)
	folders, err := f.folders.ListFolders(ctx)
	require.NoError(t, err)
	assert.Empty(t, folders)

	versions, err := f.prompts.ListVersions(ownerCtx(ownerA), original.ID)
	require.NoError(t, err)
	assert.Len(t, versions, 2)
	for _, v := range versions {
		require.NotNil(t, v.OwnerID)
		assert.Equal(t, ownerA, *v.OwnerID)
	}
}
