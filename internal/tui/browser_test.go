package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-prompt-keeper/internal/events"
	"github.com/MKhiriev/go-prompt-keeper/internal/mock"
	"github.com/MKhiriev/go-prompt-keeper/internal/service"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

type browserFixture struct {
	prompts *mock.MockPromptService
	tags    *mock.MockTagService
	sync    *mock.MockSyncService
	bus     *events.Bus
	model   browserModel
}

func newBrowserFixture(t *testing.T) *browserFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &browserFixture{
		prompts: mock.NewMockPromptService(ctrl),
		tags:    mock.NewMockTagService(ctrl),
		sync:    mock.NewMockSyncService(ctrl),
		bus:     events.NewBus(),
	}
	services := &service.ClientServices{Prompts: f.prompts, Tags: f.tags, Sync: f.sync, Bus: f.bus}
	bridge := newBusBridge(f.bus)
	t.Cleanup(bridge.Close)

	f.model = newBrowserModel(context.Background(), services, bridge)
	return f
}

func (f *browserFixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := f.model.Update(msg)
	m, ok := next.(browserModel)
	require.True(t, ok)
	f.model = m
	return cmd
}

// load feeds a list load result as if cmdLoad had run.
func (f *browserFixture) load(t *testing.T, prompts []models.Prompt, tags []models.Tag) {
	t.Helper()
	f.send(t, listLoadedMsg{prompts: prompts, tags: tags})
}

func press(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

var (
	greeting = models.Prompt{ID: "p1", Title: "Greeting", Content: "Say hello", TagIDs: []string{"t1"}}
	summary  = models.Prompt{ID: "p2", Title: "Summary", Content: "Summarize the text"}
	workTag  = models.Tag{ID: "t1", Name: "work"}
)

func TestBrowser_LoadCommand(t *testing.T) {
	f := newBrowserFixture(t)
	f.tags.EXPECT().ListTags(gomock.Any()).Return([]models.Tag{workTag}, nil)
	f.prompts.EXPECT().ListPrompts(gomock.Any(), models.PromptFilter{AllFolders: true}).
		Return([]models.Prompt{greeting, summary}, nil)

	f.send(t, f.model.cmdLoad()())

	assert.False(t, f.model.loading)
	assert.Len(t, f.model.prompts, 2)
	assert.Contains(t, f.model.View(), "Greeting")
	assert.Contains(t, f.model.View(), "#work")
}

func TestBrowser_Search(t *testing.T) {
	f := newBrowserFixture(t)
	f.load(t, []models.Prompt{greeting, summary}, nil)

	f.send(t, press("/"))
	require.Equal(t, modeSearch, f.model.mode)

	f.send(t, press("sum"))
	require.Len(t, f.model.prompts, 1)
	assert.Equal(t, "p2", f.model.prompts[0].ID)

	f.send(t, press("esc"))
	assert.Equal(t, modeList, f.model.mode)
	assert.Len(t, f.model.prompts, 2)

	// поиск идёт и по тексту промпта
	f.send(t, press("/"))
	f.send(t, press("HELLO"))
	f.send(t, press("enter"))
	assert.Equal(t, modeList, f.model.mode)
	require.Len(t, f.model.prompts, 1)
	assert.Equal(t, "p1", f.model.prompts[0].ID)
}

func TestBrowser_TagFilter(t *testing.T) {
	f := newBrowserFixture(t)
	f.load(t, []models.Prompt{greeting, summary}, []models.Tag{workTag})

	cmd := f.send(t, press("t"))
	require.NotNil(t, cmd)

	f.tags.EXPECT().ListTags(gomock.Any()).Return([]models.Tag{workTag}, nil)
	f.prompts.EXPECT().ListPrompts(gomock.Any(), models.PromptFilter{AllFolders: true, TagID: "t1"}).
		Return([]models.Prompt{greeting}, nil)
	f.send(t, cmd())

	assert.Len(t, f.model.prompts, 1)
	assert.Contains(t, f.model.View(), "Тег: work")
}

func TestBrowser_DetailAndRestore(t *testing.T) {
	f := newBrowserFixture(t)
	f.load(t, []models.Prompt{greeting}, []models.Tag{workTag})

	versions := []models.PromptVersion{
		{ID: "v2", PromptID: "p1", Content: "Say hello", CreatedAt: time.Now()},
		{ID: "v1", PromptID: "p1", Content: "Say hi", CommitMessage: "first draft", CreatedAt: time.Now().Add(-time.Hour)},
	}
	f.prompts.EXPECT().ListVersions(gomock.Any(), "p1").Return(versions, nil)

	cmd := f.send(t, press("enter"))
	require.Equal(t, modeDetail, f.model.mode)
	f.send(t, cmd())
	assert.Contains(t, f.model.View(), "first draft")

	f.send(t, press("j"))
	f.prompts.EXPECT().RestoreVersion(gomock.Any(), "v1").Return(greeting, nil)
	cmd = f.send(t, press("r"))
	f.send(t, cmd())
	assert.Equal(t, "Версия восстановлена", f.model.status)
}

func TestBrowser_Copy(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error { copied = text; return nil }
	t.Cleanup(func() { writeClipboard = orig })

	f := newBrowserFixture(t)
	f.load(t, []models.Prompt{greeting}, nil)

	cmd := f.send(t, press("c"))
	f.send(t, cmd())
	assert.Equal(t, "Say hello", copied)
	assert.Equal(t, "Скопировано", f.model.status)
}

func TestBrowser_DeleteNeedsConfirmation(t *testing.T) {
	f := newBrowserFixture(t)
	f.load(t, []models.Prompt{greeting, summary}, nil)

	f.send(t, press("ctrl+d"))
	require.Equal(t, modeConfirmDelete, f.model.mode)

	f.send(t, press("n"))
	assert.Equal(t, modeList, f.model.mode, "отказ возвращает к списку")

	f.send(t, press("ctrl+d"))
	f.prompts.EXPECT().DeletePrompt(gomock.Any(), "p1").Return(nil)
	cmd := f.send(t, press("y"))
	next := cmd()
	assert.IsType(t, promptDeletedMsg{}, next)
}

func TestBrowser_SaveResolvesTags(t *testing.T) {
	f := newBrowserFixture(t)
	f.load(t, nil, []models.Tag{workTag})

	f.send(t, press("n"))
	require.Equal(t, modeEdit, f.model.mode)
	f.model.editor.title.SetValue("Review")
	f.model.editor.tags.SetValue("work, code ")
	f.model.editor.content.SetValue("Review this diff")

	gomock.InOrder(
		f.tags.EXPECT().CreateTag(gomock.Any(), "work").Return(workTag, nil),
		f.tags.EXPECT().CreateTag(gomock.Any(), "code").Return(models.Tag{ID: "t2", Name: "code"}, nil),
		f.prompts.EXPECT().CreatePrompt(gomock.Any(), models.PromptInput{
			Title:   "Review",
			Content: "Review this diff",
			TagIDs:  []string{"t1", "t2"},
		}).Return(models.Prompt{ID: "p3", Title: "Review"}, nil),
	)

	cmd := f.send(t, press("ctrl+s"))
	require.NotNil(t, cmd)
	f.send(t, cmd())
	assert.Equal(t, modeList, f.model.mode)
	assert.Equal(t, "Промпт сохранён", f.model.status)
}

func TestBrowser_SaveRequiresTitleAndContent(t *testing.T) {
	f := newBrowserFixture(t)
	f.load(t, nil, nil)

	f.send(t, press("n"))
	cmd := f.send(t, press("ctrl+s"))
	assert.Nil(t, cmd)
	assert.NotEmpty(t, f.model.editor.err)
}

func TestBrowser_Sync(t *testing.T) {
	f := newBrowserFixture(t)
	f.load(t, []models.Prompt{greeting}, nil)

	f.sync.EXPECT().StartSession(gomock.Any()).Return(errors.New("dial tcp: connection refused"))
	f.send(t, press("s"))
	require.True(t, f.model.syncing)

	f.send(t, f.model.cmdSync()())
	assert.False(t, f.model.syncing)
	assert.NotEmpty(t, f.model.errMsg)
}

func TestBrowser_TrackSync(t *testing.T) {
	f := newBrowserFixture(t)
	f.load(t, []models.Prompt{greeting}, nil)

	f.send(t, syncEventMsg{event: models.SyncEvent{Kind: models.KindPrompt, ID: "p1", State: models.SyncPending}})
	assert.Equal(t, models.SyncPending, f.model.pending["p1"])
	assert.Contains(t, f.model.View(), "●")

	f.send(t, syncEventMsg{event: models.SyncEvent{Kind: models.KindPrompt, ID: "p1", State: models.SyncFailed, Err: service.ErrSyncFailure}})
	assert.Equal(t, models.SyncFailed, f.model.pending["p1"])
	assert.NotEmpty(t, f.model.errMsg)

	f.send(t, syncEventMsg{event: models.SyncEvent{Kind: models.KindPrompt, ID: "p1", State: models.SyncSynced}})
	assert.NotContains(t, f.model.pending, "p1")
}
