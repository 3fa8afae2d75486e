package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-prompt-keeper/internal/service"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

type browserMode int

const (
	modeList browserMode = iota
	modeSearch
	modeDetail
	modeConfirmDelete
	modeEdit
)

// writeClipboard is swapped in tests; there is no clipboard on CI.
var writeClipboard = clipboard.WriteAll

type browserModel struct {
	ctx      context.Context
	services *service.ClientServices
	bridge   *busBridge

	loaded  []models.Prompt
	prompts []models.Prompt
	tags    []models.Tag
	tagIdx  int
	search  textinput.Model
	idx     int
	loading bool

	mode       browserMode
	returnTo   browserMode
	versions   []models.PromptVersion
	versionIdx int
	editor     editorModel

	spinner spinner.Model
	syncing bool
	pending map[string]models.SyncState

	status string
	errMsg string
	width  int

	logout bool
}

func newBrowserModel(ctx context.Context, services *service.ClientServices, bridge *busBridge) browserModel {
	search := textinput.New()
	search.Placeholder = "поиск"
	search.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return browserModel{
		ctx:      ctx,
		services: services,
		bridge:   bridge,
		search:   search,
		spinner:  s,
		loading:  true,
		pending:  make(map[string]models.SyncState),
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), m.bridge.wait())
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.loaded, m.tags = msg.prompts, msg.tags
		if m.tagIdx > len(m.tags) {
			m.tagIdx = 0
		}
		m.applySearch()
		return m, nil
	case versionsLoadedMsg:
		if p, ok := m.current(); !ok || p.ID != msg.promptID {
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.versions = msg.versions
		m.versionIdx = 0
		return m, nil
	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Синхронизация завершена"
		m.errMsg = ""
		return m, m.cmdLoad()
	case promptSavedMsg:
		if msg.err != nil {
			m.editor.err = humanizeError(msg.err)
			return m, nil
		}
		m.mode = modeList
		m.status = "Промпт сохранён"
		m.errMsg = ""
		m.selectID(msg.prompt.ID)
		return m, m.cmdLoad()
	case promptDeletedMsg:
		m.mode = modeList
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Промпт удалён"
		m.errMsg = ""
		return m, m.cmdLoad()
	case versionRestoredMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Версия восстановлена"
		m.errMsg = ""
		return m, tea.Batch(m.cmdLoad(), m.cmdVersions(msg.prompt.ID))
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Ошибка копирования: " + msg.err.Error()
			return m, nil
		}
		m.status = "Скопировано"
		return m, nil
	case changedMsg:
		cmds := []tea.Cmd{m.cmdLoad(), m.bridge.wait()}
		if p, ok := m.current(); ok && m.mode == modeDetail && msg.event.ID == p.ID {
			cmds = append(cmds, m.cmdVersions(p.ID))
		}
		return m, tea.Batch(cmds...)
	case syncEventMsg:
		m.trackSync(msg.event)
		return m, m.bridge.wait()
	case spinner.TickMsg:
		if !m.syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeDetail:
			return m.updateDetail(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		case modeEdit:
			return m.updateEdit(msg)
		default:
			return m.updateList(msg)
		}
	}

	// textarea/textinput blink and other internal messages
	if m.mode == modeEdit {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m browserModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.prompts)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.search):
		m.mode = modeSearch
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, keys.tagNext):
		m.tagIdx = (m.tagIdx + 1) % (len(m.tags) + 1)
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(msg, keys.enter):
		p, ok := m.current()
		if !ok {
			m.status = "Нет промптов"
			return m, nil
		}
		m.mode = modeDetail
		m.versions = nil
		return m, m.cmdVersions(p.ID)
	case key.Matches(msg, keys.newItem):
		return m.startEdit(models.Prompt{}, modeList)
	case key.Matches(msg, keys.edit):
		if p, ok := m.current(); ok {
			return m.startEdit(p, modeList)
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); ok {
			m.returnTo = modeList
			m.mode = modeConfirmDelete
		}
	case key.Matches(msg, keys.copy):
		if p, ok := m.current(); ok {
			return m, cmdCopy(p.Content)
		}
	case key.Matches(msg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = "Синхронизация..."
		m.errMsg = ""
		return m, tea.Batch(m.cmdSync(), m.spinner.Tick)
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}
	return m, nil
}

func (m browserModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.search.SetValue("")
		m.search.Blur()
		m.mode = modeList
		m.applySearch()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.search.Blur()
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applySearch()
	return m, cmd
}

func (m browserModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p, ok := m.current()
	if !ok {
		m.mode = modeList
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.mode = modeList
	case key.Matches(msg, keys.up):
		if m.versionIdx > 0 {
			m.versionIdx--
		}
	case key.Matches(msg, keys.down):
		if m.versionIdx < len(m.versions)-1 {
			m.versionIdx++
		}
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(p.Content)
	case key.Matches(msg, keys.restore):
		if m.versionIdx < len(m.versions) {
			return m, m.cmdRestore(m.versions[m.versionIdx].ID)
		}
	case key.Matches(msg, keys.edit):
		return m.startEdit(p, modeDetail)
	case key.Matches(msg, keys.delete):
		m.returnTo = modeDetail
		m.mode = modeConfirmDelete
	}
	return m, nil
}

func (m browserModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		if p, ok := m.current(); ok {
			return m, m.cmdDelete(p.ID)
		}
		m.mode = modeList
	case key.Matches(msg, keys.no):
		m.mode = m.returnTo
	}
	return m, nil
}

func (m browserModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = m.returnTo
		return m, nil
	case key.Matches(msg, keys.save):
		in := m.editor.input()
		if in.Title == "" || strings.TrimSpace(in.Content) == "" {
			m.editor.err = "нужны название и текст"
			return m, nil
		}
		return m, m.cmdSave(m.editor.base.ID, in, m.editor.tagNames())
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m browserModel) startEdit(p models.Prompt, returnTo browserMode) (tea.Model, tea.Cmd) {
	m.editor = newEditorModel(p, m.tagNamesOf(p.TagIDs))
	m.returnTo = returnTo
	m.mode = modeEdit
	return m, textinput.Blink
}

func (m browserModel) current() (models.Prompt, bool) {
	if m.idx < 0 || m.idx >= len(m.prompts) {
		return models.Prompt{}, false
	}
	return m.prompts[m.idx], true
}

func (m browserModel) activeTag() (models.Tag, bool) {
	if m.tagIdx == 0 || m.tagIdx > len(m.tags) {
		return models.Tag{}, false
	}
	return m.tags[m.tagIdx-1], true
}

// applySearch narrows the loaded prompts to those whose title or content
// contains the query, ignoring case.
func (m *browserModel) applySearch() {
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))

	var selected string
	if p, ok := m.current(); ok {
		selected = p.ID
	}

	filtered := make([]models.Prompt, 0, len(m.loaded))
	for _, p := range m.loaded {
		if query == "" ||
			strings.Contains(strings.ToLower(p.Title), query) ||
			strings.Contains(strings.ToLower(p.Content), query) {
			filtered = append(filtered, p)
		}
	}
	m.prompts = filtered

	m.idx = 0
	m.selectID(selected)
}

func (m *browserModel) selectID(id string) {
	for i, p := range m.prompts {
		if p.ID == id {
			m.idx = i
			return
		}
	}
	if m.idx >= len(m.prompts) {
		m.idx = max(len(m.prompts)-1, 0)
	}
}

func (m *browserModel) trackSync(e models.SyncEvent) {
	switch e.State {
	case models.SyncPending, models.SyncPushing:
		m.pending[e.ID] = e.State
	case models.SyncFailed:
		m.pending[e.ID] = e.State
		if e.Err != nil {
			m.errMsg = humanizeError(e.Err)
		}
	default:
		delete(m.pending, e.ID)
	}
}

func (m browserModel) tagNamesOf(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		for _, t := range m.tags {
			if t.ID == id {
				names = append(names, t.Name)
				break
			}
		}
	}
	return names
}

// ── commands ────────────────────────────────────────────────────────────────

func (m browserModel) cmdLoad() tea.Cmd {
	ctx, svcs := m.ctx, m.services
	filter := models.PromptFilter{AllFolders: true}
	if tag, ok := m.activeTag(); ok {
		filter.TagID = tag.ID
	}

	return func() tea.Msg {
		tags, err := svcs.Tags.ListTags(ctx)
		if err != nil {
			return listLoadedMsg{err: err}
		}
		prompts, err := svcs.Prompts.ListPrompts(ctx, filter)
		return listLoadedMsg{prompts: prompts, tags: tags, err: err}
	}
}

func (m browserModel) cmdVersions(promptID string) tea.Cmd {
	ctx, prompts := m.ctx, m.services.Prompts
	return func() tea.Msg {
		versions, err := prompts.ListVersions(ctx, promptID)
		return versionsLoadedMsg{promptID: promptID, versions: versions, err: err}
	}
}

func (m browserModel) cmdSync() tea.Cmd {
	ctx, sync := m.ctx, m.services.Sync
	return func() tea.Msg {
		return syncDoneMsg{err: sync.StartSession(ctx)}
	}
}

func (m browserModel) cmdSave(id string, in models.PromptInput, tagNames []string) tea.Cmd {
	ctx, svcs := m.ctx, m.services
	return func() tea.Msg {
		for _, name := range tagNames {
			tag, err := svcs.Tags.CreateTag(ctx, name)
			if err != nil {
				return promptSavedMsg{err: err}
			}
			in.TagIDs = append(in.TagIDs, tag.ID)
		}

		if id == "" {
			p, err := svcs.Prompts.CreatePrompt(ctx, in)
			return promptSavedMsg{prompt: p, err: err}
		}
		p, err := svcs.Prompts.UpdatePrompt(ctx, id, in)
		return promptSavedMsg{prompt: p, err: err}
	}
}

func (m browserModel) cmdDelete(id string) tea.Cmd {
	ctx, prompts := m.ctx, m.services.Prompts
	return func() tea.Msg {
		return promptDeletedMsg{err: prompts.DeletePrompt(ctx, id)}
	}
}

func (m browserModel) cmdRestore(versionID string) tea.Cmd {
	ctx, prompts := m.ctx, m.services.Prompts
	return func() tea.Msg {
		p, err := prompts.RestoreVersion(ctx, versionID)
		return versionRestoredMsg{prompt: p, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}
