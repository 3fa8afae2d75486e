package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

// editorModel is the create/edit form of a prompt. Tags are typed as a
// comma separated list of names.
type editorModel struct {
	base    models.Prompt
	title   textinput.Model
	tags    textinput.Model
	content textarea.Model
	focus   int
	err     string
}

const editorFields = 3

func newEditorModel(base models.Prompt, tagNames []string) editorModel {
	title := textinput.New()
	title.Placeholder = "Название"
	title.Width = 54
	title.SetValue(base.Title)
	title.Focus()

	tags := textinput.New()
	tags.Placeholder = "Теги через запятую (можно пусто)"
	tags.Width = 54
	tags.SetValue(strings.Join(tagNames, ", "))

	content := textarea.New()
	content.Placeholder = "Текст промпта"
	content.SetWidth(60)
	content.SetHeight(10)
	content.SetValue(base.Content)

	return editorModel{base: base, title: title, tags: tags, content: content}
}

func (e editorModel) isNew() bool { return e.base.ID == "" }

func (e editorModel) tagNames() []string {
	var names []string
	for _, name := range strings.Split(e.tags.Value(), ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// input is the prompt as typed. Tag ids are resolved on save.
func (e editorModel) input() models.PromptInput {
	return models.PromptInput{
		Title:    strings.TrimSpace(e.title.Value()),
		Content:  e.content.Value(),
		Notes:    e.base.Notes,
		FolderID: e.base.FolderID,
	}
}

func (e editorModel) Update(msg tea.Msg) (editorModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.tab) {
		e.focus = (e.focus + 1) % editorFields
		e.title.Blur()
		e.tags.Blur()
		e.content.Blur()
		var cmd tea.Cmd
		switch e.focus {
		case 0:
			cmd = e.title.Focus()
		case 1:
			cmd = e.tags.Focus()
		default:
			cmd = e.content.Focus()
		}
		return e, cmd
	}

	var cmd tea.Cmd
	switch e.focus {
	case 0:
		e.title, cmd = e.title.Update(msg)
	case 1:
		e.tags, cmd = e.tags.Update(msg)
	default:
		e.content, cmd = e.content.Update(msg)
	}
	return e, cmd
}

func (e editorModel) View() string {
	title := "Новый промпт"
	if !e.isNew() {
		title = "Изменить: " + e.base.Title
	}

	var b strings.Builder
	b.WriteString(e.title.View())
	b.WriteString("\n")
	b.WriteString(e.tags.View())
	b.WriteString("\n\n")
	b.WriteString(e.content.View())
	if e.err != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(e.err))
	}

	return renderPage(title, b.String(), "tab: поле  ctrl+s: сохранить  esc: отмена")
}
