package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

const timeLayout = "2006-01-02 15:04"

func (m browserModel) View() string {
	switch m.mode {
	case modeEdit:
		return m.editor.View()
	case modeDetail:
		return m.viewDetail()
	case modeConfirmDelete:
		p, _ := m.current()
		return renderPage("Удаление", fmt.Sprintf("Удалить «%s» вместе с историей версий?", p.Title), "y: да  n: нет")
	default:
		return m.viewList()
	}
}

func (m browserModel) viewList() string {
	title := "Prompt Keeper"
	if m.syncing {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	tagName := "все"
	if tag, ok := m.activeTag(); ok {
		tagName = tag.Name
	}
	b.WriteString(helpStyle.Render("Тег: " + tagName))
	if m.mode == modeSearch || m.search.Value() != "" {
		b.WriteString("  ")
		b.WriteString(m.search.View())
	}
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case len(m.prompts) == 0:
		b.WriteString("Нет промптов\n")
	default:
		for i, p := range m.prompts {
			b.WriteString(m.listLine(i, p))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.statusLines())

	return renderPage(title, b.String(),
		"enter: открыть  n: новый  e: изменить  c: копировать  /: поиск  t: тег  s: синхр.  ctrl+d: удалить  L: выйти из аккаунта  q: выход")
}

func (m browserModel) listLine(i int, p models.Prompt) string {
	cursor, title := "  ", fitText(p.Title, 40)
	if i == m.idx {
		cursor, title = "> ", selectedStyle.Render(title)
	}

	line := cursor + title
	if names := m.tagNamesOf(p.TagIDs); len(names) > 0 {
		line += "  " + tagStyle.Render("#"+strings.Join(names, " #"))
	}
	if state, ok := m.pending[p.ID]; ok {
		line += "  " + pendingStyle.Render(syncBadge(state))
	}
	return line
}

func syncBadge(state models.SyncState) string {
	switch state {
	case models.SyncPushing:
		return "↑"
	case models.SyncFailed:
		return "!"
	default:
		return "●"
	}
}

func (m browserModel) viewDetail() string {
	p, _ := m.current()

	var b strings.Builder
	if names := m.tagNamesOf(p.TagIDs); len(names) > 0 {
		b.WriteString(tagStyle.Render("#" + strings.Join(names, " #")))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("Изменён: " + p.UpdatedAt.Local().Format(timeLayout)))
	b.WriteString("\n\n")

	box := contentStyle
	if m.width > 8 {
		box = box.Width(m.width - 8)
	}
	b.WriteString(box.Render(p.Content))
	b.WriteString("\n")
	if p.Notes != "" {
		b.WriteString("\nЗаметки: ")
		b.WriteString(p.Notes)
		b.WriteString("\n")
	}

	b.WriteString("\nВерсии:\n")
	if len(m.versions) == 0 {
		b.WriteString("  -\n")
	}
	for i, v := range m.versions {
		cursor := "  "
		if i == m.versionIdx {
			cursor = "> "
		}
		label := v.CommitMessage
		if label == "" {
			label = fitText(firstLine(v.Content), 50)
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, v.CreatedAt.Local().Format(timeLayout), label))
	}

	b.WriteString(m.statusLines())

	return renderPage(p.Title, b.String(), "c: копировать  r: восстановить версию  e: изменить  ctrl+d: удалить  esc: назад")
}

func (m browserModel) statusLines() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
	}
	return b.String()
}
