package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-prompt-keeper/internal/service"
)

// loginModel signs in with enter or registers with ctrl+r. esc leaves the
// form without an account.
type loginModel struct {
	ctx     context.Context
	session service.SessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	ownerID string
}

func newLoginModel(ctx context.Context, session service.SessionService) loginModel {
	login := textinput.New()
	login.Placeholder = "Логин"
	login.Width = 40
	login.Focus()

	password := textinput.New()
	password.Placeholder = "Пароль"
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{ctx: ctx, session: session, inputs: []textinput.Model{login, password}}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.ownerID = msg.ownerID
		return m, tea.Quit
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch {
		case msg.Type == tea.KeyCtrlC, key.Matches(msg, keys.esc):
			return m, tea.Quit
		case key.Matches(msg, keys.tab):
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			cmd := m.inputs[m.focus].Focus()
			return m, cmd
		case key.Matches(msg, keys.enter):
			return m.submit(m.session.Login)
		case key.Matches(msg, keys.reg):
			return m.submit(m.session.Register)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) submit(auth func(ctx context.Context, login, password string) (string, error)) (tea.Model, tea.Cmd) {
	login := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()
	if login == "" || password == "" {
		m.errMsg = "нужны логин и пароль"
		return m, nil
	}

	m.submitting = true
	m.errMsg = ""
	ctx := m.ctx
	return m, func() tea.Msg {
		ownerID, err := auth(ctx, login, password)
		return authDoneMsg{ownerID: ownerID, err: err}
	}
}

func (m loginModel) View() string {
	var b strings.Builder
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString("\nПодключение...")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage("Вход в аккаунт синхронизации", b.String(),
		"enter: войти  ctrl+r: зарегистрироваться  tab: поле  esc: работать без аккаунта")
}
