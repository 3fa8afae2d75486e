// Package tui is the interactive prompt browser of the client.
//
// It lists prompts of the active owner, shows their version history,
// copies content to the clipboard and follows sync progress through the
// client's event bus.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/service"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger

	// options are passed to every program; tests drive them headless.
	options []tea.ProgramOption
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: nil services")
	}
	return &TUI{services: services, logger: logger, options: []tea.ProgramOption{tea.WithAltScreen()}}, nil
}

// LoginFlow asks for credentials and signs the device in. It returns
// ErrUserQuit when the user leaves the form; the caller then keeps working
// without an account.
func (t *TUI) LoginFlow(ctx context.Context) (ownerID string, err error) {
	finalModel, err := tea.NewProgram(newLoginModel(ctx, t.services.Session), t.options...).Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(loginModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.ownerID == "" {
		return "", ErrUserQuit
	}
	return result.ownerID, nil
}

// Browse runs the prompt browser until the user quits. ctx must carry the
// active owner when there is one. logout reports that the user asked to
// sign out.
func (t *TUI) Browse(ctx context.Context) (logout bool, err error) {
	bridge := newBusBridge(t.services.Bus)
	defer bridge.Close()

	finalModel, err := tea.NewProgram(newBrowserModel(ctx, t.services, bridge), t.options...).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(browserModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
