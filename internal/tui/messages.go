package tui

import "github.com/MKhiriev/go-prompt-keeper/models"

type listLoadedMsg struct {
	prompts []models.Prompt
	tags    []models.Tag
	err     error
}

type versionsLoadedMsg struct {
	promptID string
	versions []models.PromptVersion
	err      error
}

type syncDoneMsg struct {
	err error
}

type promptSavedMsg struct {
	prompt models.Prompt
	err    error
}

type promptDeletedMsg struct {
	err error
}

type versionRestoredMsg struct {
	prompt models.Prompt
	err    error
}

type copiedMsg struct {
	err error
}

// changedMsg is a committed local change, possibly made by a pull.
type changedMsg struct {
	event models.ChangeEvent
}

type syncEventMsg struct {
	event models.SyncEvent
}

type authDoneMsg struct {
	ownerID string
	err     error
}
