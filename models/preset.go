package models

import "time"

// ExecutionPreset is a named set of model parameters. Presets are local to
// the device and are never synchronized.
type ExecutionPreset struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Model        string    `json:"model"`
	Temperature  float64   `json:"temperature"`
	MaxTokens    int       `json:"max_tokens"`
	TopP         float64   `json:"top_p"`
	SystemPrompt string    `json:"system_prompt,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PresetInput carries the user-editable fields of an execution preset.
type PresetInput struct {
	Name         string  `json:"name"`
	Model        string  `json:"model"`
	Temperature  float64 `json:"temperature"`
	MaxTokens    int     `json:"max_tokens"`
	TopP         float64 `json:"top_p"`
	SystemPrompt string  `json:"system_prompt,omitempty"`
}
