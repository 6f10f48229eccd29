// Package renderer turns a template plus parameter values into the final
// prompt text sent to the generation service. Rendering is pure: the same
// template and values always produce the same prompt. No validation happens
// here; callers must validate first.
package renderer

import (
	"encoding/json"
	"fmt"

	"github.com/musekit/muse/internal/models"
)

// BuiltPrompt is the rendered output: the prompt body and the template's
// static persona instruction, kept separate for the API call.
type BuiltPrompt struct {
	Prompt            string `json:"prompt"`
	SystemInstruction string `json:"systemInstruction,omitempty"`
}

// Message represents a chat message for LLM APIs
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Build renders the template's prompt scaffold with the given values. It
// fails only when no formatter is registered for the template id, which
// means the catalog and formatter table have drifted apart.
func Build(tmpl *models.Template, values models.Values) (BuiltPrompt, error) {
	format, ok := formatters[tmpl.ID]
	if !ok {
		return BuiltPrompt{}, fmt.Errorf("no prompt formatter registered for template %q", tmpl.ID)
	}
	return BuiltPrompt{
		Prompt:            format(values),
		SystemInstruction: tmpl.SystemInstruction,
	}, nil
}

// HasFormatter reports whether a formatter is registered for a template id.
func HasFormatter(id string) bool {
	_, ok := formatters[id]
	return ok
}

// Messages returns the built prompt as a chat message array, persona first.
func (b BuiltPrompt) Messages() []Message {
	var msgs []Message
	if b.SystemInstruction != "" {
		msgs = append(msgs, Message{Role: "system", Content: b.SystemInstruction})
	}
	msgs = append(msgs, Message{Role: "user", Content: b.Prompt})
	return msgs
}

// RenderJSON renders the built prompt as a JSON message array for LLM APIs.
func (b BuiltPrompt) RenderJSON() (string, error) {
	jsonBytes, err := json.MarshalIndent(b.Messages(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	return string(jsonBytes), nil
}
