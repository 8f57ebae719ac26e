package domain

import "fmt"

// Action is a named text transform. Prompt carries the instruction a
// language model receives ahead of the selected text; plugin-provided
// actions leave it empty and keep the instruction on their side.
type Action struct {
	ID     string
	Title  string
	Prompt string
}

func (a Action) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("action id is required")
	}
	if a.Title == "" {
		return fmt.Errorf("action title is required")
	}
	return nil
}

// Builtins returns the actions every provider is asked to support, in
// the order the UI presents them.
func Builtins() []Action {
	return []Action{
		{
			ID:     "summarize",
			Title:  "Summarize",
			Prompt: "Summarize the following text in a few concise sentences. Reply with the summary only.",
		},
		{
			ID:     "rewrite",
			Title:  "Rewrite",
			Prompt: "Rewrite the following text so it reads clearly and simply. Keep the meaning. Reply with the rewritten text only.",
		},
		{
			ID:     "proofread",
			Title:  "Proofread",
			Prompt: "Fix spelling, grammar, and punctuation in the following text. Keep the tone and wording. Reply with the corrected text only.",
		},
		{
			ID:     "continue",
			Title:  "Continue writing",
			Prompt: "Continue the following text in the same tone and style. Reply with the continuation only.",
		},
		{
			ID:     "outline",
			Title:  "Outline",
			Prompt: "Turn the following text into a markdown bullet outline of its main points. Reply with the outline only.",
		},
	}
}

// ProviderCheck is one line of a provider health report.
type ProviderCheck struct {
	Target string
	OK     bool
	Detail string
}
