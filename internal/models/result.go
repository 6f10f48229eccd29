package models

import "strings"

// Source is a citation link the generation service attached to a result.
type Source struct {
	URL   string `json:"url" yaml:"url"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// GenerationResult is the normalized output of one generation call. It is
// transient: it lives from a successful call until the next submit or
// template change and is never persisted.
type GenerationResult struct {
	Text    string   `json:"text" yaml:"text"`
	Sources []Source `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// IsEmpty reports whether the generated text is blank or whitespace only.
func (r *GenerationResult) IsEmpty() bool {
	return r == nil || strings.TrimSpace(r.Text) == ""
}
