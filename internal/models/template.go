package models

// Category groups templates by the kind of content they produce.
type Category string

const (
	CategoryStory         Category = "Story"
	CategoryPoem          Category = "Poem"
	CategoryCharacter     Category = "Character"
	CategoryWorldbuilding Category = "Worldbuilding"
)

// ParamKind describes the input widget and value type of a parameter.
type ParamKind string

const (
	KindShortText ParamKind = "short-text"
	KindLongText  ParamKind = "long-text"
	KindNumber    ParamKind = "number"
)

// ValidationRule holds the optional, composable constraints for one parameter.
// Zero values mean "rule not set"; Min/Max are pointers so a bound of zero is
// distinguishable from an absent bound.
type ValidationRule struct {
	Required  bool     `json:"required,omitempty"`
	MinLength int      `json:"minLength,omitempty"`
	MaxLength int      `json:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
}

// ParameterSpec describes one user-editable input field of a template.
// Specs are immutable once the catalog is built.
type ParameterSpec struct {
	ID           string          `json:"id"`
	Label        string          `json:"label"`
	Kind         ParamKind       `json:"kind"`
	DefaultValue string          `json:"defaultValue,omitempty"`
	Placeholder  string          `json:"placeholder,omitempty"`
	Validation   *ValidationRule `json:"validation,omitempty"`
}

// Rule returns the parameter's validation rule, or an empty rule when none
// was declared.
func (p ParameterSpec) Rule() ValidationRule {
	if p.Validation == nil {
		return ValidationRule{}
	}
	return *p.Validation
}

// Template is one content-generation recipe: a parameter schema in display
// order plus a static persona instruction. The prompt scaffold itself lives
// in the formatter registered under the template's ID.
type Template struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          Category        `json:"category"`
	Description       string          `json:"description"`
	SystemInstruction string          `json:"systemInstruction,omitempty"`
	Parameters        []ParameterSpec `json:"parameters"`
}

// Param returns the parameter spec with the given id.
func (t *Template) Param(id string) (ParameterSpec, bool) {
	for _, p := range t.Parameters {
		if p.ID == id {
			return p, true
		}
	}
	return ParameterSpec{}, false
}
