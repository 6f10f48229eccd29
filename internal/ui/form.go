package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/musekit/muse/internal/models"
)

// formField pairs a parameter spec with its input widget. Long-text
// parameters get a textarea, everything else a single-line input.
type formField struct {
	spec      models.ParameterSpec
	input     textinput.Model
	area      textarea.Model
	multiline bool
}

// ParamForm is the dynamic per-template input form. It is rebuilt from the
// parameter specs every time a template is selected.
type ParamForm struct {
	fields  []formField
	focused int
}

// NewParamForm builds a form for the template, seeding each widget from the
// given values (usually the template defaults).
func NewParamForm(tmpl *models.Template, values models.Values) *ParamForm {
	fields := make([]formField, 0, len(tmpl.Parameters))
	for _, spec := range tmpl.Parameters {
		f := formField{spec: spec, multiline: spec.Kind == models.KindLongText}
		if f.multiline {
			ta := textarea.New()
			ta.Placeholder = spec.Placeholder
			ta.ShowLineNumbers = false
			ta.SetWidth(70)
			ta.SetHeight(4)
			ta.CharLimit = 0
			ta.SetValue(values.String(spec.ID))
			f.area = ta
		} else {
			ti := textinput.New()
			ti.Placeholder = spec.Placeholder
			ti.Width = 50
			ti.CharLimit = 0
			ti.SetValue(values.String(spec.ID))
			f.input = ti
		}
		fields = append(fields, f)
	}

	form := &ParamForm{fields: fields}
	if len(form.fields) > 0 {
		form.focusField(0)
	}
	return form
}

// NextField moves focus forward, wrapping around.
func (f *ParamForm) NextField() {
	if len(f.fields) == 0 {
		return
	}
	f.blurField(f.focused)
	f.focusField((f.focused + 1) % len(f.fields))
}

// PrevField moves focus backward, wrapping around.
func (f *ParamForm) PrevField() {
	if len(f.fields) == 0 {
		return
	}
	f.blurField(f.focused)
	f.focusField((f.focused - 1 + len(f.fields)) % len(f.fields))
}

func (f *ParamForm) focusField(i int) {
	f.focused = i
	if f.fields[i].multiline {
		f.fields[i].area.Focus()
	} else {
		f.fields[i].input.Focus()
	}
}

func (f *ParamForm) blurField(i int) {
	if i < 0 || i >= len(f.fields) {
		return
	}
	if f.fields[i].multiline {
		f.fields[i].area.Blur()
	} else {
		f.fields[i].input.Blur()
	}
}

// FocusedMultiline reports whether the focused field is a textarea, where
// enter inserts a newline instead of submitting.
func (f *ParamForm) FocusedMultiline() bool {
	if f.focused < 0 || f.focused >= len(f.fields) {
		return false
	}
	return f.fields[f.focused].multiline
}

// Update forwards the message to the focused widget and reports the edited
// field's id and new raw value (empty id when nothing changed focus-wise).
func (f *ParamForm) Update(msg tea.Msg) (tea.Cmd, string, string) {
	if f.focused < 0 || f.focused >= len(f.fields) {
		return nil, "", ""
	}

	field := &f.fields[f.focused]
	var cmd tea.Cmd
	if field.multiline {
		before := field.area.Value()
		field.area, cmd = field.area.Update(msg)
		if after := field.area.Value(); after != before {
			return cmd, field.spec.ID, after
		}
	} else {
		before := field.input.Value()
		field.input, cmd = field.input.Update(msg)
		if after := field.input.Value(); after != before {
			return cmd, field.spec.ID, after
		}
	}
	return cmd, "", ""
}

// View renders the form with labels, widgets, and per-field errors.
func (f *ParamForm) View(errs models.FieldErrors) string {
	var b strings.Builder
	for i, field := range f.fields {
		label := field.spec.Label
		if field.spec.Rule().Required {
			label += " *"
		}
		if i == f.focused {
			b.WriteString(StyleSubtitle.Render(label))
		} else {
			b.WriteString(StyleFormLabel.Render(label))
		}
		b.WriteString("\n")

		if field.multiline {
			b.WriteString(field.area.View())
		} else {
			b.WriteString(field.input.View())
		}
		b.WriteString("\n")

		if msg, ok := errs[field.spec.ID]; ok {
			b.WriteString(StyleFieldError.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
