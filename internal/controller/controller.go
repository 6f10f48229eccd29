// Package controller owns the UI-visible application state: the selected
// category and template, the live parameter values, field errors, and the
// outcome of the last generation. All mutation goes through its transition
// methods; no other component writes this state.
package controller

import (
	"context"
	"strconv"
	"strings"

	"github.com/musekit/muse/internal/catalog"
	apperrors "github.com/musekit/muse/internal/errors"
	"github.com/musekit/muse/internal/models"
	"github.com/musekit/muse/internal/renderer"
	"github.com/musekit/muse/internal/validation"
)

// State is the submit lifecycle: Idle until a submit, Generating while the
// call is in flight, then Success or Failed. Selection changes return the
// controller to Idle, as do edits unless a call is in flight.
type State int

const (
	StateIdle State = iota
	StateGenerating
	StateSuccess
	StateFailed
)

// MaxVisibleTemplates caps how many templates of a category are offered.
const MaxVisibleTemplates = 5

// User-facing failure messages. Raw transport errors never surface.
const (
	msgFillFields = "Please fill in all required fields correctly."
	msgEmpty      = "The generated content was empty. Try adjusting your inputs or try again."
	msgCredential = "Invalid or missing API key. Set the GEMINI_API_KEY environment variable and try again."
)

// Generator is the boundary to the generation service.
type Generator interface {
	Generate(ctx context.Context, prompt, systemInstruction string) (*models.GenerationResult, error)
}

// Controller is the single owner of the active selection/values/errors
// triple. It is not safe for concurrent use; the TUI event loop and the
// one-shot CLI both drive it from a single goroutine.
type Controller struct {
	catalog *catalog.Catalog
	gen     Generator

	state       State
	category    models.Category
	tmpl        *models.Template
	values      models.Values
	fieldErrors models.FieldErrors
	result      *models.GenerationResult
	failure     string
}

// New builds a controller positioned on the first template of the first
// category.
func New(cat *catalog.Catalog, gen Generator) *Controller {
	c := &Controller{
		catalog:     cat,
		gen:         gen,
		values:      models.Values{},
		fieldErrors: models.FieldErrors{},
	}
	c.SelectCategory(models.CategoryStory)
	return c
}

// Accessors. Values and FieldErrors are the live controller-owned maps;
// callers read, the controller writes.

func (c *Controller) State() State                     { return c.state }
func (c *Controller) Category() models.Category        { return c.category }
func (c *Controller) Template() *models.Template       { return c.tmpl }
func (c *Controller) Values() models.Values            { return c.values }
func (c *Controller) FieldErrors() models.FieldErrors  { return c.fieldErrors }
func (c *Controller) Result() *models.GenerationResult { return c.result }
func (c *Controller) Failure() string                  { return c.failure }

// Templates returns the templates offered for the current category, capped
// at MaxVisibleTemplates.
func (c *Controller) Templates() []*models.Template {
	templates := c.catalog.ListByCategory(c.category)
	if len(templates) > MaxVisibleTemplates {
		templates = templates[:MaxVisibleTemplates]
	}
	return templates
}

// SelectCategory switches the active category and resets the selection to
// its first template (or none). Result, errors, and any prior failure are
// cleared.
func (c *Controller) SelectCategory(cat models.Category) {
	c.category = cat
	templates := c.Templates()
	if len(templates) == 0 {
		c.tmpl = nil
		c.values = models.Values{}
		c.reset()
		return
	}
	c.selectTemplate(templates[0])
}

// SelectTemplate switches to the template with the given id. It reports
// false when the id is unknown.
func (c *Controller) SelectTemplate(id string) bool {
	tmpl, ok := c.catalog.ByID(id)
	if !ok {
		return false
	}
	c.category = tmpl.Category
	c.selectTemplate(tmpl)
	return true
}

func (c *Controller) selectTemplate(tmpl *models.Template) {
	c.tmpl = tmpl
	c.values = defaultValues(tmpl)
	c.reset()
}

// reset clears the transient outcome state and returns to Idle.
func (c *Controller) reset() {
	c.fieldErrors = models.FieldErrors{}
	c.result = nil
	c.failure = ""
	c.state = StateIdle
}

// defaultValues initializes the full value map from the template's
// defaults: numeric defaults parsed as numbers, unset number fields zero,
// everything else the literal default or empty string. The map always has
// an entry per parameter.
func defaultValues(tmpl *models.Template) models.Values {
	values := make(models.Values, len(tmpl.Parameters))
	for _, p := range tmpl.Parameters {
		switch {
		case p.DefaultValue != "" && p.Kind == models.KindNumber:
			if n, err := strconv.ParseFloat(p.DefaultValue, 64); err == nil {
				values[p.ID] = n
			} else {
				values[p.ID] = p.DefaultValue
			}
		case p.DefaultValue != "":
			values[p.ID] = p.DefaultValue
		case p.Kind == models.KindNumber:
			values[p.ID] = float64(0)
		default:
			values[p.ID] = ""
		}
	}
	return values
}

// SetValue records a field edit. Number fields parse on the way in; input
// that fails to parse is kept raw so validation can flag it. If the field
// carried an error it is removed — and only that one — without
// re-validating anything. An edit while a call is in flight does not leave
// Generating: only a selection change cancels an outstanding submit.
func (c *Controller) SetValue(id, raw string) {
	if c.tmpl == nil {
		return
	}
	param, ok := c.tmpl.Param(id)
	if !ok {
		return
	}

	if param.Kind == models.KindNumber && strings.TrimSpace(raw) != "" {
		if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			c.values[id] = n
		} else {
			c.values[id] = raw
		}
	} else {
		c.values[id] = raw
	}

	delete(c.fieldErrors, id)
	if c.state != StateGenerating {
		c.state = StateIdle
	}
}

// Submit runs the whole pipeline synchronously: validate, build, generate,
// classify the outcome. The TUI splits this into BeginSubmit and
// CompleteSubmit so the call can run off the event loop.
func (c *Controller) Submit(ctx context.Context) {
	built, ok := c.BeginSubmit()
	if !ok {
		return
	}
	res, err := c.gen.Generate(ctx, built.Prompt, built.SystemInstruction)
	c.CompleteSubmit(res, err)
}

// BeginSubmit validates the current values and, when clean, transitions to
// Generating and returns the built prompt. A submit while already
// Generating is rejected outright. When validation fails no generation call
// may be made; the controller surfaces the generic fill-fields failure
// alongside the per-field messages.
func (c *Controller) BeginSubmit() (renderer.BuiltPrompt, bool) {
	if c.state == StateGenerating {
		return renderer.BuiltPrompt{}, false
	}

	c.result = nil

	if c.tmpl == nil {
		c.failure = msgFillFields
		c.state = StateFailed
		return renderer.BuiltPrompt{}, false
	}

	errs := validation.Validate(c.tmpl, c.values)
	if len(errs) > 0 {
		c.fieldErrors = errs
		c.failure = msgFillFields
		c.state = StateFailed
		return renderer.BuiltPrompt{}, false
	}

	c.fieldErrors = models.FieldErrors{}
	c.failure = ""

	built, err := renderer.Build(c.tmpl, c.values)
	if err != nil {
		c.failure = "Failed to generate content: " + err.Error()
		c.state = StateFailed
		return renderer.BuiltPrompt{}, false
	}

	c.state = StateGenerating
	return built, true
}

// CompleteSubmit folds the generation outcome back into the state machine.
// A completion that arrives after the selection changed (state no longer
// Generating) is dropped.
func (c *Controller) CompleteSubmit(res *models.GenerationResult, err error) {
	if c.state != StateGenerating {
		return
	}

	if err != nil {
		c.result = nil
		c.failure = failureMessage(err)
		c.state = StateFailed
		return
	}

	if res.IsEmpty() {
		c.result = nil
		c.failure = msgEmpty
		c.state = StateFailed
		return
	}

	c.result = res
	c.failure = ""
	c.state = StateSuccess
}

// failureMessage converts a generation error into the single user-visible
// message. Credential problems get configuration guidance instead of the
// raw cause.
func failureMessage(err error) string {
	if apperrors.IsConfiguration(err) {
		return msgCredential
	}
	lower := strings.ToLower(err.Error())
	if strings.Contains(lower, "permission denied") || strings.Contains(lower, "api key not valid") {
		return msgCredential
	}
	msg := err.Error()
	if apperrors.IsAppError(err) {
		msg = apperrors.UserMessage(err)
	}
	return "Failed to generate content: " + msg
}
