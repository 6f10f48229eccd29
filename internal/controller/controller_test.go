package controller

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/musekit/muse/internal/catalog"
	apperrors "github.com/musekit/muse/internal/errors"
	"github.com/musekit/muse/internal/models"
)

// fakeGenerator counts calls and returns a canned response.
type fakeGenerator struct {
	calls  int
	result *models.GenerationResult
	err    error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt, systemInstruction string) (*models.GenerationResult, error) {
	f.calls++
	return f.result, f.err
}

func newTestController(gen *fakeGenerator) *Controller {
	return New(catalog.New(), gen)
}

func fillHaiku(c *Controller) {
	c.SelectTemplate("haiku-poem")
	c.SetValue("topic", "morning frost")
}

func TestInitialState(t *testing.T) {
	c := newTestController(&fakeGenerator{})

	if c.State() != StateIdle {
		t.Errorf("initial state = %v, want Idle", c.State())
	}
	if c.Category() != models.CategoryStory {
		t.Errorf("initial category = %q, want Story", c.Category())
	}
	if c.Template() == nil {
		t.Fatal("no template selected initially")
	}
	if len(c.Templates()) > MaxVisibleTemplates {
		t.Errorf("more than %d templates offered", MaxVisibleTemplates)
	}
}

// Selecting a template replaces the whole value map with that template's
// defaults; nothing leaks from the previous selection.
func TestSelectTemplateReplacesValues(t *testing.T) {
	c := newTestController(&fakeGenerator{})

	c.SelectTemplate("story-general")
	c.SetValue("protagonist", "a weary detective with secrets")

	c.SelectTemplate("haiku-poem")
	values := c.Values()
	if _, ok := values["protagonist"]; ok {
		t.Error("value from previous template survived selection")
	}
	if _, ok := values["topic"]; !ok {
		t.Error("new template's parameter not initialized")
	}
	if c.State() != StateIdle {
		t.Errorf("state after selection = %v, want Idle", c.State())
	}
}

func TestSelectTemplateSeedsDefaults(t *testing.T) {
	c := newTestController(&fakeGenerator{})
	c.SelectTemplate("story-general")

	if got := c.Values().String("genre"); got != "Fantasy" {
		t.Errorf("genre default = %q, want Fantasy", got)
	}
	if n, ok := c.Values().Number("length_words"); !ok || n != 300 {
		t.Errorf("length_words default = %v %v, want 300 as number", n, ok)
	}
}

func TestSelectCategoryPicksFirstTemplate(t *testing.T) {
	c := newTestController(&fakeGenerator{})
	c.SelectCategory(models.CategoryPoem)

	if c.Template() == nil {
		t.Fatal("no template selected after category switch")
	}
	if c.Template().Category != models.CategoryPoem {
		t.Errorf("selected template category = %q, want Poem", c.Template().Category)
	}
}

// An invalid submit must never reach the generation backend.
func TestInvalidSubmitDoesNotCallGenerator(t *testing.T) {
	gen := &fakeGenerator{result: &models.GenerationResult{Text: "x"}}
	c := newTestController(gen)
	c.SelectTemplate("haiku-poem") // topic required, left empty

	c.Submit(context.Background())

	if gen.calls != 0 {
		t.Errorf("generator called %d times on invalid submit", gen.calls)
	}
	if c.State() != StateFailed {
		t.Errorf("state = %v, want Failed", c.State())
	}
	if c.Failure() != "Please fill in all required fields correctly." {
		t.Errorf("failure = %q", c.Failure())
	}
	if c.FieldErrors()["topic"] != "Topic is required." {
		t.Errorf("topic error = %q", c.FieldErrors()["topic"])
	}
}

func TestSuccessfulSubmit(t *testing.T) {
	gen := &fakeGenerator{result: &models.GenerationResult{Text: "frost on the window"}}
	c := newTestController(gen)
	fillHaiku(c)

	c.Submit(context.Background())

	if c.State() != StateSuccess {
		t.Fatalf("state = %v, want Success (failure: %q)", c.State(), c.Failure())
	}
	if c.Result() == nil || c.Result().Text != "frost on the window" {
		t.Errorf("result = %+v", c.Result())
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
}

// Editing a field clears only that field's error; other errors stay until
// the next submit.
func TestSetValueClearsOnlyOwnError(t *testing.T) {
	c := newTestController(&fakeGenerator{})
	c.SelectTemplate("story-dialogue-scene") // three required params, no defaults

	c.Submit(context.Background())
	if len(c.FieldErrors()) != 3 {
		t.Fatalf("expected 3 field errors, got %v", c.FieldErrors())
	}

	c.SetValue("scenario", "an argument over a will")

	errs := c.FieldErrors()
	if _, ok := errs["scenario"]; ok {
		t.Error("edited field's error not cleared")
	}
	if _, ok := errs["character_a_desc"]; !ok {
		t.Error("unrelated field's error was cleared")
	}
	if _, ok := errs["character_b_desc"]; !ok {
		t.Error("unrelated field's error was cleared")
	}
	if c.State() != StateIdle {
		t.Errorf("state after edit = %v, want Idle", c.State())
	}
}

// An edit does not re-validate: entering a still-invalid value removes the
// field's error anyway, until the next submit.
func TestSetValueDoesNotRevalidate(t *testing.T) {
	c := newTestController(&fakeGenerator{})
	c.SelectTemplate("story-general")
	c.SetValue("protagonist", "")
	c.Submit(context.Background())
	if _, ok := c.FieldErrors()["protagonist"]; !ok {
		t.Fatal("expected protagonist error after submit")
	}

	c.SetValue("protagonist", "short") // still under the 10-char minimum
	if _, ok := c.FieldErrors()["protagonist"]; ok {
		t.Error("error re-added without a submit")
	}
}

func TestEmptyResultFails(t *testing.T) {
	gen := &fakeGenerator{result: &models.GenerationResult{Text: "   \n"}}
	c := newTestController(gen)
	fillHaiku(c)

	c.Submit(context.Background())

	if c.State() != StateFailed {
		t.Fatalf("state = %v, want Failed", c.State())
	}
	if c.Failure() != "The generated content was empty. Try adjusting your inputs or try again." {
		t.Errorf("failure = %q", c.Failure())
	}
	if c.Result() != nil {
		t.Error("result set despite empty text")
	}
}

func TestCredentialFailureMessage(t *testing.T) {
	cases := []error{
		apperrors.InvalidAPIKeyError(),
		apperrors.MissingAPIKeyError(),
		fmt.Errorf("generation failed: PERMISSION DENIED by upstream"),
	}
	for _, genErr := range cases {
		gen := &fakeGenerator{err: genErr}
		c := newTestController(gen)
		fillHaiku(c)

		c.Submit(context.Background())

		if c.State() != StateFailed {
			t.Fatalf("%v: state = %v, want Failed", genErr, c.State())
		}
		want := "Invalid or missing API key. Set the GEMINI_API_KEY environment variable and try again."
		if c.Failure() != want {
			t.Errorf("%v: failure = %q, want credential guidance", genErr, c.Failure())
		}
	}
}

func TestGenericFailureMessage(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection reset")}
	c := newTestController(gen)
	fillHaiku(c)

	c.Submit(context.Background())

	if c.Failure() != "Failed to generate content: connection reset" {
		t.Errorf("failure = %q", c.Failure())
	}
}

// A submit while a generation is in flight is dropped.
func TestInFlightGuard(t *testing.T) {
	c := newTestController(&fakeGenerator{})
	fillHaiku(c)

	if _, ok := c.BeginSubmit(); !ok {
		t.Fatal("first submit rejected")
	}
	if c.State() != StateGenerating {
		t.Fatalf("state = %v, want Generating", c.State())
	}
	if _, ok := c.BeginSubmit(); ok {
		t.Error("second submit accepted while generating")
	}
}

// A completion arriving after the selection changed is stale and ignored.
func TestStaleCompletionDropped(t *testing.T) {
	c := newTestController(&fakeGenerator{})
	fillHaiku(c)
	c.BeginSubmit()

	c.SelectTemplate("limerick-poem") // back to Idle

	c.CompleteSubmit(&models.GenerationResult{Text: "late arrival"}, nil)

	if c.State() != StateIdle {
		t.Errorf("state = %v, want Idle", c.State())
	}
	if c.Result() != nil {
		t.Error("stale result applied")
	}
}

// Typing in a field while the call is in flight must not discard the
// completion: the user still gets the result they asked for.
func TestEditDuringGenerationKeepsResult(t *testing.T) {
	gen := &fakeGenerator{result: &models.GenerationResult{Text: "frost on the window"}}
	c := newTestController(gen)
	fillHaiku(c)

	built, ok := c.BeginSubmit()
	if !ok {
		t.Fatal("submit rejected")
	}
	c.SetValue("topic", "evening rain")
	if c.State() != StateGenerating {
		t.Fatalf("state after edit = %v, want Generating", c.State())
	}

	res, err := gen.Generate(context.Background(), built.Prompt, built.SystemInstruction)
	c.CompleteSubmit(res, err)

	if c.State() != StateSuccess {
		t.Fatalf("state = %v, want Success (failure: %q)", c.State(), c.Failure())
	}
	if c.Result() == nil || c.Result().Text != "frost on the window" {
		t.Errorf("result = %+v", c.Result())
	}
	if got := c.Values().String("topic"); got != "evening rain" {
		t.Errorf("edited value = %q, want \"evening rain\"", got)
	}
}

func TestSuccessThenEditReturnsToIdle(t *testing.T) {
	gen := &fakeGenerator{result: &models.GenerationResult{Text: "done"}}
	c := newTestController(gen)
	fillHaiku(c)
	c.Submit(context.Background())
	if c.State() != StateSuccess {
		t.Fatalf("state = %v, want Success", c.State())
	}

	c.SetValue("topic", "evening rain")
	if c.State() != StateIdle {
		t.Errorf("state after edit = %v, want Idle", c.State())
	}
}

func TestNumberInputParsing(t *testing.T) {
	c := newTestController(&fakeGenerator{})
	c.SelectTemplate("story-general")

	c.SetValue("length_words", "750")
	if n, ok := c.Values().Number("length_words"); !ok || n != 750 {
		t.Errorf("parsed value = %v %v, want 750", n, ok)
	}

	c.SetValue("length_words", "many")
	if _, ok := c.Values().Number("length_words"); ok {
		t.Error("unparsed input stored as number")
	}
	if got := c.Values().String("length_words"); got != "many" {
		t.Errorf("raw input = %q, want \"many\"", got)
	}
}
