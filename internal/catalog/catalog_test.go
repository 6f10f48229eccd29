package catalog

import (
	"strconv"
	"testing"

	"github.com/musekit/muse/internal/models"
	"github.com/musekit/muse/internal/renderer"
	"github.com/musekit/muse/internal/validation"
)

func TestUniqueTemplateIDs(t *testing.T) {
	cat := New()
	seen := map[string]bool{}
	for _, tmpl := range cat.All() {
		if seen[tmpl.ID] {
			t.Errorf("duplicate template id %q", tmpl.ID)
		}
		seen[tmpl.ID] = true
	}
}

func TestCategoriesOrder(t *testing.T) {
	cat := New()
	want := []models.Category{
		models.CategoryStory,
		models.CategoryPoem,
		models.CategoryCharacter,
		models.CategoryWorldbuilding,
	}
	got := cat.Categories()
	if len(got) != len(want) {
		t.Fatalf("got %d categories, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEveryCategoryHasTemplates(t *testing.T) {
	cat := New()
	for _, category := range cat.Categories() {
		if len(cat.ListByCategory(category)) == 0 {
			t.Errorf("category %q has no templates", category)
		}
	}
}

func TestByID(t *testing.T) {
	cat := New()
	tmpl, ok := cat.ByID("haiku-poem")
	if !ok {
		t.Fatal("haiku-poem not found")
	}
	if tmpl.Category != models.CategoryPoem {
		t.Errorf("haiku-poem category = %q, want %q", tmpl.Category, models.CategoryPoem)
	}

	if _, ok := cat.ByID("no-such-template"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}

// Every template must have a registered prompt formatter, otherwise
// selection would succeed but submission could never render.
func TestFormattersCoverCatalog(t *testing.T) {
	cat := New()
	for _, tmpl := range cat.All() {
		if !renderer.HasFormatter(tmpl.ID) {
			t.Errorf("template %q has no prompt formatter", tmpl.ID)
		}
	}
}

// Declared defaults must satisfy their own parameter's rules, so a form
// seeded from defaults never shows an error before the user types. Number
// defaults are parsed the way the form seeds them; an unparseable number
// default would dodge its range rule entirely.
func TestDefaultsSatisfyOwnRules(t *testing.T) {
	cat := New()
	for _, tmpl := range cat.All() {
		values := models.Values{}
		for _, p := range tmpl.Parameters {
			if p.DefaultValue == "" {
				continue
			}
			if p.Kind == models.KindNumber {
				n, err := strconv.ParseFloat(p.DefaultValue, 64)
				if err != nil {
					t.Errorf("%s: number default for %q does not parse: %q", tmpl.ID, p.ID, p.DefaultValue)
					continue
				}
				values[p.ID] = n
				continue
			}
			values[p.ID] = p.DefaultValue
		}
		errs := validation.Validate(tmpl, values)
		for _, p := range tmpl.Parameters {
			if p.DefaultValue == "" {
				continue
			}
			if msg, ok := errs[p.ID]; ok {
				t.Errorf("%s: default for %q fails its own rule: %s", tmpl.ID, p.ID, msg)
			}
		}
	}
}

func TestSearch(t *testing.T) {
	cat := New()
	results := cat.Search("haiku")
	if len(results) == 0 {
		t.Fatal("search for haiku returned nothing")
	}
	if results[0].ID != "haiku-poem" {
		t.Errorf("best match = %q, want haiku-poem", results[0].ID)
	}

	if got := cat.Search(""); len(got) != len(cat.All()) {
		t.Errorf("empty query returned %d templates, want all %d", len(got), len(cat.All()))
	}
}

func TestParameterKindsAreKnown(t *testing.T) {
	cat := New()
	known := map[models.ParamKind]bool{
		models.KindShortText: true,
		models.KindLongText:  true,
		models.KindNumber:    true,
	}
	for _, tmpl := range cat.All() {
		for _, p := range tmpl.Parameters {
			if !known[p.Kind] {
				t.Errorf("%s/%s: unknown parameter kind %q", tmpl.ID, p.ID, p.Kind)
			}
		}
	}
}
