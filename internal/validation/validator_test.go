package validation

import (
	"testing"

	"github.com/musekit/muse/internal/models"
)

func numPtr(v float64) *float64 { return &v }

func testTemplate() *models.Template {
	return &models.Template{
		ID:       "test-template",
		Name:     "Test Template",
		Category: models.CategoryStory,
		Parameters: []models.ParameterSpec{
			{ID: "title", Label: "Title", Kind: models.KindShortText,
				Validation: &models.ValidationRule{Required: true, MinLength: 3, MaxLength: 10}},
			{ID: "notes", Label: "Notes", Kind: models.KindLongText},
			{ID: "count", Label: "Count", Kind: models.KindNumber,
				Validation: &models.ValidationRule{Min: numPtr(50), Max: numPtr(1500)}},
			{ID: "code", Label: "Code", Kind: models.KindShortText,
				Validation: &models.ValidationRule{Pattern: `[A-Z]{3}-\d+`}},
		},
	}
}

func TestValidatePasses(t *testing.T) {
	errs := Validate(testTemplate(), models.Values{
		"title": "Hello",
		"count": float64(300),
		"code":  "ABC-42",
	})
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestRequiredMissing(t *testing.T) {
	tmpl := testTemplate()

	cases := []struct {
		name   string
		values models.Values
	}{
		{"absent", models.Values{"count": float64(300), "code": "ABC-1"}},
		{"empty string", models.Values{"title": "", "count": float64(300), "code": "ABC-1"}},
	}
	for _, tc := range cases {
		errs := Validate(tmpl, tc.values)
		if errs["title"] != "Title is required." {
			t.Errorf("%s: title error = %q, want %q", tc.name, errs["title"], "Title is required.")
		}
	}
}

func TestLengthBoundaries(t *testing.T) {
	tmpl := testTemplate()
	base := models.Values{"count": float64(300), "code": "ABC-1"}

	cases := []struct {
		title string
		want  string
	}{
		{"ab", "Title must be at least 3 characters."},
		{"abc", ""},
		{"abcdefghij", ""},
		{"abcdefghijk", "Title must be no more than 10 characters."},
	}
	for _, tc := range cases {
		values := base.Clone()
		values["title"] = tc.title
		errs := Validate(tmpl, values)
		if errs["title"] != tc.want {
			t.Errorf("title %q: error = %q, want %q", tc.title, errs["title"], tc.want)
		}
	}
}

func TestNumberBoundaries(t *testing.T) {
	tmpl := testTemplate()
	base := models.Values{"title": "Hello", "code": "ABC-1"}

	cases := []struct {
		count float64
		want  string
	}{
		{49, "Count must be at least 50."},
		{50, ""},
		{1500, ""},
		{1501, "Count must be no more than 1500."},
	}
	for _, tc := range cases {
		values := base.Clone()
		values["count"] = tc.count
		errs := Validate(tmpl, values)
		if errs["count"] != tc.want {
			t.Errorf("count %g: error = %q, want %q", tc.count, errs["count"], tc.want)
		}
	}
}

// A number field holding an unparsed raw string is not range-checked: the
// string is not a number, so only a required rule could flag it. The count
// field here is optional, so garbage input passes silently and renders as
// the raw text.
func TestUnparsedNumberSkipsRangeCheck(t *testing.T) {
	tmpl := testTemplate()
	errs := Validate(tmpl, models.Values{
		"title": "Hello",
		"count": "lots",
		"code":  "ABC-1",
	})
	if msg, ok := errs["count"]; ok {
		t.Errorf("unexpected count error: %q", msg)
	}
}

func TestRequiredNumberRejectsUnparsedInput(t *testing.T) {
	tmpl := &models.Template{
		ID: "t", Name: "T", Category: models.CategoryStory,
		Parameters: []models.ParameterSpec{
			{ID: "n", Label: "Number", Kind: models.KindNumber,
				Validation: &models.ValidationRule{Required: true}},
		},
	}
	errs := Validate(tmpl, models.Values{"n": "abc"})
	if errs["n"] != "Number is required." {
		t.Errorf("error = %q, want %q", errs["n"], "Number is required.")
	}
}

func TestPatternFullMatch(t *testing.T) {
	tmpl := testTemplate()
	base := models.Values{"title": "Hello", "count": float64(300)}

	cases := []struct {
		code string
		want string
	}{
		{"ABC-123", ""},
		{"abc-123", "Code is not in the correct format."},
		{"xABC-123", "Code is not in the correct format."}, // partial match is not enough
	}
	for _, tc := range cases {
		values := base.Clone()
		values["code"] = tc.code
		errs := Validate(tmpl, values)
		if errs["code"] != tc.want {
			t.Errorf("code %q: error = %q, want %q", tc.code, errs["code"], tc.want)
		}
	}
}

// Required and min-length both fail on an empty value; only the required
// message may surface.
func TestFirstFailingRuleWins(t *testing.T) {
	tmpl := testTemplate()
	errs := Validate(tmpl, models.Values{"title": "", "count": float64(300), "code": "ABC-1"})
	if errs["title"] != "Title is required." {
		t.Errorf("error = %q, want the required message", errs["title"])
	}
}

func TestParamsWithoutRulesAlwaysPass(t *testing.T) {
	tmpl := testTemplate()
	errs := Validate(tmpl, models.Values{
		"title": "Hello",
		"count": float64(300),
		"code":  "ABC-1",
		"notes": "",
	})
	if _, ok := errs["notes"]; ok {
		t.Error("notes has no rules and must never fail")
	}
}
