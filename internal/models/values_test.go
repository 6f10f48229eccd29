package models

import "testing"

func TestValuesString(t *testing.T) {
	v := Values{
		"name":  "Ada",
		"count": float64(300),
		"ratio": float64(0.5),
	}

	if got := v.String("name"); got != "Ada" {
		t.Errorf("name = %q", got)
	}
	// Whole numbers render without a trailing fraction.
	if got := v.String("count"); got != "300" {
		t.Errorf("count = %q, want 300", got)
	}
	if got := v.String("ratio"); got != "0.5" {
		t.Errorf("ratio = %q, want 0.5", got)
	}
	if got := v.String("missing"); got != "" {
		t.Errorf("missing = %q, want empty", got)
	}
}

func TestValuesNumber(t *testing.T) {
	v := Values{"count": float64(42), "raw": "not a number"}

	if n, ok := v.Number("count"); !ok || n != 42 {
		t.Errorf("count = %v %v", n, ok)
	}
	if _, ok := v.Number("raw"); ok {
		t.Error("raw string reported as number")
	}
	if _, ok := v.Number("missing"); ok {
		t.Error("missing key reported as number")
	}
}

func TestValuesClone(t *testing.T) {
	v := Values{"a": "x"}
	c := v.Clone()
	c["a"] = "y"
	if v.String("a") != "x" {
		t.Error("clone shares storage with original")
	}
}

func TestGenerationResultIsEmpty(t *testing.T) {
	cases := []struct {
		result *GenerationResult
		want   bool
	}{
		{nil, true},
		{&GenerationResult{}, true},
		{&GenerationResult{Text: "  \n\t "}, true},
		{&GenerationResult{Text: "words"}, false},
	}
	for _, tc := range cases {
		if got := tc.result.IsEmpty(); got != tc.want {
			t.Errorf("IsEmpty(%+v) = %v, want %v", tc.result, got, tc.want)
		}
	}
}
