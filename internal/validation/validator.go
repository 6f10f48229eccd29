// Package validation checks user-supplied parameter values against the
// declarative rules on each ParameterSpec. Validation is data-driven: new
// templates need no new validation code, only new rule combinations.
package validation

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/musekit/muse/internal/models"
)

var (
	patternMu    sync.Mutex
	patternCache = make(map[string]*regexp.Regexp)
)

// Validate checks every parameter of the template against its rules, in
// declared order. Each field gets at most one message: the first failing
// rule wins. The returned map is empty (non-nil) when everything passes.
func Validate(tmpl *models.Template, values models.Values) models.FieldErrors {
	errs := make(models.FieldErrors)
	for _, param := range tmpl.Parameters {
		if msg := validateParam(param, values); msg != "" {
			errs[param.ID] = msg
		}
	}
	return errs
}

// validateParam returns the first failing rule's message for one parameter,
// or "" when the value passes.
func validateParam(param models.ParameterSpec, values models.Values) string {
	rule := param.Rule()
	value, present := values[param.ID]

	str, isStr := value.(string)
	numValue, isNum := value.(float64)

	// Required: absent, empty string, or a number field whose raw input did
	// not parse.
	missing := !present || (isStr && str == "") ||
		(param.Kind == models.KindNumber && !isNum)
	if rule.Required && missing {
		return fmt.Sprintf("%s is required.", param.Label)
	}

	switch param.Kind {
	case models.KindShortText, models.KindLongText:
		if rule.MinLength > 0 && len(str) < rule.MinLength {
			return fmt.Sprintf("%s must be at least %d characters.", param.Label, rule.MinLength)
		}
		if rule.MaxLength > 0 && len(str) > rule.MaxLength {
			return fmt.Sprintf("%s must be no more than %d characters.", param.Label, rule.MaxLength)
		}

	case models.KindNumber:
		// An unparsed number field is never range-checked; required (above)
		// is the only rule that can flag it.
		if isNum {
			if rule.Min != nil && numValue < *rule.Min {
				return fmt.Sprintf("%s must be at least %g.", param.Label, *rule.Min)
			}
			if rule.Max != nil && numValue > *rule.Max {
				return fmt.Sprintf("%s must be no more than %g.", param.Label, *rule.Max)
			}
		}
	}

	if rule.Pattern != "" && !matchPattern(rule.Pattern, values.String(param.ID)) {
		return fmt.Sprintf("%s is not in the correct format.", param.Label)
	}

	return ""
}

// matchPattern reports whether the stringified value fully matches the
// pattern. Compiled patterns are cached; an uncompilable pattern is treated
// as a mismatch.
func matchPattern(pattern, value string) bool {
	patternMu.Lock()
	re, ok := patternCache[pattern]
	if !ok {
		var err error
		re, err = regexp.Compile("^(?:" + pattern + ")$")
		if err != nil {
			re = nil
		}
		patternCache[pattern] = re
	}
	patternMu.Unlock()

	if re == nil {
		return false
	}
	return re.MatchString(value)
}
