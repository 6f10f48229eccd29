package models

import (
	"sort"
	"strconv"
)

// Values maps parameter ids to their current values. Entries are either
// string or float64; a number field whose raw input failed to parse keeps
// the raw string so validation can flag it.
type Values map[string]interface{}

// String returns the stringified value for a parameter id. Numbers are
// formatted without a trailing fraction when they are whole.
func (v Values) String(id string) string {
	val, ok := v[id]
	if !ok {
		return ""
	}
	switch x := val.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return ""
	}
}

// Number returns the numeric value for a parameter id and whether one is set.
func (v Values) Number(id string) (float64, bool) {
	n, ok := v[id].(float64)
	return n, ok
}

// Clone returns a shallow copy of the value map.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// FieldErrors maps parameter ids to human-readable error messages. Keys are
// always a subset of the selected template's parameter ids.
type FieldErrors map[string]string

// SortedFields returns the field ids in lexical order, for stable output.
func (e FieldErrors) SortedFields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
