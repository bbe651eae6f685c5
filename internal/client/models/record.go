// Package models holds the client-side data shapes: dynamic entity records,
// the per-entity definitions the admin console works with, and image files
// selected for upload.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Record is one entity as returned by the backend, or a draft being edited.
type Record map[string]any

// Clone returns a deep copy of r. Nested maps and slices are copied, so
// mutating the clone never touches r.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return map[string]any(Record(t).Clone())
	case Record:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

// ID returns the "id" field as text and whether it is set.
func (r Record) ID() (string, bool) {
	v, ok := r["id"]
	if !ok || v == nil {
		return "", false
	}
	s := Text(v)
	return s, s != ""
}

// Text renders a field value for display.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// IsBlank reports whether the field is missing, null or a whitespace-only
// string. Numbers and booleans are never blank.
func (r Record) IsBlank(field string) bool {
	v, ok := r[field]
	if !ok || v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
