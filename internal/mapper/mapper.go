// Package mapper translates heterogeneous third-party API records into the
// internal CRM schema. Source systems disagree on field names, so each target
// field resolves against an ordered list of candidate keys; adding support for
// a new source is a table edit, not new branching code.
package mapper

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// lookup returns the first present, non-nil value among the candidate keys.
func lookup(record map[string]any, keys []string) (any, bool) {
	for _, key := range keys {
		if v, ok := record[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringField(record map[string]any, keys []string) string {
	v, ok := lookup(record, keys)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	default:
		return fmt.Sprintf("%v", s)
	}
}

// numberField tolerates numeric strings; anything unparseable maps to the
// fallback rather than failing the record.
func numberField(record map[string]any, keys []string, fallback float64) float64 {
	v, ok := lookup(record, keys)
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return n
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}
	return fallback
}

func intField(record map[string]any, keys []string, fallback int) int {
	return int(numberField(record, keys, float64(fallback)))
}

func boolField(record map[string]any, keys []string) bool {
	v, ok := lookup(record, keys)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

func idField(record map[string]any, keys []string) *string {
	s := stringField(record, keys)
	if s == "" {
		return nil
	}
	return &s
}

func int64Field(record map[string]any, keys []string) *int64 {
	v, ok := lookup(record, keys)
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case float64:
		i := int64(n)
		return &i
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return &i
		}
	case string:
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return &i
		}
	}
	return nil
}

func optionalString(record map[string]any, keys []string) *string {
	s := stringField(record, keys)
	if s == "" {
		return nil
	}
	return &s
}

// timeField parses ISO-8601 timestamps and bare dates; unparseable values map
// to nil.
func timeField(record map[string]any, keys []string) *time.Time {
	s := stringField(record, keys)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
