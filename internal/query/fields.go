// Package query implements the shared request-parsing layer: typed field
// parsers for JSON bodies, the pagination/filter query parser, and the
// pagination metadata calculator.
package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ValidationError reports a malformed or missing input value. Field names
// the offending input so handlers can surface it verbatim as a 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func failf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: field + " " + fmt.Sprintf(format, args...)}
}

func normalizeString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// coerceNumber accepts JSON numbers and numeric-looking strings. NaN is
// returned for anything else, including empty strings.
func coerceNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return math.NaN()
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return parsed
	}
	return math.NaN()
}

func absent(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok && s == "" {
		return true
	}
	return false
}

// RequireString trims and returns v; empty or non-string input fails.
func RequireString(v any, field string) (string, error) {
	normalized := normalizeString(v)
	if normalized == "" {
		return "", failf(field, "is required")
	}
	return normalized, nil
}

// OptionalString trims and returns v, or "" when the value is absent or
// not a string. Absence is not an error.
func OptionalString(v any) string {
	return normalizeString(v)
}

// RequireNumber coerces v into a finite float64.
func RequireNumber(v any, field string) (float64, error) {
	parsed := coerceNumber(v)
	if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, failf(field, "must be a valid number")
	}
	return parsed, nil
}

// RequirePositiveNumber is RequireNumber restricted to values > 0.
func RequirePositiveNumber(v any, field string) (float64, error) {
	parsed, err := RequireNumber(v, field)
	if err != nil {
		return 0, err
	}
	if parsed <= 0 {
		return 0, failf(field, "must be greater than zero")
	}
	return parsed, nil
}

// OptionalPositiveNumber returns nil when v is absent, otherwise applies
// RequirePositiveNumber.
func OptionalPositiveNumber(v any, field string) (*float64, error) {
	if absent(v) {
		return nil, nil
	}
	parsed, err := RequirePositiveNumber(v, field)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// RequireNumberInRange coerces v and enforces min <= v <= max.
func RequireNumberInRange(v any, field string, min, max float64) (float64, error) {
	parsed, err := RequireNumber(v, field)
	if err != nil {
		return 0, err
	}
	if parsed < min || parsed > max {
		return 0, failf(field, "must be between %v and %v", min, max)
	}
	return parsed, nil
}

// OptionalNumberInRange returns nil when v is absent, otherwise applies
// RequireNumberInRange.
func OptionalNumberInRange(v any, field string, min, max float64) (*float64, error) {
	if absent(v) {
		return nil, nil
	}
	parsed, err := RequireNumberInRange(v, field, min, max)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// RequireEnum fails unless the trimmed value is exactly one of allowed.
func RequireEnum(v any, field string, allowed []string) (string, error) {
	normalized := normalizeString(v)
	for _, a := range allowed {
		if normalized == a {
			return normalized, nil
		}
	}
	return "", failf(field, "must be one of: %s", strings.Join(allowed, ", "))
}

// OptionalEnum returns "" when v is absent, otherwise applies RequireEnum.
func OptionalEnum(v any, field string, allowed []string) (string, error) {
	if absent(v) {
		return "", nil
	}
	return RequireEnum(v, field, allowed)
}

// dateLayouts are tried in order, most specific first. Clients send
// ISO-8601 timestamps or bare calendar dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(v any) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		return t.UTC(), true
	}
	s := normalizeString(v)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// RequireDate fails when v is missing or does not parse as a calendar date.
func RequireDate(v any, field string) (time.Time, error) {
	if v == nil {
		return time.Time{}, failf(field, "is required")
	}
	t, ok := parseDate(v)
	if !ok {
		return time.Time{}, failf(field, "must be a valid date")
	}
	return t, nil
}

// OptionalDate returns nil when v is absent, otherwise applies RequireDate.
func OptionalDate(v any, field string) (*time.Time, error) {
	if absent(v) {
		return nil, nil
	}
	t, err := RequireDate(v, field)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// OptionalBool accepts booleans and the literals "true"/"false" in any
// case. Absent input yields nil; anything else fails.
func OptionalBool(v any, field string) (*bool, error) {
	if absent(v) {
		return nil, nil
	}
	if b, ok := v.(bool); ok {
		return &b, nil
	}
	if s, ok := v.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true":
			b := true
			return &b, nil
		case "false":
			b := false
			return &b, nil
		}
	}
	return nil, failf(field, "must be true or false")
}

// Tags accepts a string slice, a decoded-JSON []any, or a comma-separated
// string. Entries are trimmed and empties dropped; nil means absent.
func Tags(v any) []string {
	var raw []string
	switch t := v.(type) {
	case []string:
		raw = t
	case []any:
		for _, item := range t {
			raw = append(raw, fmt.Sprint(item))
		}
	case string:
		raw = strings.Split(t, ",")
	default:
		return nil
	}
	filtered := make([]string, 0, len(raw))
	for _, item := range raw {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			filtered = append(filtered, trimmed)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	return filtered
}
