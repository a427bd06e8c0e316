package domain

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// StudentContext holds facts about the student (residency, GPA, intended major).
// It is owned by the session and passed by reference into every routing call.
// Neither the router nor specialists modify it.
type StudentContext map[string]any

// Well-known context keys read by specialists.
const (
	ContextResidency = "residency"
	ContextGPA       = "gpa"
	ContextMajor     = "major"
	ContextWorkHours = "work_hours"
)

// NewStudentContext creates an empty context.
func NewStudentContext() StudentContext {
	return make(StudentContext)
}

// Get retrieves a value. Safe on a nil context.
func (c StudentContext) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c[key]
	return v, ok
}

// String retrieves a value formatted as text.
// Returns empty string if the key doesn't exist.
func (c StudentContext) String(key string) string {
	v, ok := c.Get(key)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Clone returns a shallow copy.
func (c StudentContext) Clone() StudentContext {
	out := make(StudentContext, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Keys returns the keys in sorted order.
func (c StudentContext) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseAssignment parses "key=value" as typed on the command line or in chat.
// Usable numeric values become float64 and true/false become bool; anything
// else, including NaN, Inf and huge numbers, stays a trimmed string.
func ParseAssignment(s string) (string, any, error) {
	key, raw, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", nil, fmt.Errorf("expected key=value, got %q: %w", s, ErrInvalidInput)
	}
	return key, parseValue(strings.TrimSpace(raw)), nil
}

// MaxContextNumber bounds the magnitude of numeric student facts.
const MaxContextNumber = 1e6

// UsableNumber reports whether f is finite and within MaxContextNumber.
func UsableNumber(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && math.Abs(f) <= MaxContextNumber
}

func parseValue(raw string) any {
	if f, err := strconv.ParseFloat(raw, 64); err == nil && UsableNumber(f) {
		return f
	}
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}
	return raw
}
