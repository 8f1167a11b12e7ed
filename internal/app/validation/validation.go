// Package validation checks raw request payloads against a field schema
// before any domain logic runs.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

// Type is the expected primitive type of a field.
type Type string

const (
	String Type = "string"
	Number Type = "number"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Field declares the expectations for a single payload field.
type Field struct {
	Type     Type
	Required bool

	// Numeric constraints.
	Positive    bool // value must be > 0
	NonNegative bool // value must be >= 0
	Integer     bool // value must be a whole number

	// String constraints.
	Email bool
}

// Schema maps field names to their declarations.
type Schema map[string]Field

// Validate checks payload against the schema in a single pass. It returns
// the normalized payload (unknown fields stripped) together with every
// violation found; violations are independent of each other and reported
// all at once. A payload with violations must not reach any service.
func (s Schema) Validate(payload map[string]any) (map[string]any, []string) {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	normalized := make(map[string]any, len(s))
	var violations []string

	for _, name := range names {
		field := s[name]
		value, present := payload[name]
		if !present || value == nil {
			if field.Required {
				violations = append(violations, fmt.Sprintf("%s is required", name))
			}
			continue
		}

		switch field.Type {
		case String:
			str, ok := value.(string)
			if !ok {
				violations = append(violations, fmt.Sprintf("%s must be a string", name))
				continue
			}
			if field.Required && strings.TrimSpace(str) == "" {
				violations = append(violations, fmt.Sprintf("%s is required", name))
				continue
			}
			if field.Email && !emailPattern.MatchString(strings.TrimSpace(str)) {
				violations = append(violations, fmt.Sprintf("%s is invalid", name))
				continue
			}
			normalized[name] = str

		case Number:
			num, ok := toNumber(value)
			if !ok {
				violations = append(violations, fmt.Sprintf("%s must be a number", name))
				continue
			}
			if field.Integer && num != math.Trunc(num) {
				violations = append(violations, fmt.Sprintf("%s must be an integer", name))
				continue
			}
			if field.Positive && num <= 0 {
				violations = append(violations, fmt.Sprintf("%s must be greater than 0", name))
				continue
			}
			if field.NonNegative && num < 0 {
				violations = append(violations, fmt.Sprintf("%s must be greater than or equal to 0", name))
				continue
			}
			normalized[name] = num

		default:
			violations = append(violations, fmt.Sprintf("%s has an unsupported type", name))
		}
	}

	if len(violations) > 0 {
		return nil, violations
	}
	return normalized, nil
}

// StringValue returns the named field from a normalized payload.
func StringValue(payload map[string]any, name string) string {
	v, _ := payload[name].(string)
	return v
}

// NumberValue returns the named field from a normalized payload.
func NumberValue(payload map[string]any, name string) float64 {
	v, _ := payload[name].(float64)
	return v
}

// IntValue returns the named field from a normalized payload, truncated.
func IntValue(payload map[string]any, name string) int {
	return int(NumberValue(payload, name))
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
