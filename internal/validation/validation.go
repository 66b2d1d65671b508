package validation

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/mohammadpnp/contact-book/internal/domain/failure"
)

// Kind narrows the accepted type of a field value.
type Kind uint8

const (
	String Kind = iota
	Int
)

// Rule is the constraint set for a single field. For String fields Min and
// Max bound the length; a present value must be at least one character even
// when Min is zero. For Int fields Min and Max bound the value itself and a
// present value must be positive.
type Rule struct {
	Required bool
	Min      int
	Max      int
	Kind     Kind
}

// Schema is a named per-field constraint table, one per operation.
type Schema struct {
	Name   string
	Fields map[string]Rule
}

// Values is a candidate payload keyed by field name. Callers omit keys for
// fields that were absent from the request.
type Values map[string]any

// SetOptional records an optional string field only when it was present.
func (v Values) SetOptional(name string, p *string) {
	if p != nil {
		v[name] = *p
	}
}

var errNotInteger = errors.New("not an integer")

// Apply evaluates the schema against values and returns a normalized copy
// with Int fields coerced to int64. Every violation is collected before
// failing, so the caller sees one aggregate Validation failure and no
// partial result.
func (s Schema) Apply(values Values) (Values, error) {
	names := make([]string, 0, len(s.Fields))
	for name := range s.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	normalized := make(Values, len(values))
	var violations []string

	for _, name := range names {
		rule := s.Fields[name]

		value, ok := values[name]
		if !ok {
			if rule.Required {
				violations = append(violations, name+" is required")
			}
			continue
		}

		switch rule.Kind {
		case Int:
			n, err := toInt(value)
			if err != nil {
				violations = append(violations, name+" must be a number")
				continue
			}
			min := rule.Min
			if min < 1 {
				min = 1
			}
			if n < int64(min) {
				violations = append(violations, fmt.Sprintf("%s must be at least %d", name, min))
				continue
			}
			if rule.Max > 0 && n > int64(rule.Max) {
				violations = append(violations, fmt.Sprintf("%s must be at most %d", name, rule.Max))
				continue
			}
			normalized[name] = n
		default:
			str, isString := value.(string)
			if !isString {
				violations = append(violations, name+" must be a string")
				continue
			}
			min := rule.Min
			if min < 1 {
				min = 1
			}
			if len(str) < min {
				violations = append(violations, fmt.Sprintf("%s must be at least %d characters", name, min))
				continue
			}
			if rule.Max > 0 && len(str) > rule.Max {
				violations = append(violations, fmt.Sprintf("%s must be at most %d characters", name, rule.Max))
				continue
			}
			normalized[name] = str
		}
	}

	if len(violations) > 0 {
		detail := s.Name + ": " + strings.Join(violations, "; ")
		return nil, failure.Detailed(failure.Validation, "Validation Error", detail)
	}

	return normalized, nil
}

// toInt narrows the representations an identifier or page number can arrive
// in: native ints from parsed paths, json numbers from bodies, and numeric
// strings from query parameters.
func toInt(value any) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, errNotInteger
		}
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	}
	return 0, errNotInteger
}
