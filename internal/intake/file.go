package intake

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFormFile reads a YAML or JSON profile document keyed by form field
// names and returns the equivalent form values.
//
//	name: Jordan
//	sport: basketball
//	studyHours: 10
//	classes:
//	  - Algebra - Mon 9:00 AM
//	focusAreas: [academic, social]
func LoadFormFile(path string) (Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}
	form, err := ParseFormDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing profile file %s: %w", path, err)
	}
	return form, nil
}

// ParseFormDocument decodes a YAML (or JSON) document into form values.
// Unknown keys are rejected so typos do not silently drop input.
func ParseFormDocument(data []byte) (Form, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	form := Form{}
	for key, value := range raw {
		field, ok := Lookup(key)
		if !ok {
			return nil, fmt.Errorf("unknown field %q", key)
		}
		values, err := documentValues(field, value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		if len(values) > 0 {
			form[field.Name] = values
		}
	}
	return form, nil
}

func documentValues(field Field, value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		if field.Widget == WidgetMultiSelect {
			return splitList(v), nil
		}
		return []string{v}, nil
	case int, int64, float64, bool:
		return []string{fmt.Sprint(v)}, nil
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			switch s := item.(type) {
			case string:
				items = append(items, s)
			case int, int64, float64, bool:
				items = append(items, fmt.Sprint(s))
			default:
				return nil, fmt.Errorf("unsupported list entry %T", item)
			}
		}
		if field.Widget == WidgetMultiSelect {
			return items, nil
		}
		if field.Widget == WidgetTextArea {
			return []string{strings.Join(items, "\n")}, nil
		}
		return nil, fmt.Errorf("expected a single value, got a list")
	default:
		return nil, fmt.Errorf("unsupported value %T", value)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
