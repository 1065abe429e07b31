package tools

import (
	"encoding/json"
	"fmt"
	"math"

	"pitchdeck/internal/domain"
	models "pitchdeck/internal/domain/models/deck"
)

// Argument decoding for map[string]interface{} tool input.
// A key that is absent or JSON null counts as not provided.

func missingParam(name, kind string) error {
	return &domain.InvalidArgumentError{
		Field:   name,
		Message: fmt.Sprintf("missing required parameter: %s (%s)", name, kind),
	}
}

func wrongType(name, kind string, v interface{}) error {
	return &domain.InvalidArgumentError{
		Field:   name,
		Message: fmt.Sprintf("parameter %s must be %s, got %T", name, kind, v),
	}
}

func lookup(input map[string]interface{}, name string) (interface{}, bool) {
	v, ok := input[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func requireString(input map[string]interface{}, name string) (string, error) {
	v, ok := lookup(input, name)
	if !ok {
		return "", missingParam(name, "string")
	}
	s, ok := v.(string)
	if !ok {
		return "", wrongType(name, "a string", v)
	}
	return s, nil
}

func optionalString(input map[string]interface{}, name string) (models.Optional[string], error) {
	v, ok := lookup(input, name)
	if !ok {
		return models.None[string](), nil
	}
	s, ok := v.(string)
	if !ok {
		return models.None[string](), wrongType(name, "a string", v)
	}
	return models.Some(s), nil
}

// optionalStringPtr is optionalString for request types that use *string
func optionalStringPtr(input map[string]interface{}, name string) (*string, error) {
	opt, err := optionalString(input, name)
	if err != nil || !opt.Set {
		return nil, err
	}
	return &opt.Value, nil
}

func requireInt(input map[string]interface{}, name string) (int, error) {
	v, ok := lookup(input, name)
	if !ok {
		return 0, missingParam(name, "integer")
	}
	return toInt(name, v)
}

func optionalInt(input map[string]interface{}, name string) (models.Optional[int], error) {
	v, ok := lookup(input, name)
	if !ok {
		return models.None[int](), nil
	}
	n, err := toInt(name, v)
	if err != nil {
		return models.None[int](), err
	}
	return models.Some(n), nil
}

// toInt accepts the numeric forms JSON decoders produce. Non-integral values are rejected.
func toInt(name string, v interface{}) (int, error) {
	var f float64
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, wrongType(name, "an integer", v)
		}
		f = parsed
	default:
		return 0, wrongType(name, "an integer", v)
	}

	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, &domain.InvalidArgumentError{
			Field:   name,
			Message: fmt.Sprintf("parameter %s must be an integer, got %v", name, f),
		}
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, &domain.InvalidArgumentError{
			Field:   name,
			Message: fmt.Sprintf("parameter %s is out of range: %v", name, f),
		}
	}
	return int(f), nil
}

func optionalStringList(input map[string]interface{}, name string) (models.Optional[[]string], error) {
	v, ok := lookup(input, name)
	if !ok {
		return models.None[[]string](), nil
	}

	switch list := v.(type) {
	case []string:
		return models.Some(append([]string(nil), list...)), nil
	case []interface{}:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return models.None[[]string](), &domain.InvalidArgumentError{
					Field:   name,
					Message: fmt.Sprintf("parameter %s[%d] must be a string, got %T", name, i, item),
				}
			}
			out = append(out, s)
		}
		return models.Some(out), nil
	default:
		return models.None[[]string](), wrongType(name, "an array of strings", v)
	}
}
