package web3api

import (
	"fmt"
	"maps"
)

// BuildBody extracts the declared body params from params and returns the
// body with the parameters that were not consumed. params itself is never
// modified.
//
// The body is nil when nothing is declared or params is empty. Otherwise it
// starts as an empty object: a SetBody param replaces it wholesale (the last
// one wins), a Property param sets one field on it.
func BuildBody(params Params, declared []BodyParam) (any, Params, error) {
	if len(declared) == 0 || len(params) == 0 {
		return nil, params, nil
	}

	remaining := params.Clone()

	var body any = map[string]any{}

	for _, param := range declared {
		value, ok := remaining[param.Key]
		if !ok {
			if param.Required {
				return nil, nil, &MissingRequiredFieldError{Key: param.Key}
			}

			continue
		}

		if param.Kind == BodyParamSetBody {
			body = value
		} else {
			object, isObject := asObject(body)
			if !isObject {
				return nil, nil, fmt.Errorf("%w: %s", ErrBodyNotObject, param.Key)
			}

			// Copy so a map handed in through a SetBody param stays untouched.
			object = maps.Clone(object)
			object[param.Key] = value
			body = object
		}

		delete(remaining, param.Key)
	}

	return body, remaining, nil
}

func asObject(body any) (map[string]any, bool) {
	switch v := body.(type) {
	case map[string]any:
		return v, true
	case Params:
		return map[string]any(v), true
	default:
		return nil, false
	}
}
