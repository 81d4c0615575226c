package web3api

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// Placeholders returns the names of the ":name" path segments of template,
// left to right.
func Placeholders(template string) []string {
	var names []string

	for _, segment := range strings.Split(template, "/") {
		if len(segment) > 1 && strings.HasPrefix(segment, ":") {
			names = append(names, segment[1:])
		}
	}

	return names
}

// ResolveURL substitutes the ":name" placeholders of template with values from
// params and returns the resulting path together with the parameters that were
// not consumed. params itself is never modified.
//
// A template without placeholders, or an empty bag, is returned as is. A
// placeholder whose value is missing or falsy fails with MissingParameterError
// before anything is substituted.
func ResolveURL(template string, params Params) (string, Params, error) {
	if len(params) == 0 {
		return template, params, nil
	}

	names := Placeholders(template)
	if len(names) == 0 {
		return template, params, nil
	}

	segments := strings.Split(template, "/")
	remaining := params.Clone()

	for _, name := range names {
		value, ok := remaining[name]
		if !ok || isFalsy(value) {
			return "", nil, &MissingParameterError{Name: name}
		}

		// Only template segments are matched, never substituted values.
		for i, segment := range segments {
			if segment == ":"+name {
				segments[i] = url.PathEscape(fmt.Sprint(value))

				break
			}
		}

		delete(remaining, name)
	}

	return strings.Join(segments, "/"), remaining, nil
}

// isFalsy reports whether value counts as "not provided" for a path segment:
// nil, the empty string, false, or a numeric zero.
func isFalsy(value any) bool {
	if value == nil {
		return true
	}

	if n, ok := value.(json.Number); ok {
		f, err := n.Float64()

		return err == nil && f == 0
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
