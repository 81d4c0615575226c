package web3api

import (
	"encoding/json"
	"fmt"
	"maps"
)

// BodyParamKind says how a declared body parameter is placed into the request body.
type BodyParamKind string

const (
	// BodyParamSetBody uses the parameter value as the entire request body.
	BodyParamSetBody BodyParamKind = "set body"

	// BodyParamProperty merges the parameter as one field of an object body.
	BodyParamProperty BodyParamKind = "property"
)

// BodyParam declares one body parameter of an endpoint.
type BodyParam struct {
	Key      string        `json:"key"      yaml:"key"      validate:"required"`
	Kind     BodyParamKind `json:"type"     yaml:"type"     validate:"bodyparamkind"`
	Required bool          `json:"required" yaml:"required"`
}

// Endpoint describes one remote operation of the Web3 API.
type Endpoint struct {
	Group      string      `json:"group"                yaml:"group"                validate:"required"`
	Name       string      `json:"name"                 yaml:"name"                 validate:"required"`
	Method     string      `json:"method"               yaml:"method"               validate:"required,oneof=GET POST PUT PATCH DELETE"`
	URL        string      `json:"url"                  yaml:"url"                  validate:"required,startswith=/"`
	BodyParams []BodyParam `json:"bodyParams,omitempty" yaml:"bodyParams,omitempty" validate:"dive"`
}

// String returns "group.name".
func (e Endpoint) String() string {
	return e.Group + "." + e.Name
}

// Params is the per-call parameter bag. Keys matching URL placeholders become
// path segments, keys matching declared body params become the body, and the
// rest are sent as query parameters.
type Params map[string]any

// Clone returns a shallow copy of the bag. A nil bag clones to an empty one.
func (p Params) Clone() Params {
	clone := make(Params, len(p))
	maps.Copy(clone, p)

	return clone
}

// With returns a copy of the bag with key set to value.
func (p Params) With(key string, value any) Params {
	clone := p.Clone()
	clone[key] = value

	return clone
}

// PageInfo holds the pagination fields the API returns on list responses.
type PageInfo struct {
	Page     *int   `json:"page,omitempty"      yaml:"page,omitempty"`
	PageSize int    `json:"page_size,omitempty" yaml:"page_size,omitempty"`
	Total    int    `json:"total,omitempty"     yaml:"total,omitempty"`
	Cursor   string `json:"cursor,omitempty"    yaml:"cursor,omitempty"`
}

// Call is a request ready to be submitted to Client.Invoke. A paginated
// Result hands out a Call for the following page.
type Call struct {
	Endpoint Endpoint
	Params   Params
}

// Result is a successful API response.
type Result struct {
	PageInfo

	// Raw is the undecoded response body.
	Raw json.RawMessage
	// Fields holds the top-level members when the body is a JSON object.
	Fields map[string]any

	next *Call
}

// NewResult decodes a response body. Bodies that are not JSON objects keep
// only Raw and never carry pagination.
func NewResult(body []byte) (*Result, error) {
	result := &Result{Raw: json.RawMessage(body)}

	if len(body) == 0 {
		return result, nil
	}

	var fields map[string]any

	err := json.Unmarshal(body, &fields)
	if err != nil {
		var probe any
		if json.Unmarshal(body, &probe) != nil {
			return nil, fmt.Errorf("parsing response body: %w", err)
		}

		return result, nil
	}

	result.Fields = fields

	// Pagination fields with unexpected types are treated as absent.
	_ = json.Unmarshal(body, &result.PageInfo)

	return result, nil
}

// Decode unmarshals the raw body into v.
func (r *Result) Decode(v any) error {
	err := json.Unmarshal(r.Raw, v)
	if err != nil {
		return fmt.Errorf("decoding result: %w", err)
	}

	return nil
}

// HasNext reports whether the server signalled another page.
func (r *Result) HasNext() bool {
	return r.next != nil
}

// Next returns the call that fetches the following page.
func (r *Result) Next() (Call, bool) {
	if r.next == nil {
		return Call{}, false
	}

	return *r.next, true
}

// SetNext attaches the continuation for the following page.
func (r *Result) SetNext(call Call) {
	r.next = &call
}
