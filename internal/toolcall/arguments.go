// Package toolcall pulls tool arguments out of voice-agent webhook envelopes.
package toolcall

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cast"
)

// ErrNotObject is returned by Decode when the body is valid JSON but not an object.
var ErrNotObject = errors.New("request body is not a JSON object")

// argumentsPath locates message.toolCalls[0].function.arguments.
var argumentsPath = []Step{
	Key("message"),
	Key("toolCalls"),
	Index(0),
	Key("function"),
	Key("arguments"),
}

// Arguments is the flat name -> value mapping of one tool call.
type Arguments map[string]any

// Envelope reports where the arguments were found.
type Envelope string

const (
	EnvelopeToolCall Envelope = "tool_call"
	EnvelopeRoot     Envelope = "root"
)

// Decode parses a request body and extracts its arguments. Only a body that
// is not a JSON object is an error; every other shape falls back to the root.
func Decode(body []byte) (Arguments, Envelope, error) {
	var root any
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, "", err
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return nil, "", ErrNotObject
	}
	args, envelope := Extract(obj)
	return args, envelope, nil
}

// Extract returns the nested tool-call arguments when present and non-empty,
// otherwise the root object itself.
func Extract(root map[string]any) (Arguments, Envelope) {
	if node, ok := Walk(root, argumentsPath...); ok {
		if args := asObject(node); len(args) > 0 {
			return Arguments(args), EnvelopeToolCall
		}
	}
	return Arguments(root), EnvelopeRoot
}

// asObject accepts an object or a JSON-encoded object string.
func asObject(node any) map[string]any {
	switch v := node.(type) {
	case map[string]any:
		return v
	case string:
		var obj map[string]any
		if err := json.Unmarshal([]byte(v), &obj); err != nil {
			return nil
		}
		return obj
	default:
		return nil
	}
}

// First returns the first value among keys that is present and truthy,
// rendered as a string. Empty strings, zero numbers, false, null and empty
// containers are skipped. Returns "" when none qualifies.
func (a Arguments) First(keys ...string) string {
	for _, k := range keys {
		v, ok := a[k]
		if !ok || !truthy(v) {
			continue
		}
		return stringify(v)
	}
	return ""
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	default:
		return true
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case map[string]any, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return cast.ToString(t)
	}
}
