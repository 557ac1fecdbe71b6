package service

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// DocumentJSON returns the JSON form invariants are evaluated against.
// Properties are named after the model fields. Empty strings, nulls and
// empty arrays and objects are removed so that exists() and empty() treat
// unset values as absent.
func DocumentJSON(doc any) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "marshal document")
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, errors.Wrap(err, "decode document")
	}
	pruned, _ := prune(tree)
	if pruned == nil {
		pruned = map[string]any{}
	}
	out, err := json.Marshal(pruned)
	return out, errors.Wrap(err, "marshal pruned document")
}

// prune removes empty values and reports whether anything is left.
func prune(v any) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case string:
		return t, t != ""
	case map[string]any:
		for k, child := range t {
			if p, ok := prune(child); ok {
				t[k] = p
			} else {
				delete(t, k)
			}
		}
		return t, len(t) > 0
	case []any:
		out := t[:0]
		for _, child := range t {
			if p, ok := prune(child); ok {
				out = append(out, p)
			}
		}
		return out, len(out) > 0
	}
	return v, true
}
