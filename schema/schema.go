// Package schema holds the ledger's schema documents as data.
//
// The two documents — the common transaction schema and the vote schema — are
// authored as YAML, embedded into the binary, and decoded once at package
// initialization. Accessors return independent deep copies so the repository
// itself stays immutable for the process lifetime; callers may serialize,
// strip, or otherwise transform their copy freely.
package schema

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed transaction.yaml
var transactionYAML []byte

//go:embed vote.yaml
var voteYAML []byte

var (
	transaction = mustLoad("transaction.yaml", transactionYAML)
	vote        = mustLoad("vote.yaml", voteYAML)
)

// Transaction returns a copy of the common transaction schema document.
func Transaction() map[string]any {
	return Clone(transaction).(map[string]any)
}

// Vote returns a copy of the vote schema document.
func Vote() map[string]any {
	return Clone(vote).(map[string]any)
}

// Clone deep-copies a schema tree (string-keyed maps, slices, scalar leaves).
func Clone(node any) any {
	switch t := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, v := range t {
			out[k] = Clone(v)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = Clone(t[i])
		}
		return out
	default:
		return node
	}
}

// mustLoad decodes an embedded document. The documents are compiled into the
// binary, so a decode failure is a programming error and panics at init.
func mustLoad(name string, raw []byte) map[string]any {
	var v any
	if err := yaml.Unmarshal(raw, &v); err != nil {
		panic(fmt.Sprintf("schema: decode %s: %v", name, err))
	}
	m := toStringMap(v)
	if m == nil {
		panic(fmt.Sprintf("schema: %s is not a mapping at the top level", name))
	}
	return m
}

// toStringMap converts YAML-decoded values (which may contain map[any]any)
// into JSON-like map[string]any recursively. Non-map roots return nil.
func toStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return toStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
