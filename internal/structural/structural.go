// Package structural wraps the JSON Schema engine behind a small surface the
// root package consumes. The engine's own error and panic behavior never
// crosses this boundary: non-conformance comes back as Violations, anything
// else as a plain error value.
package structural

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Violation is a single structural failure, located by a JSON Pointer into
// the document and the schema keyword that rejected it.
type Violation struct {
	InstancePath string
	Keyword      string
	Message      string
}

// Engine validates documents against one compiled schema.
type Engine struct {
	compiled *jsonschema.Schema
}

// Compile builds an Engine from a schema document tree. The tree is
// serialized to JSON and handed to the draft-04 compiler under the given
// resource name.
func Compile(name string, doc map[string]any) (*Engine, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("structural: encode schema %s: %w", name, err)
	}
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft4
	if err := c.AddResource(name, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("structural: add schema %s: %w", name, err)
	}
	compiled, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("structural: compile schema %s: %w", name, err)
	}
	return &Engine{compiled: compiled}, nil
}

// Validate checks doc against the compiled schema. Violations report
// non-conformance; a non-nil error reports an engine fault (a panic or an
// unexpected error type from the underlying library) and carries no engine
// internals a caller could branch on.
func (e *Engine) Validate(doc any) (vs []Violation, err error) {
	defer func() {
		if r := recover(); r != nil {
			vs = nil
			err = fmt.Errorf("structural: engine fault: %v", r)
		}
	}()
	verr := e.compiled.Validate(doc)
	if verr == nil {
		return nil, nil
	}
	ve, ok := verr.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("structural: engine fault: %v", verr)
	}
	return flatten(ve, nil), nil
}

// flatten walks the cause tree and keeps the leaves; intermediate nodes
// restate their children without adding location detail.
func flatten(ve *jsonschema.ValidationError, acc []Violation) []Violation {
	if len(ve.Causes) == 0 {
		return append(acc, Violation{
			InstancePath: pointerOrRoot(ve.InstanceLocation),
			Keyword:      keywordOf(ve.KeywordLocation),
			Message:      ve.Message,
		})
	}
	for _, c := range ve.Causes {
		acc = flatten(c, acc)
	}
	return acc
}

func pointerOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

// keywordOf extracts the failing keyword from a keyword location such as
// /properties/outputs/items/required. The last non-numeric segment names it;
// numeric segments index into anyOf branches and the like.
func keywordOf(loc string) string {
	segs := strings.Split(loc, "/")
	for i := len(segs) - 1; i >= 0; i-- {
		s := segs[i]
		if s == "" {
			continue
		}
		if _, err := strconv.Atoi(s); err == nil {
			continue
		}
		return s
	}
	return ""
}
