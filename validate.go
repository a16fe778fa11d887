package ledgerschema

import (
	"fmt"
	"sync"

	"github.com/tidechain/ledgerschema/i18n"
	"github.com/tidechain/ledgerschema/internal/structural"
	"github.com/tidechain/ledgerschema/schema"
)

// structuralEngine is the seam between the facade and the compiled engine.
// Tests substitute a faulting implementation to prove fault isolation.
type structuralEngine interface {
	Validate(doc any) ([]structural.Violation, error)
}

var (
	compileOnce sync.Once
	txEngine    structuralEngine
	voteEngine  structuralEngine
	compileErr  error
)

// engines compiles the repository schemas on first use. Compilation runs at
// most once; concurrent callers block until it completes and then share the
// immutable engines.
func engines() (tx, vote structuralEngine, err error) {
	compileOnce.Do(func() {
		var t, v *structural.Engine
		t, compileErr = structural.Compile("transaction.schema.json", schema.Transaction())
		if compileErr != nil {
			return
		}
		v, compileErr = structural.Compile("vote.schema.json", schema.Vote())
		if compileErr != nil {
			return
		}
		txEngine, voteEngine = t, v
	})
	return txEngine, voteEngine, compileErr
}

// ValidateTransaction reports whether doc is an admissible transaction.
// Structural conformance is checked first; when that passes, the condition
// URI of every output is checked against the condition grammar. The document
// is never mutated, and a failure of either layer is returned as a
// *SchemaValidationError.
func ValidateTransaction(doc map[string]any) error {
	tx, _, err := engines()
	if err != nil {
		return schemaError(Issues{engineFaultIssue(err)})
	}
	if err := runStructural(tx, doc); err != nil {
		return err
	}
	return schemaError(checkOutputConditions(doc))
}

// ValidateVote reports whether doc is an admissible vote.
func ValidateVote(doc map[string]any) error {
	_, vote, err := engines()
	if err != nil {
		return schemaError(Issues{engineFaultIssue(err)})
	}
	return runStructural(vote, doc)
}

func runStructural(e structuralEngine, doc any) error {
	vs, err := e.Validate(doc)
	if err != nil {
		return schemaError(Issues{engineFaultIssue(err)})
	}
	var iss Issues
	for _, v := range vs {
		code := codeForKeyword(v.Keyword)
		iss = AppendIssues(iss, Issue{
			Path:    v.InstancePath,
			Code:    code,
			Message: i18n.T(code, nil),
			Hint:    v.Message,
		})
	}
	return schemaError(iss)
}

// checkOutputConditions runs the condition-URI grammar over every output.
// Structural validation has already pinned the shape, so missing pieces are
// simply skipped rather than re-reported.
func checkOutputConditions(doc map[string]any) Issues {
	outs, _ := doc["outputs"].([]any)
	var iss Issues
	for i, o := range outs {
		om, ok := o.(map[string]any)
		if !ok {
			continue
		}
		cm, ok := om["condition"].(map[string]any)
		if !ok {
			continue
		}
		uri, ok := cm["uri"].(string)
		if !ok {
			continue
		}
		path := fmt.Sprintf("/outputs/%d/condition/uri", i)
		iss = AppendIssues(iss, checkConditionURI(path, uri)...)
	}
	return iss
}

func engineFaultIssue(err error) Issue {
	return Issue{
		Path:    "/",
		Code:    CodeEngineFault,
		Message: i18n.T(CodeEngineFault, nil),
		Cause:   err,
	}
}

// codeForKeyword maps schema keywords onto the issue taxonomy. Unlisted
// keywords collapse to the generic constraint code.
func codeForKeyword(kw string) string {
	switch kw {
	case "required":
		return CodeRequired
	case "additionalProperties":
		return CodeUnknownKey
	case "type":
		return CodeInvalidType
	case "enum":
		return CodeInvalidEnum
	case "pattern":
		return CodePattern
	case "minimum", "minItems", "minLength", "minProperties":
		return CodeTooSmall
	case "maximum", "maxItems", "maxLength", "maxProperties":
		return CodeTooBig
	case "anyOf", "oneOf":
		return CodeAnyOf
	default:
		return CodeConstraint
	}
}
