package ledgerschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType = "invalid_type"
	CodeRequired    = "required"
	CodeUnknownKey  = "unknown_key"
	CodeInvalidEnum = "invalid_enum"
	CodePattern     = "pattern"
	CodeTooSmall    = "too_small"
	CodeTooBig      = "too_big"
	CodeAnyOf       = "any_of"
	CodeConstraint  = "constraint"
	CodeParseError  = "parse_error"
	// Condition-URI grammar codes
	CodeMalformedConditionURI    = "malformed_condition_uri"
	CodeUnsupportedConditionType = "unsupported_condition_type"
	CodeUnsupportedSubtype       = "unsupported_subtype"
	// Internal engine faults re-signaled through the standard taxonomy.
	CodeEngineFault = "engine_fault"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /outputs/0/condition/uri).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, offending tokens, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"fpt":"rsa-sha-256"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_key at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally. It sees
// through SchemaValidationError.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// SchemaValidationError is the single error kind surfaced by every validation
// entry point. Structural non-conformance, an ungrammatical condition URI, an
// unsupported fulfillment type or subtype, and internal engine faults all
// collapse into it; the carried Issues differentiate the cause for humans and
// logs only. Callers must not branch on issue messages.
type SchemaValidationError struct {
	Issues Issues
}

func (e *SchemaValidationError) Error() string {
	return "ledgerschema: " + e.Issues.Error()
}

// Unwrap exposes the Issues so errors.As keeps working on the wrapped form.
func (e *SchemaValidationError) Unwrap() error { return e.Issues }

// AsSchemaValidationError extracts the validation error kind from err.
func AsSchemaValidationError(err error) (*SchemaValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var sve *SchemaValidationError
	if errors.As(err, &sve) {
		return sve, true
	}
	return nil, false
}

// schemaError wraps accumulated issues into the public error kind. A nil or
// empty slice means the document passed.
func schemaError(iss Issues) error {
	if len(iss) == 0 {
		return nil
	}
	return &SchemaValidationError{Issues: iss}
}
