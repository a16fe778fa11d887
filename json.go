package ledgerschema

import (
	"bytes"

	json "github.com/goccy/go-json"

	"github.com/tidechain/ledgerschema/i18n"
)

// ValidateTransactionJSON decodes raw JSON and validates it as a transaction.
// Malformed bytes fail with the same error kind as any other rejection.
func ValidateTransactionJSON(data []byte) error {
	doc, iss := decodeDocument(data)
	if iss != nil {
		return schemaError(iss)
	}
	return ValidateTransaction(doc)
}

// ValidateVoteJSON decodes raw JSON and validates it as a vote.
func ValidateVoteJSON(data []byte) error {
	doc, iss := decodeDocument(data)
	if iss != nil {
		return schemaError(iss)
	}
	return ValidateVote(doc)
}

// decodeDocument parses candidate bytes into a string-keyed map. Numbers are
// kept as json.Number so integer constraints see exact values.
func decodeDocument(data []byte) (map[string]any, Issues) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, Issues{Issue{
			Path:    "/",
			Code:    CodeParseError,
			Message: i18n.T(CodeParseError, nil),
			Cause:   err,
		}}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, Issues{Issue{
			Path:    "/",
			Code:    CodeInvalidType,
			Message: i18n.T(CodeInvalidType, nil),
			Hint:    "expected object",
		}}
	}
	return m, nil
}
