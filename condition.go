package ledgerschema

import (
	"regexp"
	"strings"

	"github.com/tidechain/ledgerschema/i18n"
)

// FulfillmentType enumerates the crypto-condition fingerprint types that can
// appear in a condition URI. The vocabulary is a closed whitelist: tokens
// outside it parse to FulfillmentUnknown and fail every support check, so
// unvetted proof systems are rejected by construction.
type FulfillmentType int

const (
	FulfillmentUnknown FulfillmentType = iota
	FulfillmentEd25519Sha256
	FulfillmentThresholdSha256
	FulfillmentPreimageSha256
	FulfillmentPrefixSha256
	FulfillmentRSASha256
)

// ParseFulfillmentType maps a URI token onto the vocabulary. Unrecognized
// tokens yield FulfillmentUnknown.
func ParseFulfillmentType(tok string) FulfillmentType {
	switch tok {
	case "ed25519-sha-256":
		return FulfillmentEd25519Sha256
	case "threshold-sha-256":
		return FulfillmentThresholdSha256
	case "preimage-sha-256":
		return FulfillmentPreimageSha256
	case "prefix-sha-256":
		return FulfillmentPrefixSha256
	case "rsa-sha-256":
		return FulfillmentRSASha256
	default:
		return FulfillmentUnknown
	}
}

func (t FulfillmentType) String() string {
	switch t {
	case FulfillmentEd25519Sha256:
		return "ed25519-sha-256"
	case FulfillmentThresholdSha256:
		return "threshold-sha-256"
	case FulfillmentPreimageSha256:
		return "preimage-sha-256"
	case FulfillmentPrefixSha256:
		return "prefix-sha-256"
	case FulfillmentRSASha256:
		return "rsa-sha-256"
	default:
		return "unknown"
	}
}

// Supported reports whether a condition of this type may appear in a
// transaction output. Only signature-backed schemes are admitted.
func (t FulfillmentType) Supported() bool {
	switch t {
	case FulfillmentEd25519Sha256, FulfillmentThresholdSha256:
		return true
	default:
		return false
	}
}

// SupportedSubtype reports whether this type may appear in the subtypes
// clause of a threshold condition. Nested thresholds are not admitted.
func (t FulfillmentType) SupportedSubtype() bool {
	return t == FulfillmentEd25519Sha256
}

// conditionURIRE matches the whole condition URI:
//
//	ni:///sha-256;<fingerprint>?fpt=<type>&cost=<int>[&subtypes=<type-list>]
//
// The fingerprint is base64url without padding, at most 86 characters. Go
// anchors $ at end of text, so trailing content (including a newline) fails
// the match.
var conditionURIRE = regexp.MustCompile(
	`^ni:///sha-256;([A-Za-z0-9_-]{0,86})\?fpt=([a-z0-9-]+)&cost=([0-9]+)(?:&subtypes=([a-z0-9-]+(?:,[a-z0-9-]+)*))?$`)

// checkConditionURI runs the grammar and vocabulary checks for one URI,
// reporting issues at the given document path.
func checkConditionURI(path, uri string) Issues {
	m := conditionURIRE.FindStringSubmatch(uri)
	if m == nil {
		return Issues{Issue{
			Path:    path,
			Code:    CodeMalformedConditionURI,
			Message: i18n.T(CodeMalformedConditionURI, nil),
		}}
	}
	ft := ParseFulfillmentType(m[2])
	if !ft.Supported() {
		return Issues{Issue{
			Path:    path,
			Code:    CodeUnsupportedConditionType,
			Message: i18n.T(CodeUnsupportedConditionType, nil),
			Params:  map[string]any{"fpt": m[2]},
		}}
	}
	var iss Issues
	if ft == FulfillmentThresholdSha256 && m[4] != "" {
		for _, tok := range strings.Split(m[4], ",") {
			if !ParseFulfillmentType(tok).SupportedSubtype() {
				iss = AppendIssues(iss, Issue{
					Path:    path,
					Code:    CodeUnsupportedSubtype,
					Message: i18n.T(CodeUnsupportedSubtype, nil),
					Params:  map[string]any{"subtype": tok},
				})
			}
		}
	}
	return iss
}

// ValidateConditionURI checks a single condition URI against the grammar and
// the fulfillment-type whitelists. It returns nil on success and a
// *SchemaValidationError otherwise.
func ValidateConditionURI(uri string) error {
	return schemaError(checkConditionURI("/", uri))
}
