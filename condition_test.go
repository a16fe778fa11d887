package ledgerschema_test

import (
	"strings"
	"testing"

	ledgerschema "github.com/tidechain/ledgerschema"
)

func TestParseFulfillmentType(t *testing.T) {
	cases := []struct {
		tok  string
		want ledgerschema.FulfillmentType
	}{
		{"ed25519-sha-256", ledgerschema.FulfillmentEd25519Sha256},
		{"threshold-sha-256", ledgerschema.FulfillmentThresholdSha256},
		{"preimage-sha-256", ledgerschema.FulfillmentPreimageSha256},
		{"prefix-sha-256", ledgerschema.FulfillmentPrefixSha256},
		{"rsa-sha-256", ledgerschema.FulfillmentRSASha256},
		{"", ledgerschema.FulfillmentUnknown},
		{"ED25519-SHA-256", ledgerschema.FulfillmentUnknown},
		{"ed25519-sha-512", ledgerschema.FulfillmentUnknown},
	}
	for _, c := range cases {
		if got := ledgerschema.ParseFulfillmentType(c.tok); got != c.want {
			t.Errorf("ParseFulfillmentType(%q) = %v, want %v", c.tok, got, c.want)
		}
	}
}

func TestFulfillmentType_Whitelists(t *testing.T) {
	if !ledgerschema.FulfillmentEd25519Sha256.Supported() || !ledgerschema.FulfillmentThresholdSha256.Supported() {
		t.Fatalf("signature-backed types must be supported")
	}
	for _, ft := range []ledgerschema.FulfillmentType{
		ledgerschema.FulfillmentPreimageSha256,
		ledgerschema.FulfillmentPrefixSha256,
		ledgerschema.FulfillmentRSASha256,
		ledgerschema.FulfillmentUnknown,
	} {
		if ft.Supported() {
			t.Errorf("%v must not be supported", ft)
		}
		if ft.SupportedSubtype() {
			t.Errorf("%v must not be a supported subtype", ft)
		}
	}
	if ledgerschema.FulfillmentThresholdSha256.SupportedSubtype() {
		t.Fatalf("nested thresholds are unsupported")
	}
	if !ledgerschema.FulfillmentEd25519Sha256.SupportedSubtype() {
		t.Fatalf("ed25519 must be a supported subtype")
	}
}

func TestValidateConditionURI_Grammar(t *testing.T) {
	longFP := strings.Repeat("a", 86)
	tooLongFP := strings.Repeat("a", 87)

	cases := []struct {
		name     string
		uri      string
		wantCode string // "" means the URI must pass
	}{
		{"ed25519", "ni:///sha-256;abc?fpt=ed25519-sha-256&cost=131072", ""},
		{"threshold", "ni:///sha-256;abc?fpt=threshold-sha-256&cost=2048", ""},
		{"empty fingerprint", "ni:///sha-256;?fpt=ed25519-sha-256&cost=0", ""},
		{"max fingerprint", "ni:///sha-256;" + longFP + "?fpt=ed25519-sha-256&cost=9", ""},
		{"threshold with subtype", "ni:///sha-256;abc?fpt=threshold-sha-256&cost=9&subtypes=ed25519-sha-256", ""},

		{"trailing newline", "ni:///sha-256;abc?fpt=ed25519-sha-256&cost=1\n", ledgerschema.CodeMalformedConditionURI},
		{"trailing garbage", "ni:///sha-256;abc?fpt=ed25519-sha-256&cost=1 ", ledgerschema.CodeMalformedConditionURI},
		{"non-digit cost", "ni:///sha-256;abc?fpt=ed25519-sha-256&cost=12a", ledgerschema.CodeMalformedConditionURI},
		{"missing cost", "ni:///sha-256;abc?fpt=ed25519-sha-256", ledgerschema.CodeMalformedConditionURI},
		{"fingerprint too long", "ni:///sha-256;" + tooLongFP + "?fpt=ed25519-sha-256&cost=1", ledgerschema.CodeMalformedConditionURI},
		{"fingerprint bad charset", "ni:///sha-256;ab+c?fpt=ed25519-sha-256&cost=1", ledgerschema.CodeMalformedConditionURI},
		{"uppercase fpt", "ni:///sha-256;abc?fpt=ED25519-SHA-256&cost=1", ledgerschema.CodeMalformedConditionURI},
		{"wrong scheme", "ni:///sha-512;abc?fpt=ed25519-sha-256&cost=1", ledgerschema.CodeMalformedConditionURI},

		{"preimage", "ni:///sha-256;abc?fpt=preimage-sha-256&cost=1", ledgerschema.CodeUnsupportedConditionType},
		{"prefix", "ni:///sha-256;abc?fpt=prefix-sha-256&cost=1", ledgerschema.CodeUnsupportedConditionType},
		{"rsa", "ni:///sha-256;abc?fpt=rsa-sha-256&cost=1", ledgerschema.CodeUnsupportedConditionType},
		{"unknown fpt", "ni:///sha-256;abc?fpt=foo-bar&cost=1", ledgerschema.CodeUnsupportedConditionType},

		{"rsa subtype", "ni:///sha-256;abc?fpt=threshold-sha-256&cost=1&subtypes=rsa-sha-256", ledgerschema.CodeUnsupportedSubtype},
		{"nested threshold subtype", "ni:///sha-256;abc?fpt=threshold-sha-256&cost=1&subtypes=threshold-sha-256", ledgerschema.CodeUnsupportedSubtype},
		{"unknown subtype", "ni:///sha-256;abc?fpt=threshold-sha-256&cost=1&subtypes=foo-bar", ledgerschema.CodeUnsupportedSubtype},
		{"mixed subtype list", "ni:///sha-256;abc?fpt=threshold-sha-256&cost=1&subtypes=ed25519-sha-256,rsa-sha-256", ledgerschema.CodeUnsupportedSubtype},
	}

	for _, c := range cases {
		err := ledgerschema.ValidateConditionURI(c.uri)
		if c.wantCode == "" {
			if err != nil {
				t.Errorf("%s: expected pass, got: %v", c.name, err)
			}
			continue
		}
		iss, ok := ledgerschema.AsIssues(err)
		if !ok {
			t.Errorf("%s: expected rejection, got: %v", c.name, err)
			continue
		}
		if iss[0].Code != c.wantCode {
			t.Errorf("%s: code = %s, want %s", c.name, iss[0].Code, c.wantCode)
		}
	}
}
