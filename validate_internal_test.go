package ledgerschema

import (
	"errors"
	"testing"

	"github.com/tidechain/ledgerschema/internal/structural"
)

type faultyEngine struct{}

func (faultyEngine) Validate(any) ([]structural.Violation, error) {
	return nil, errors.New("boom")
}

// A fault inside the structural engine must surface as the one public error
// kind, never as the raw internal failure.
func TestFacade_IsolatesEngineFaults(t *testing.T) {
	if _, _, err := engines(); err != nil {
		t.Fatalf("compiling repository schemas: %v", err)
	}
	savedTx, savedVote := txEngine, voteEngine
	txEngine, voteEngine = faultyEngine{}, faultyEngine{}
	defer func() { txEngine, voteEngine = savedTx, savedVote }()

	for name, check := range map[string]func(map[string]any) error{
		"transaction": ValidateTransaction,
		"vote":        ValidateVote,
	} {
		err := check(map[string]any{})
		sve, ok := AsSchemaValidationError(err)
		if !ok {
			t.Fatalf("%s: expected SchemaValidationError, got: %v", name, err)
		}
		if len(sve.Issues) != 1 || sve.Issues[0].Code != CodeEngineFault {
			t.Fatalf("%s: expected a single engine_fault issue, got: %v", name, sve.Issues)
		}
	}
}

func TestCodeForKeyword_DefaultsClosed(t *testing.T) {
	if got := codeForKeyword("uniqueItems"); got != CodeConstraint {
		t.Fatalf("unlisted keyword must map to the generic constraint code, got %s", got)
	}
	if got := codeForKeyword("additionalProperties"); got != CodeUnknownKey {
		t.Fatalf("additionalProperties must map to unknown_key, got %s", got)
	}
}
