package ledgerschema

// Package ledgerschema decides whether untrusted, deserialized transaction
// and vote documents are admissible to the ledger. Two layers gate every
// document:
//
//   - Structural validation against closed-world schema documents (every
//     object node forbids undeclared properties), run by a standard JSON
//     Schema engine.
//   - A grammar check over the crypto-condition URI embedded in each
//     transaction output, enforcing fulfillment-type and subtype whitelists
//     that schema languages cannot express.
//
// A stable error model via Issues (JSON Pointer, code, message) backs the
// single public error kind, SchemaValidationError. Engine internals never
// leak: faults inside the structural engine are re-signaled as the same
// kind.
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Schema documents live as data under schema/, and the CLI under cmd/ledgerschema.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	if err := ledgerschema.ValidateTransaction(doc); err != nil {
//		iss, _ := ledgerschema.AsIssues(err)
//		...
//	}
//
//	if err := ledgerschema.ValidateVoteJSON(raw); err != nil { ... }
