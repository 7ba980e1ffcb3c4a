// Package pipeline implements the transaction lifecycle for Soroban contract
// invocations.
//
// # Write path
//
//	Builder -> Simulator.Prepare -> Signer -> Submitter -> Poller -> Classify
//
// Pipeline.Invoke runs the whole chain and returns an Outcome. Every error
// raised on the way is passed through Classify, which turns the one known
// decode ambiguity (a SUCCESS status whose payload could not be decoded) into
// OutcomeAmbiguousSuccess and returns every other error unchanged.
//
// # Read path
//
//	Builder -> Simulator.Simulate -> return value
//
// QueryExecutor never signs or submits. Without a caller-supplied source it
// uses a throwaway account and skips the account lookup.
//
// # Outcomes
//
// Callers separate outcomes by Outcome.Certainty:
//
//   - CertaintySucceeded: OutcomeSuccess
//   - CertaintyFailed: OutcomeFailed
//   - CertaintyUnknown: OutcomeTimeout, OutcomeAmbiguousSuccess; check the
//     hash independently before retrying
//
// A Timeout is an Outcome, not an error: the transaction may still commit.
//
// # Concurrency
//
// Components hold no per-call state. The only object shared between
// invocations is the interfaces.Endpoint.
package pipeline
