// Package interfaces defines the core types and contracts of the identity
// registry client, separating them from the packages that implement them.
//
// # Ledger Types
//
//   - Address: a Stellar account address ("G..."), the AccountIdentity of the system
//   - ContractID: a Soroban contract address ("C...")
//   - Invocation: one call to a named contract entry point with typed arguments
//
// # Identity Types
//
//   - IdentityRecord: the on-ledger identity record returned by get_identity
//   - AccessPermission: an access grant returned by check_access
//   - DocumentHash: the 32-byte document hash, rendered as 64 lowercase hex characters
//
// # Endpoint Contract
//
// Endpoint is the set of RPC primitives the transaction pipeline consumes:
//
//	type Endpoint interface {
//	    GetAccount(ctx context.Context, address Address) (*AccountInfo, error)
//	    SimulateTransaction(ctx context.Context, envelopeXDR string) (*SimulateResponse, error)
//	    SendTransaction(ctx context.Context, envelopeXDR string) (*SendResponse, error)
//	    GetTransaction(ctx context.Context, hash string) (*TransactionResponse, error)
//	}
//
// Implementations must be stateless and safe for concurrent use; a single
// Endpoint is shared by every pipeline invocation.
//
// # Error Types
//
// The pipeline reports failures with the typed errors in errors.go so that
// callers can separate "definitely failed" from "unknown, check
// independently":
//
//   - AccountNotFoundError: source account has no ledger entry (fund it first)
//   - SimulationError: the contract would reject the call
//   - SigningError: key material is malformed or does not match the source
//   - SubmissionError: the ledger rejected the envelope at submit time
//   - DecodeError: a response could not be decoded; DecodeKindSuccessPayload marks
//     the ambiguous case where the ledger reported success
package interfaces
