package interfaces

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadySubmitted is returned when a signed transaction is submitted twice.
	ErrAlreadySubmitted = errors.New("transaction already submitted")

	// ErrIdentityNotFound is returned when the registry has no record for an id.
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrAccessNotFound is returned when no access grant exists.
	ErrAccessNotFound = errors.New("access permission not found")
)

// AccountNotFoundError is returned when the source account has no ledger entry.
// The account must be funded before it can submit transactions.
type AccountNotFoundError struct {
	Address Address
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account %s not found on ledger: fund this account before submitting", e.Address)
}

// SimulationError is returned when the contract would reject an invocation.
type SimulationError struct {
	Function   string
	Diagnostic string
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("simulation of %s failed: %s", e.Function, e.Diagnostic)
}

// SigningError is returned when key material is malformed or does not match
// the transaction source.
type SigningError struct {
	Reason string
	Err    error
}

func (e *SigningError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("signing failed: %s: %v", e.Reason, e.Err)
	}
	return "signing failed: " + e.Reason
}

func (e *SigningError) Unwrap() error {
	return e.Err
}

// SubmissionError is returned when the ledger rejects a transaction at submit
// time. The transaction must be rebuilt with a fresh sequence to retry.
type SubmissionError struct {
	Hash       string
	Status     SendStatus
	ResultCode string
}

func (e *SubmissionError) Error() string {
	if e.ResultCode != "" {
		return fmt.Sprintf("submission of %s rejected with status %s: %s", e.Hash, e.Status, e.ResultCode)
	}
	return fmt.Sprintf("submission of %s rejected with status %s", e.Hash, e.Status)
}

// DecodeKind tags where a decode failure was detected.
type DecodeKind string

const (
	// DecodeKindSuccessPayload marks a getTransaction response that reported
	// SUCCESS but whose XDR payload could not be decoded.
	DecodeKindSuccessPayload DecodeKind = "success_payload"
	// DecodeKindResponse marks any other undecodable response.
	DecodeKindResponse DecodeKind = "response"
)

// DecodeError is returned when an RPC response cannot be decoded.
type DecodeError struct {
	Hash string
	Kind DecodeKind
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Hash != "" {
		return fmt.Sprintf("could not decode %s payload of %s: %v", e.Kind, e.Hash, e.Err)
	}
	return fmt.Sprintf("could not decode %s payload: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Ambiguous reports whether the error hides a transaction that the ledger
// reported as successful.
func (e *DecodeError) Ambiguous() bool {
	return e.Kind == DecodeKindSuccessPayload
}
