package interfaces

import (
	"context"

	"github.com/stellar/go-stellar-sdk/xdr"
)

// SendStatus is the status returned by sendTransaction.
type SendStatus string

const (
	SendStatusPending       SendStatus = "PENDING"
	SendStatusDuplicate     SendStatus = "DUPLICATE"
	SendStatusTryAgainLater SendStatus = "TRY_AGAIN_LATER"
	SendStatusError         SendStatus = "ERROR"
	// SendStatusSuccess is not produced by current RPC servers but is a
	// terminal status for the poller if it ever is.
	SendStatusSuccess SendStatus = "SUCCESS"
)

// TransactionStatus is the status returned by getTransaction.
type TransactionStatus string

const (
	TransactionStatusSuccess  TransactionStatus = "SUCCESS"
	TransactionStatusNotFound TransactionStatus = "NOT_FOUND"
	TransactionStatusFailed   TransactionStatus = "FAILED"
)

// AccountInfo is the ledger state of an account needed to build a transaction.
type AccountInfo struct {
	Address  Address
	Sequence int64
}

// SimulateResult is one host function result of a simulation.
type SimulateResult struct {
	Auth []string `json:"auth"`
	XDR  string   `json:"xdr"`
}

// RestorePreamble is present when the footprint touches archived entries.
type RestorePreamble struct {
	TransactionData string `json:"transactionData"`
	MinResourceFee  string `json:"minResourceFee"`
}

// SimulateResponse is the simulateTransaction result. XDR fields are base64.
type SimulateResponse struct {
	TransactionData string           `json:"transactionData"`
	MinResourceFee  string           `json:"minResourceFee"`
	Results         []SimulateResult `json:"results"`
	Error           string           `json:"error"`
	RestorePreamble *RestorePreamble `json:"restorePreamble"`
	LatestLedger    uint32           `json:"latestLedger"`
}

// SendResponse is the sendTransaction result.
type SendResponse struct {
	Status         SendStatus `json:"status"`
	Hash           string     `json:"hash"`
	ErrorResultXDR string     `json:"errorResultXdr"`
	LatestLedger   uint32     `json:"latestLedger"`

	// ResultCode is decoded from ErrorResultXDR, e.g. "txBadSeq".
	ResultCode string `json:"-"`
}

// TransactionResponse is the getTransaction result.
type TransactionResponse struct {
	Status        TransactionStatus `json:"status"`
	Ledger        uint32            `json:"ledger"`
	ResultXDR     string            `json:"resultXdr"`
	ResultMetaXDR string            `json:"resultMetaXdr"`
	LatestLedger  uint32            `json:"latestLedger"`

	// ResultCode is decoded from ResultXDR, e.g. "txFailed".
	ResultCode string `json:"-"`
	// ReturnValue is the contract return value decoded from ResultMetaXDR,
	// nil when the transaction has not succeeded.
	ReturnValue *xdr.ScVal `json:"-"`
}

// Endpoint is the set of RPC primitives the transaction pipeline consumes.
// Implementations hold no mutable state and are safe for concurrent use.
type Endpoint interface {
	// GetAccount returns the current sequence of address.
	// Returns *AccountNotFoundError if the account has no ledger entry.
	GetAccount(ctx context.Context, address Address) (*AccountInfo, error)

	// SimulateTransaction dry-runs a base64 transaction envelope.
	SimulateTransaction(ctx context.Context, envelopeXDR string) (*SimulateResponse, error)

	// SendTransaction submits a signed base64 transaction envelope.
	SendTransaction(ctx context.Context, envelopeXDR string) (*SendResponse, error)

	// GetTransaction returns the status of a submitted transaction.
	// A SUCCESS response whose payload cannot be decoded is reported as a
	// *DecodeError of kind DecodeKindSuccessPayload.
	GetTransaction(ctx context.Context, hash string) (*TransactionResponse, error)
}
