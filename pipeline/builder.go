package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/stellar/go-stellar-sdk/txnbuild"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// UnsignedTransaction is an invocation bound to a source account, a sequence
// number and a validity window.
type UnsignedTransaction struct {
	Source     interfaces.Address
	Sequence   int64
	BaseFee    int64
	IssuedAt   time.Time
	ValidUntil time.Time
	Invocation interfaces.Invocation

	tx *txnbuild.Transaction
}

// Envelope returns the base64 transaction envelope.
func (u *UnsignedTransaction) Envelope() (string, error) {
	return u.tx.Base64()
}

// buildTx assembles the envelope with baseFee for the single operation.
// txnbuild adds the resource fee of data on top. Auth and data are nil before
// simulation.
func (u *UnsignedTransaction) buildTx(baseFee int64, auth []xdr.SorobanAuthorizationEntry, data *xdr.SorobanTransactionData) (*txnbuild.Transaction, error) {
	hostFunction, err := u.Invocation.HostFunction()
	if err != nil {
		return nil, err
	}

	op := &txnbuild.InvokeHostFunction{
		HostFunction: hostFunction,
		Auth:         auth,
	}
	if data != nil {
		op.Ext = xdr.TransactionExt{V: 1, SorobanData: data}
	}

	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &txnbuild.SimpleAccount{AccountID: u.Source.String(), Sequence: u.Sequence},
		IncrementSequenceNum: false,
		BaseFee:              baseFee,
		Operations:           []txnbuild.Operation{op},
		Preconditions: txnbuild.Preconditions{
			TimeBounds: txnbuild.NewTimebounds(0, u.ValidUntil.Unix()),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not build %s transaction: %w", u.Invocation.Function(), err)
	}
	return tx, nil
}

// Builder produces unsigned transactions.
type Builder struct {
	endpoint interfaces.Endpoint
	clock    clock.Clock
	baseFee  int64
	timeout  time.Duration
}

// NewBuilder creates a builder that bids cfg.BaseFee and opens a validity
// window of cfg.Timeout from clk.Now().
func NewBuilder(endpoint interfaces.Endpoint, cfg Config, clk clock.Clock) *Builder {
	return &Builder{
		endpoint: endpoint,
		clock:    clk,
		baseFee:  cfg.BaseFee,
		timeout:  cfg.Timeout,
	}
}

// Build looks up the source account and builds inv with the next sequence
// number. An absent account fails with *interfaces.AccountNotFoundError and
// is not retried.
func (b *Builder) Build(ctx context.Context, source interfaces.Address, inv interfaces.Invocation) (*UnsignedTransaction, error) {
	account, err := b.endpoint.GetAccount(ctx, source)
	if err != nil {
		return nil, err
	}
	return b.BuildWithSequence(source, account.Sequence, inv)
}

// BuildWithSequence builds inv for a source whose current sequence is known,
// without an account lookup.
func (b *Builder) BuildWithSequence(source interfaces.Address, current int64, inv interfaces.Invocation) (*UnsignedTransaction, error) {
	issuedAt := b.clock.Now()
	unsigned := &UnsignedTransaction{
		Source:     source,
		Sequence:   current + 1,
		BaseFee:    b.baseFee,
		IssuedAt:   issuedAt,
		ValidUntil: issuedAt.Add(b.timeout),
		Invocation: inv,
	}

	tx, err := unsigned.buildTx(b.baseFee, nil, nil)
	if err != nil {
		return nil, err
	}
	unsigned.tx = tx
	return unsigned, nil
}
