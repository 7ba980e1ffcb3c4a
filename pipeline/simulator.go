package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/stellar/go-stellar-sdk/txnbuild"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// SimulationResult is either a success carrying resources, fee and return
// value, or an error carrying the contract diagnostic. Ok reports which.
type SimulationResult struct {
	TransactionData *xdr.SorobanTransactionData
	MinResourceFee  int64
	Auth            []xdr.SorobanAuthorizationEntry
	ReturnValue     *xdr.ScVal
	LatestLedger    uint32

	Diagnostic string
}

// Ok reports whether the simulation succeeded.
func (r *SimulationResult) Ok() bool {
	return r.Diagnostic == ""
}

// PreparedTransaction is an unsigned transaction with the simulated footprint,
// authorization entries and fee merged in. It is ready to sign.
type PreparedTransaction struct {
	*UnsignedTransaction
	Fee int64

	tx *txnbuild.Transaction
}

// Envelope returns the assembled base64 envelope.
func (p *PreparedTransaction) Envelope() (string, error) {
	return p.tx.Base64()
}

// Simulator dry-runs transactions and assembles their resources.
type Simulator struct {
	endpoint interfaces.Endpoint
	log      *slog.Logger
}

// NewSimulator creates a simulator. Resource assembly is logged to log at
// debug level.
func NewSimulator(endpoint interfaces.Endpoint, log *slog.Logger) *Simulator {
	return &Simulator{endpoint: endpoint, log: log}
}

// Simulate sends u to the endpoint. A contract rejection is returned as a
// result with a diagnostic, not as an error; errors are transport or decode
// failures.
func (s *Simulator) Simulate(ctx context.Context, u *UnsignedTransaction) (*SimulationResult, error) {
	envelope, err := u.Envelope()
	if err != nil {
		return nil, fmt.Errorf("could not encode transaction: %w", err)
	}

	resp, err := s.endpoint.SimulateTransaction(ctx, envelope)
	if err != nil {
		return nil, err
	}

	if resp.Error != "" {
		return &SimulationResult{Diagnostic: resp.Error, LatestLedger: resp.LatestLedger}, nil
	}
	if resp.RestorePreamble != nil {
		return &SimulationResult{
			Diagnostic:   "invocation reads archived ledger entries; restore them before invoking " + u.Invocation.Function(),
			LatestLedger: resp.LatestLedger,
		}, nil
	}

	return decodeSimulation(resp)
}

func decodeSimulation(resp *interfaces.SimulateResponse) (*SimulationResult, error) {
	res := &SimulationResult{LatestLedger: resp.LatestLedger}

	var data xdr.SorobanTransactionData
	if err := xdr.SafeUnmarshalBase64(resp.TransactionData, &data); err != nil {
		return nil, &interfaces.DecodeError{Kind: interfaces.DecodeKindResponse, Err: fmt.Errorf("transaction data: %w", err)}
	}
	res.TransactionData = &data

	if resp.MinResourceFee != "" {
		fee, err := strconv.ParseInt(resp.MinResourceFee, 10, 64)
		if err != nil {
			return nil, &interfaces.DecodeError{Kind: interfaces.DecodeKindResponse, Err: fmt.Errorf("min resource fee: %w", err)}
		}
		res.MinResourceFee = fee
	}

	if len(resp.Results) == 0 {
		return res, nil
	}

	result := resp.Results[0]
	for _, encoded := range result.Auth {
		var entry xdr.SorobanAuthorizationEntry
		if err := xdr.SafeUnmarshalBase64(encoded, &entry); err != nil {
			return nil, &interfaces.DecodeError{Kind: interfaces.DecodeKindResponse, Err: fmt.Errorf("auth entry: %w", err)}
		}
		res.Auth = append(res.Auth, entry)
	}

	if result.XDR != "" {
		var value xdr.ScVal
		if err := xdr.SafeUnmarshalBase64(result.XDR, &value); err != nil {
			return nil, &interfaces.DecodeError{Kind: interfaces.DecodeKindResponse, Err: fmt.Errorf("return value: %w", err)}
		}
		res.ReturnValue = &value
	}

	return res, nil
}

// Prepare simulates u and rebuilds it with the simulated resources and auth
// entries. The envelope fee is the base fee plus the resource fee of the
// simulated transaction data, and Fee reports that total. Sequence and
// validity window are unchanged. A rejected simulation returns
// *interfaces.SimulationError alongside the result.
func (s *Simulator) Prepare(ctx context.Context, u *UnsignedTransaction) (*PreparedTransaction, *SimulationResult, error) {
	sim, err := s.Simulate(ctx, u)
	if err != nil {
		return nil, nil, err
	}

	if !sim.Ok() {
		return nil, sim, &interfaces.SimulationError{
			Function:   u.Invocation.Function(),
			Diagnostic: sim.Diagnostic,
		}
	}

	tx, err := u.buildTx(u.BaseFee, sim.Auth, sim.TransactionData)
	if err != nil {
		return nil, sim, err
	}

	s.log.Debug("assembled simulated resources",
		"function", u.Invocation.Function(),
		"minResourceFee", sim.MinResourceFee,
		"fee", tx.MaxFee(),
		"authEntries", len(sim.Auth),
	)

	return &PreparedTransaction{UnsignedTransaction: u, Fee: tx.MaxFee(), tx: tx}, sim, nil
}
