package pipeline

import (
	"context"
	"fmt"

	"github.com/minhleeee123/stellar-digital-identity/cryptoutils"
	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// QueryExecutor runs side-effect-free contract reads through simulation.
type QueryExecutor struct {
	builder   *Builder
	simulator *Simulator
}

func NewQueryExecutor(builder *Builder, simulator *Simulator) *QueryExecutor {
	return &QueryExecutor{builder: builder, simulator: simulator}
}

// Query simulates inv and returns its decoded return value. A nil source uses
// a throwaway account with no lookup; a given source must exist on the
// ledger. Nothing is signed or submitted.
func (q *QueryExecutor) Query(ctx context.Context, source *interfaces.Address, inv interfaces.Invocation) (xdr.ScVal, error) {
	unsigned, err := q.build(ctx, source, inv)
	if err != nil {
		return xdr.ScVal{}, err
	}

	sim, err := q.simulator.Simulate(ctx, unsigned)
	if err != nil {
		return xdr.ScVal{}, err
	}

	if !sim.Ok() {
		return xdr.ScVal{}, &interfaces.SimulationError{
			Function:   inv.Function(),
			Diagnostic: sim.Diagnostic,
		}
	}

	if sim.ReturnValue == nil {
		return xdr.ScVal{Type: xdr.ScValTypeScvVoid}, nil
	}
	return *sim.ReturnValue, nil
}

func (q *QueryExecutor) build(ctx context.Context, source *interfaces.Address, inv interfaces.Invocation) (*UnsignedTransaction, error) {
	if source != nil {
		return q.builder.Build(ctx, *source, inv)
	}

	addr, err := cryptoutils.RandomAddress()
	if err != nil {
		return nil, fmt.Errorf("could not create read source: %w", err)
	}
	return q.builder.BuildWithSequence(interfaces.Address(addr), 0, inv)
}
