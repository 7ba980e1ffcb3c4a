package pipeline

import (
	"context"
	"testing"

	"github.com/minhleeee123/stellar-digital-identity/endpoint"
	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuery_ThrowawaySource(t *testing.T) {
	total := xdr.Uint32(5)
	ep := &endpoint.MockEndpoint{}
	ep.On("SimulateTransaction", mock.Anything, mock.Anything).
		Return(simulateOK(t, &xdr.ScVal{Type: xdr.ScValTypeScvU32, U32: &total}), nil)

	p, _ := newTestPipeline(t, ep)
	value, err := p.Query(context.Background(), nil, testInvocation(t, "get_total_identities"))
	require.NoError(t, err)
	assert.Equal(t, xdr.Uint32(5), *value.U32)

	ep.AssertNotCalled(t, "GetAccount", mock.Anything, mock.Anything)
	ep.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)
}

func TestQuery_CallerSource(t *testing.T) {
	kp := keypair.MustRandom()
	ep := &endpoint.MockEndpoint{}
	fundAccount(ep, kp, 9)
	ep.On("SimulateTransaction", mock.Anything, mock.Anything).Return(simulateOK(t, nil), nil)

	source := interfaces.Address(kp.Address())
	p, _ := newTestPipeline(t, ep)
	value, err := p.Query(context.Background(), &source, testInvocation(t, "get_identity"))
	require.NoError(t, err)
	assert.Equal(t, xdr.ScValTypeScvVoid, value.Type)

	ep.AssertCalled(t, "GetAccount", mock.Anything, source)
	ep.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)
}

func TestQuery_SimulationError(t *testing.T) {
	ep := &endpoint.MockEndpoint{}
	ep.On("SimulateTransaction", mock.Anything, mock.Anything).
		Return(&interfaces.SimulateResponse{Error: "HostError: Error(Contract, #1)"}, nil)

	p, _ := newTestPipeline(t, ep)
	_, err := p.Query(context.Background(), nil, testInvocation(t, "get_admin"))

	var simErr *interfaces.SimulationError
	require.ErrorAs(t, err, &simErr)
	assert.Contains(t, simErr.Diagnostic, "Error(Contract, #1)")
}
