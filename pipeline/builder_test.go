package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/minhleeee123/stellar-digital-identity/endpoint"
	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	kp := keypair.MustRandom()
	ep := &endpoint.MockEndpoint{}
	fundAccount(ep, kp, 41)

	inv := testInvocation(t, "deactivate_identity")
	unsigned, err := newTestBuilder(ep).Build(context.Background(), interfaces.Address(kp.Address()), inv)
	require.NoError(t, err)

	assert.Equal(t, int64(42), unsigned.Sequence)
	assert.Equal(t, testNow, unsigned.IssuedAt)
	assert.Equal(t, testNow.Add(30*time.Second), unsigned.ValidUntil)
	assert.Equal(t, int64(100), unsigned.BaseFee)
	assert.Equal(t, "deactivate_identity", unsigned.Invocation.Function())

	envelope, err := unsigned.Envelope()
	require.NoError(t, err)

	var env xdr.TransactionEnvelope
	require.NoError(t, xdr.SafeUnmarshalBase64(envelope, &env))
	assert.Equal(t, int64(42), env.SeqNum())
	require.NotNil(t, env.TimeBounds())
	assert.Equal(t, xdr.TimePoint(testNow.Unix()+30), env.TimeBounds().MaxTime)
	require.Len(t, env.Operations(), 1)
	assert.Empty(t, env.Signatures())

	ep.AssertExpectations(t)
}

func TestBuilder_AccountNotFound(t *testing.T) {
	addr := interfaces.Address(keypair.MustRandom().Address())
	ep := &endpoint.MockEndpoint{}
	ep.On("GetAccount", mock.Anything, addr).Return(nil, &interfaces.AccountNotFoundError{Address: addr})

	builder := newTestBuilder(ep)
	for i := 0; i < 2; i++ {
		unsigned, err := builder.Build(context.Background(), addr, testInvocation(t, "activate_identity"))
		assert.Nil(t, unsigned)

		var notFound *interfaces.AccountNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, addr, notFound.Address)
	}

	ep.AssertNumberOfCalls(t, "GetAccount", 2)
	ep.AssertNotCalled(t, "SimulateTransaction", mock.Anything, mock.Anything)
	ep.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)
}

func TestBuilder_BuildWithSequenceSkipsLookup(t *testing.T) {
	ep := &endpoint.MockEndpoint{}
	addr := interfaces.Address(keypair.MustRandom().Address())

	unsigned, err := newTestBuilder(ep).BuildWithSequence(addr, 0, testInvocation(t, "get_total_identities"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), unsigned.Sequence)

	ep.AssertNotCalled(t, "GetAccount", mock.Anything, mock.Anything)
}

func TestBuilder_RejectsMissingFunction(t *testing.T) {
	inv := interfaces.NewInvocation(testContract(t), "")
	_, err := newTestBuilder(&endpoint.MockEndpoint{}).BuildWithSequence(interfaces.Address(keypair.MustRandom().Address()), 0, inv)
	assert.Error(t, err)
}
