package pipeline

import (
	"context"
	"testing"

	"github.com/minhleeee123/stellar-digital-identity/endpoint"
	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/network"
	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func preparedFor(t *testing.T, kp *keypair.Full) *PreparedTransaction {
	t.Helper()
	ep := &endpoint.MockEndpoint{}
	ep.On("SimulateTransaction", mock.Anything, mock.Anything).Return(simulateOK(t, nil), nil)

	prepared, _, err := NewSimulator(ep, testLogger()).Prepare(context.Background(), unsignedFor(t, ep, kp, "activate_identity"))
	require.NoError(t, err)
	return prepared
}

func TestSigner_Sign(t *testing.T) {
	kp := keypair.MustRandom()
	signed, err := NewSigner(network.TestNetworkPassphrase).Sign(preparedFor(t, kp), kp.Seed())
	require.NoError(t, err)

	assert.Len(t, signed.Hash, 64)
	assert.Equal(t, interfaces.Address(kp.Address()), signed.Source)

	var env xdr.TransactionEnvelope
	require.NoError(t, xdr.SafeUnmarshalBase64(signed.Envelope(), &env))
	assert.Len(t, env.Signatures(), 1)
}

func TestSigner_Rejects(t *testing.T) {
	source := keypair.MustRandom()
	other := keypair.MustRandom()

	tests := []struct {
		name   string
		secret string
	}{
		{name: "empty", secret: ""},
		{name: "garbage", secret: "SNOTASEED"},
		{name: "public address", secret: source.Address()},
		{name: "mismatched key", secret: other.Seed()},
	}

	prepared := preparedFor(t, source)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed, err := NewSigner(network.TestNetworkPassphrase).Sign(prepared, tt.secret)
			assert.Nil(t, signed)

			var signErr *interfaces.SigningError
			assert.ErrorAs(t, err, &signErr)
		})
	}
}
