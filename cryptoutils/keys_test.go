package cryptoutils

import (
	"testing"

	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/strkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSigningKey(t *testing.T) {
	kp := keypair.MustRandom()

	parsed, err := ParseSigningKey(kp.Seed())
	require.NoError(t, err)
	assert.Equal(t, kp.Address(), parsed.Address())

	addr, err := AddressForSecret(kp.Seed())
	require.NoError(t, err)
	assert.Equal(t, kp.Address(), addr)
}

func TestParseSigningKey_Malformed(t *testing.T) {
	for _, secret := range []string{"", "not-a-seed", keypair.MustRandom().Address()} {
		_, err := ParseSigningKey(secret)
		assert.ErrorIs(t, err, ErrMalformedSecret, "secret %q", secret)
	}
}

func TestRandomAddress(t *testing.T) {
	a, err := RandomAddress()
	require.NoError(t, err)
	b, err := RandomAddress()
	require.NoError(t, err)

	assert.True(t, strkey.IsValidEd25519PublicKey(a))
	assert.NotEqual(t, a, b)
}
